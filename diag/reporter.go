package diag

import (
	"context"
	"log/slog"
	"sync"
)

// Reporter receives diagnostics.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to Reporter
type ReporterFunc func(d Diagnostic)

func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// Collector records diagnostics in arrival order and logs each of them.
type Collector struct {
	logger *slog.Logger
	mux    sync.Mutex
	items  List
}

// NewCollector creates a collector; a nil logger uses slog.Default()
func NewCollector(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{logger: logger}
}

// Report records and logs the diagnostic.
func (c *Collector) Report(d Diagnostic) {
	c.mux.Lock()
	c.items = append(c.items, d)
	c.mux.Unlock()
	c.logger.Log(context.Background(), level(d.Severity), d.Message(),
		slog.Int("code", int(d.Code)),
		slog.String("path", d.Path))
}

// Diagnostics returns a copy of the recorded diagnostics.
func (c *Collector) Diagnostics() List {
	c.mux.Lock()
	defer c.mux.Unlock()
	result := make(List, len(c.items))
	copy(result, c.items)
	return result
}

// Count returns the number of recorded diagnostics with the code.
func (c *Collector) Count(code Code) int {
	c.mux.Lock()
	defer c.mux.Unlock()
	count := 0
	for _, d := range c.items {
		if d.Code == code {
			count++
		}
	}
	return count
}

func level(severity Severity) slog.Level {
	switch severity {
	case Debug:
		return slog.LevelDebug
	case Info:
		return slog.LevelInfo
	case Warning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
