package builder

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/viant/modelgraph/config"
	"github.com/viant/modelgraph/diag"
	"log/slog"
)

type Option func(*Builder)

// WithConfig sets the build configuration; nil keeps the defaults
func WithConfig(cfg *config.Config) Option {
	return func(b *Builder) {
		if cfg != nil {
			b.config = cfg
		}
	}
}

// WithLogger sets the logger used for progress and diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithReporter registers an additional receiver of diagnostics. Diagnostics are
// always recorded on the model as well.
func WithReporter(reporter diag.Reporter) Option {
	return func(b *Builder) {
		if reporter != nil {
			b.reporters = append(b.reporters, reporter)
		}
	}
}

// WithRegisterer registers build metrics with a prometheus registerer
func WithRegisterer(registerer prometheus.Registerer) Option {
	return func(b *Builder) {
		b.registerer = registerer
	}
}

// WithOCLParser sets the parser that builds syntax trees of OCL constraints
func WithOCLParser(parser ConstraintParser) Option {
	return func(b *Builder) {
		b.oclParser = parser
	}
}

// WithName sets the model name, overriding a name offered by the source
func WithName(name string) Option {
	return func(b *Builder) {
		b.name = name
	}
}
