package builder

import (
	"errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/viant/modelgraph/diag"
)

const metricsNamespace = "modelgraph"

// metrics tracks build activity
type metrics struct {
	builds      *prometheus.CounterVec
	entities    *prometheus.CounterVec
	diagnostics *prometheus.CounterVec
	descriptors *prometheus.CounterVec
	duration    prometheus.Histogram
}

func newMetrics(registerer prometheus.Registerer) *metrics {
	result := &metrics{
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "builds_total",
			Help:      "Model builds by outcome.",
		}, []string{"outcome"}),
		entities: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "entities_total",
			Help:      "Registered model entities by kind.",
		}, []string{"kind"}),
		diagnostics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "diagnostics_total",
			Help:      "Reported diagnostics by severity.",
		}, []string{"severity"}),
		descriptors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "descriptor_resolutions_total",
			Help:      "Descriptor fallback chain evaluations by descriptor kind.",
		}, []string{"descriptor"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "build_duration_seconds",
			Help:      "Duration of the eager build passes.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if registerer == nil {
		return result
	}
	result.builds = register(registerer, result.builds)
	result.entities = register(registerer, result.entities)
	result.diagnostics = register(registerer, result.diagnostics)
	result.descriptors = register(registerer, result.descriptors)
	result.duration = register(registerer, result.duration)
	return result
}

// register registers the collector or returns the one already registered under the same descriptor
func register[T prometheus.Collector](registerer prometheus.Registerer, collector T) T {
	if err := registerer.Register(collector); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing
			}
		}
	}
	return collector
}

// reporter counts diagnostics before forwarding them
func (m *metrics) reporter(next diag.Reporter) diag.Reporter {
	return diag.ReporterFunc(func(d diag.Diagnostic) {
		m.diagnostics.WithLabelValues(d.Severity.String()).Inc()
		next.Report(d)
	})
}
