// Package metrics registers the run's prometheus instrumentation
// against a caller-supplied Registerer, never a global registry, so
// the core packages stay free of process-wide state.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the counters and histograms emitted across a run.
type Metrics struct {
	LinesProcessed   prometheus.Counter
	FindingsEmitted  *prometheus.CounterVec
	IdentitiesFormed prometheus.Counter
	ResolvePassSecs  prometheus.Histogram
}

// New registers all instruments against reg and returns the handle used
// to record observations. Registration panics propagate as-is, matching
// the pack's own promauto-less direct-registration style where a
// duplicate-registration bug is a programmer error, not a runtime
// condition to recover from.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		LinesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "logident",
			Name:      "lines_processed_total",
			Help:      "Total number of input lines processed by the extraction stage.",
		}),
		FindingsEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "logident",
			Name:      "findings_emitted_total",
			Help:      "Total number of Findings emitted, by category.",
		}, []string{"category"}),
		IdentitiesFormed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "logident",
			Name:      "identities_formed_total",
			Help:      "Total number of identity groups formed by the resolver.",
		}),
		ResolvePassSecs: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "logident",
			Name:      "resolve_pass_duration_seconds",
			Help:      "Duration of a single resolver pass (frequency, union, or transitive closure).",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(m.LinesProcessed, m.FindingsEmitted, m.IdentitiesFormed, m.ResolvePassSecs)

	return m
}

// Noop returns a Metrics instance registered against a private registry,
// for callers (tests, one-shot CLI invocations) that don't want to wire
// up a real exporter.
func Noop() *Metrics {
	return New(prometheus.NewRegistry())
}
