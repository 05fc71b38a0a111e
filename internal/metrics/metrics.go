// Package metrics exposes the pipeline's Prometheus instrumentation: counts
// of texts processed, lexicon cache hit/miss rates, and external-adapter
// latency and failures broken down by tool name.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// TextsProcessed counts completed calls to the top-level macronize
	// operation.
	TextsProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "macronizer",
		Name:      "texts_processed_total",
		Help:      "Total number of texts run through the macronization pipeline.",
	})

	// LexiconLookups counts lexicon lookups, partitioned by whether the
	// wordform was already cached.
	LexiconLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "macronizer",
		Name:      "lexicon_lookups_total",
		Help:      "Lexicon lookups by cache outcome (hit, miss).",
	}, []string{"outcome"})

	// AdapterDuration observes wall-clock time spent inside an external
	// subprocess adapter call, by tool name.
	AdapterDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "macronizer",
		Name:      "adapter_duration_seconds",
		Help:      "External adapter invocation latency by tool.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"tool"})

	// AdapterFailures counts external adapter failures by tool name.
	AdapterFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "macronizer",
		Name:      "adapter_failures_total",
		Help:      "External adapter invocation failures by tool.",
	}, []string{"tool"})
)

// Register registers every collector in this package with reg. Callers
// (cmd/server) typically pass prometheus.DefaultRegisterer.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{TextsProcessed, LexiconLookups, AdapterDuration, AdapterFailures} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
