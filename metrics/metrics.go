// Package metrics wraps the core package's Metrics struct and diagnostic
// counters behind Prometheus collectors, for callers (the watch driver, a
// long-running scan service) that want to export them.
package metrics

import (
	tokenizer "github.com/fumiya-kume/felang-tokenizer"
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder is a Prometheus facade over incremental re-lex and scan
// outcomes. The zero value is not usable; construct with NewRecorder.
type Recorder struct {
	efficiencyRatio   prometheus.Histogram
	tokensAdded       prometheus.Counter
	tokensRemoved     prometheus.Counter
	charactersRescanned prometheus.Counter
	diagnosticsBySeverity *prometheus.CounterVec
}

// NewRecorder builds a Recorder and registers its collectors with reg. Pass
// prometheus.DefaultRegisterer for the global registry, or a fresh
// prometheus.NewRegistry() in tests.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		efficiencyRatio: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tokenizer",
			Subsystem: "relex",
			Name:      "efficiency_ratio",
			Help:      "Characters rescanned divided by a full-rescan linear baseline.",
			Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
		}),
		tokensAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tokenizer",
			Subsystem: "relex",
			Name:      "tokens_added_total",
			Help:      "Tokens added across all incremental re-lexes.",
		}),
		tokensRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tokenizer",
			Subsystem: "relex",
			Name:      "tokens_removed_total",
			Help:      "Tokens removed across all incremental re-lexes.",
		}),
		charactersRescanned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tokenizer",
			Subsystem: "relex",
			Name:      "characters_rescanned_total",
			Help:      "Characters rescanned across all incremental re-lexes.",
		}),
		diagnosticsBySeverity: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tokenizer",
			Subsystem: "scan",
			Name:      "diagnostics_total",
			Help:      "Diagnostics emitted by scan_recovering, by severity.",
		}, []string{"severity"}),
	}

	reg.MustRegister(r.efficiencyRatio, r.tokensAdded, r.tokensRemoved, r.charactersRescanned, r.diagnosticsBySeverity)
	return r
}

// ObserveRelex records one RelexIncremental outcome's metrics.
func (r *Recorder) ObserveRelex(m tokenizer.Metrics) {
	r.efficiencyRatio.Observe(m.EfficiencyRatio)
	r.tokensAdded.Add(float64(m.TokensAdded))
	r.tokensRemoved.Add(float64(m.TokensRemoved))
	r.charactersRescanned.Add(float64(m.CharactersRescanned))
}

// ObserveDiagnostics increments the per-severity diagnostic counters for
// the diagnostics a scan_recovering call produced.
func (r *Recorder) ObserveDiagnostics(diagnostics []tokenizer.Diagnostic) {
	for _, d := range diagnostics {
		r.diagnosticsBySeverity.WithLabelValues(d.Severity.String()).Inc()
	}
}
