package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the solver-facing Prometheus collectors.
type Metrics struct {
	SolvesTotal   *prometheus.CounterVec
	SolveDuration prometheus.Histogram
}

// New registers the collectors with reg and returns them. Pass
// prometheus.DefaultRegisterer for the process-wide registry.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SolvesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sudosolve",
			Name:      "solves_total",
			Help:      "Solve calls by outcome.",
		}, []string{"outcome"}),
		SolveDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sudosolve",
			Name:      "solve_duration_seconds",
			Help:      "Wall time spent in the solver.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
