package gqlcheck

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	checkResultValid   = "valid"
	checkResultInvalid = "invalid"
	checkResultError   = "error"
)

// metrics contains the Prometheus collectors for a Checker.
type metrics struct {
	checks        *prometheus.CounterVec
	diagnostics   prometheus.Counter
	checkDuration prometheus.Histogram
	cacheHits     prometheus.Counter
}

// newMetrics creates the collectors and registers them with registerer, if it isn't nil.
func newMetrics(registerer prometheus.Registerer) *metrics {
	factory := promauto.With(registerer)
	return &metrics{
		checks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gqlcheck_checks_total",
				Help: "Total number of documents checked",
			},
			[]string{"result"},
		),
		diagnostics: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "gqlcheck_diagnostics_total",
				Help: "Total number of errors reported for checked documents",
			},
		),
		checkDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gqlcheck_check_duration_seconds",
				Help:    "Time spent parsing and validating documents",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
		cacheHits: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "gqlcheck_result_cache_hits_total",
				Help: "Total number of checks answered from result storage",
			},
		),
	}
}
