package fetcher

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "redfish_fetch_duration_seconds",
			Help:    "Time to resolve a vendor data source for a node (per source)",
			Buckets: []float64{0.001, 0.002, 0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1, 2},
		},
		[]string{"source"},
	)

	fetchFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redfish_fetch_fallbacks_total",
			Help: "Number of fetches answered with fallback data (per source)",
		},
		[]string{"source"},
	)
)

func recordFetch(source Source, start time.Time) {
	fetchDurationSeconds.WithLabelValues(string(source)).Observe(time.Since(start).Seconds())
}

func recordFallback(source Source) {
	fetchFallbacksTotal.WithLabelValues(string(source)).Inc()
}
