package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	LookupDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "search",
			Name:      "lookup_duration_seconds",
			Help:      "Per-entity lookup duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"entity_type", "status"},
	)

	SearchResultsTotal = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "search",
			Name:      "merged_results",
			Help:      "Number of merged results per search before pagination",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
		[]string{"scope"},
	)

	TrackingFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "search",
			Name:      "tracking_failures_total",
			Help:      "Best-effort tracking writes that failed",
		},
		[]string{"kind"}, // "trending" / "history" / "click"
	)

	CacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "search",
			Name:      "cache_total",
			Help:      "Suggestion and trending cache hits and misses",
		},
		[]string{"cache", "result"}, // result: "hit" / "miss"
	)
)

func init() {
	prometheus.MustRegister(LookupDuration, SearchResultsTotal, TrackingFailuresTotal, CacheTotal)
}
