package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RateCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "converter_rate_cache_hits_total",
		Help: "Rate snapshot requests served from the in-memory cache.",
	})

	RateCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "converter_rate_cache_misses_total",
		Help: "Rate snapshot requests that went to the upstream provider.",
	})

	RateStaleServes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "converter_rate_stale_serves_total",
		Help: "Rate snapshot requests served stale after an upstream failure.",
	})

	UpstreamFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "converter_upstream_failures_total",
		Help: "Failed calls to upstream providers.",
	}, []string{"provider"})

	HistoryFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "converter_history_fallbacks_total",
		Help: "History requests answered with a synthetic fallback series.",
	})
)
