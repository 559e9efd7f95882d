package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the pipeline's Prometheus collectors.
type Metrics struct {
	ProviderRequests *prometheus.CounterVec
	ProviderErrors   *prometheus.CounterVec
	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter
	PipelineRuns     prometheus.Counter
	ThrottleTrips    prometheus.Counter
	RowsEmitted      prometheus.Counter
	RunDuration      prometheus.Histogram
}

// New registers all collectors on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scout_provider_requests_total", Help: "upstream provider requests",
		}, []string{"provider"}),
		ProviderErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scout_provider_errors_total", Help: "upstream provider failures",
		}, []string{"provider"}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scout_cache_hits_total", Help: "pipeline cache hits",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scout_cache_misses_total", Help: "pipeline cache misses",
		}),
		PipelineRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scout_pipeline_runs_total", Help: "completed pipeline runs",
		}),
		ThrottleTrips: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scout_throttle_trips_total", Help: "runs rejected by the interval guard",
		}),
		RowsEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scout_valuation_rows_total", Help: "valuation rows emitted",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "scout_pipeline_run_seconds",
			Help:    "full pipeline run duration",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(
		m.ProviderRequests, m.ProviderErrors,
		m.CacheHits, m.CacheMisses,
		m.PipelineRuns, m.ThrottleTrips, m.RowsEmitted,
		m.RunDuration,
	)
	return m
}

// NewUnregistered returns collectors bound to a private registry, for tests.
func NewUnregistered() *Metrics {
	return New(prometheus.NewRegistry())
}
