package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusRecorder implements Recorder against a Prometheus registry.
type PrometheusRecorder struct {
	hits        prometheus.Counter
	misses      prometheus.Counter
	rebuilds    prometheus.Counter
	loadSeconds prometheus.Histogram
}

// NewPrometheusRecorder registers the settings-cache metrics with reg.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	factory := promauto.With(reg)
	return &PrometheusRecorder{
		hits: factory.NewCounter(prometheus.CounterOpts{
			Name: "staticbridge_settings_cache_hits_total",
			Help: "Settings reads served from the cache store.",
		}),
		misses: factory.NewCounter(prometheus.CounterOpts{
			Name: "staticbridge_settings_cache_misses_total",
			Help: "Settings reads that required a full load.",
		}),
		rebuilds: factory.NewCounter(prometheus.CounterOpts{
			Name: "staticbridge_settings_rebuilds_total",
			Help: "Explicit cache re-warm operations.",
		}),
		loadSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "staticbridge_settings_load_duration_seconds",
			Help:    "Wall time of one full settings load.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (r *PrometheusRecorder) CacheHit()  { r.hits.Inc() }
func (r *PrometheusRecorder) CacheMiss() { r.misses.Inc() }
func (r *PrometheusRecorder) Rebuild()   { r.rebuilds.Inc() }
func (r *PrometheusRecorder) LoadDuration(d time.Duration) {
	r.loadSeconds.Observe(d.Seconds())
}
