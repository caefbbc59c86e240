package providers

import (
	"portfolio/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncCachePurges()
	ObservePersistenceDuration(duration time.Duration)
	IncPersistenceFailures(key string)
	SetEntitiesTotal(category string, count int)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	cachePurges         prometheus.Counter
	persistenceDuration prometheus.Histogram
	persistenceFailures *prometheus.CounterVec
	entitiesTotal       *prometheus.GaugeVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncCachePurges() {
	m.cachePurges.Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) IncPersistenceFailures(key string) {
	m.persistenceFailures.WithLabelValues(key).Inc()
}

func (m *MetricsProvider) SetEntitiesTotal(category string, count int) {
	m.entitiesTotal.WithLabelValues(category).Set(float64(count))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portfolio_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		cachePurges: promauto.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_cache_purges_total",
			Help: "Total number of response cache purges after content changes",
		}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "portfolio_persistence_duration_seconds",
			Help:    "Duration of key-value store writes in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		persistenceFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_persistence_failures_total",
			Help: "Total number of failed key-value store writes",
		}, []string{"key"}),

		entitiesTotal: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "portfolio_entities_total",
			Help: "Number of entities per content category",
		}, []string{"category"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) IncCachePurges()                                  {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (n *noopMetrics) IncPersistenceFailures(_ string)                  {}
func (n *noopMetrics) SetEntitiesTotal(_ string, _ int)                 {}
