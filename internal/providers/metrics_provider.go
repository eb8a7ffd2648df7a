package providers

import (
	"breathed/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObservePersistenceDuration(duration time.Duration)
	IncDecision(outcome string)
	IncOverlayShows()
	IncSessionOutcome(outcome string)
	SetMonitoredPackages(count int)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	persistenceDuration prometheus.Histogram
	decisionsTotal      *prometheus.CounterVec
	overlayShowsTotal   prometheus.Counter
	sessionsTotal       *prometheus.CounterVec
	monitoredPackages   prometheus.Gauge
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

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) IncDecision(outcome string) {
	m.decisionsTotal.WithLabelValues(outcome).Inc()
}

func (m *MetricsProvider) IncOverlayShows() {
	m.overlayShowsTotal.Inc()
}

func (m *MetricsProvider) IncSessionOutcome(outcome string) {
	m.sessionsTotal.WithLabelValues(outcome).Inc()
}

func (m *MetricsProvider) SetMonitoredPackages(count int) {
	m.monitoredPackages.Set(float64(count))
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

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "breathed_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "breathed_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "breathed_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "breathed_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "breathed_persistence_duration_seconds",
			Help:    "Duration of persistence operations in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		decisionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "breathed_decisions_total",
			Help: "Interception decisions by outcome",
		}, []string{"outcome"}),

		overlayShowsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "breathed_overlay_shows_total",
			Help: "Total number of overlay show signals",
		}),

		sessionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "breathed_sessions_total",
			Help: "Breathing sessions by outcome",
		}, []string{"outcome"}),

		monitoredPackages: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "breathed_monitored_packages",
			Help: "Current number of monitored packages",
		}),
	}

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (n *noopMetrics) IncDecision(_ string)                             {}
func (n *noopMetrics) IncOverlayShows()                                 {}
func (n *noopMetrics) IncSessionOutcome(_ string)                       {}
func (n *noopMetrics) SetMonitoredPackages(_ int)                       {}
