package service

import (
	"net/http"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/mentor-match-api/internal/models"
)

const metricsNamespace = "mentor_match"

// Recommendation sources reported by ObserveRecommendation.
const (
	SourceCache  = "cache"
	SourceEngine = "engine"
)

// MetricsService owns the Prometheus registry for the API and keeps running
// totals for the JSON summary endpoint.
type MetricsService struct {
	registry *prometheus.Registry
	handler  http.Handler

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	cacheOps        *prometheus.HistogramVec
	cacheLookups    *prometheus.CounterVec
	cacheHitRatio   prometheus.Gauge
	dbQueryDuration *prometheus.HistogramVec
	recommendations *prometheus.CounterVec
	matchScores     prometheus.Histogram
	candidates      prometheus.Histogram

	totals struct {
		requests        atomic.Uint64
		serverErrors    atomic.Uint64
		requestNanos    atomic.Uint64
		cacheHits       atomic.Uint64
		cacheMisses     atomic.Uint64
		dbQueries       atomic.Uint64
		dbNanos         atomic.Uint64
		recommendations atomic.Uint64
	}
}

// NewMetricsService registers the API collectors on a private registry.
func NewMetricsService() *MetricsService {
	m := &MetricsService{registry: prometheus.NewRegistry()}

	m.requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
	m.requestTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
	m.cacheOps = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "cache_operation_seconds",
		Help:      "Latency of recommendation cache reads and writes",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
	}, []string{"op"})
	m.cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "cache_lookups_total",
		Help:      "Recommendation cache lookups by result",
	}, []string{"result"})
	m.cacheHitRatio = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "cache_hit_ratio",
		Help:      "Ratio of cache hits to total cache lookups",
	})
	m.dbQueryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "db_query_duration_seconds",
		Help:      "Duration of database queries",
		Buckets:   prometheus.DefBuckets,
	}, []string{"query"})
	m.recommendations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "recommendations_served_total",
		Help:      "Recommendation lists served, by source",
	}, []string{"source"})
	m.matchScores = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "match_score",
		Help:      "Distribution of compatibility scores returned to clients",
		Buckets:   prometheus.LinearBuckets(0, 10, 11),
	})
	m.candidates = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "recommendation_candidates",
		Help:      "Mentors left after filtering, per ranked request",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})
	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "goroutines",
		Help:      "Number of live goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	m.registry.MustRegister(
		m.requestDuration,
		m.requestTotal,
		m.cacheOps,
		m.cacheLookups,
		m.cacheHitRatio,
		m.dbQueryDuration,
		m.recommendations,
		m.matchScores,
		m.candidates,
		goroutines,
	)
	m.handler = promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return m
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records one finished request. 5xx responses count
// towards the error rate.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	code := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, code).Inc()
	m.totals.requests.Add(1)
	m.totals.requestNanos.Add(uint64(duration.Nanoseconds()))
	if status >= http.StatusInternalServerError {
		m.totals.serverErrors.Add(1)
	}
}

// RecordCacheOperation records a cache lookup and refreshes the hit ratio.
func (m *MetricsService) RecordCacheOperation(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheOps.WithLabelValues("get").Observe(duration.Seconds())
	if hit {
		m.cacheLookups.WithLabelValues("hit").Inc()
		m.totals.cacheHits.Add(1)
	} else {
		m.cacheLookups.WithLabelValues("miss").Inc()
		m.totals.cacheMisses.Add(1)
	}
	m.cacheHitRatio.Set(ratio(m.totals.cacheHits.Load(), m.totals.cacheMisses.Load()))
}

func (m *MetricsService) ObserveCacheWrite(duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheOps.WithLabelValues("set").Observe(duration.Seconds())
}

// ObserveDBQuery records database query timing under a short query label.
func (m *MetricsService) ObserveDBQuery(label string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(label).Observe(duration.Seconds())
	m.totals.dbQueries.Add(1)
	m.totals.dbNanos.Add(uint64(duration.Nanoseconds()))
}

// ObserveRecommendation records one served list. Candidate counts are only
// observed for lists computed by the engine.
func (m *MetricsService) ObserveRecommendation(source string, candidates int, scores []float64) {
	if m == nil {
		return
	}
	m.recommendations.WithLabelValues(source).Inc()
	m.totals.recommendations.Add(1)
	if source == SourceEngine {
		m.candidates.Observe(float64(candidates))
	}
	for _, score := range scores {
		m.matchScores.Observe(score)
	}
}

// Snapshot returns the running totals.
func (m *MetricsService) Snapshot() models.SystemMetrics {
	if m == nil {
		return models.SystemMetrics{}
	}
	requests := m.totals.requests.Load()
	serverErrors := m.totals.serverErrors.Load()
	dbQueries := m.totals.dbQueries.Load()
	hits := m.totals.cacheHits.Load()
	misses := m.totals.cacheMisses.Load()

	return models.SystemMetrics{
		CacheHitRatio:            ratio(hits, misses),
		CacheHits:                hits,
		CacheMisses:              misses,
		RequestsTotal:            requests,
		ServerErrors:             serverErrors,
		ErrorRate:                fraction(serverErrors, requests),
		AverageRequestDurationMs: averageMillis(m.totals.requestNanos.Load(), requests),
		DBQueryCount:             dbQueries,
		AverageDBQueryDurationMs: averageMillis(m.totals.dbNanos.Load(), dbQueries),
		RecommendationsServed:    m.totals.recommendations.Load(),
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
}

func ratio(hits, misses uint64) float64 {
	return fraction(hits, hits+misses)
}

func fraction(part, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}

func averageMillis(totalNanos, count uint64) float64 {
	if count == 0 {
		return 0
	}
	return float64(totalNanos) / float64(count) / float64(time.Millisecond)
}
