package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsServiceExposesCollectors(t *testing.T) {
	metrics := NewMetricsService()
	metrics.ObserveHTTPRequest(http.MethodGet, "/api/v1/students/:id/recommendations", http.StatusOK, 20*time.Millisecond)
	metrics.ObserveHTTPRequest(http.MethodGet, "/api/v1/mentors", http.StatusInternalServerError, 20*time.Millisecond)
	metrics.ObserveDBQuery("mentor_catalog", 4*time.Millisecond)
	metrics.ObserveRecommendation(SourceEngine, 4, []float64{77.72, 73.98})
	metrics.ObserveRecommendation(SourceCache, 4, []float64{77.72})
	metrics.RecordCacheOperation(false, time.Millisecond)
	metrics.RecordCacheOperation(true, time.Millisecond)
	metrics.ObserveCacheWrite(time.Millisecond)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",path="/api/v1/students/:id/recommendations",status="200"} 1`)
	assert.Contains(t, body, `mentor_match_recommendations_served_total{source="engine"} 1`)
	assert.Contains(t, body, `mentor_match_recommendations_served_total{source="cache"} 1`)
	assert.Contains(t, body, "mentor_match_match_score_count 3")
	assert.Contains(t, body, "mentor_match_recommendation_candidates_count 1")
	assert.Contains(t, body, `mentor_match_cache_lookups_total{result="hit"} 1`)
	assert.Contains(t, body, `mentor_match_cache_operation_seconds_count{op="set"} 1`)
	assert.Contains(t, body, "mentor_match_cache_hit_ratio 0.5")

	snapshot := metrics.Snapshot()
	assert.Equal(t, uint64(2), snapshot.RequestsTotal)
	assert.Equal(t, uint64(1), snapshot.ServerErrors)
	assert.InDelta(t, 0.5, snapshot.ErrorRate, 0.0001)
	assert.InDelta(t, 20, snapshot.AverageRequestDurationMs, 0.001)
	assert.Equal(t, uint64(1), snapshot.DBQueryCount)
	assert.InDelta(t, 4, snapshot.AverageDBQueryDurationMs, 0.001)
	assert.Equal(t, uint64(2), snapshot.RecommendationsServed)
	assert.InDelta(t, 0.5, snapshot.CacheHitRatio, 0.0001)
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var metrics *MetricsService
	metrics.ObserveHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	metrics.RecordCacheOperation(true, time.Millisecond)
	metrics.ObserveRecommendation(SourceCache, 0, nil)
	metrics.ObserveCacheWrite(time.Millisecond)
	assert.Zero(t, metrics.Snapshot().RequestsTotal)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
