package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/noah-isme/mentor-match-api/internal/dto"
	"github.com/noah-isme/mentor-match-api/internal/handler"
	"github.com/noah-isme/mentor-match-api/internal/models"
	"github.com/noah-isme/mentor-match-api/internal/service"
	"github.com/noah-isme/mentor-match-api/pkg/config"
	appErrors "github.com/noah-isme/mentor-match-api/pkg/errors"
)

type stubMentors struct{}

func (stubMentors) List(context.Context, models.MentorFilter) ([]models.Mentor, *models.Pagination, error) {
	return []models.Mentor{{ID: "m1"}}, &models.Pagination{Page: 1, PageSize: 20, TotalCount: 1}, nil
}

func (stubMentors) Get(_ context.Context, id string) (*models.Mentor, error) {
	if id == "m1" {
		return &models.Mentor{ID: "m1"}, nil
	}
	return nil, appErrors.ErrNotFound
}

type stubRecommendations struct{}

func (stubRecommendations) Recommend(context.Context, string, dto.RecommendationRequest) (*dto.RecommendationResponse, bool, error) {
	return &dto.RecommendationResponse{Items: []dto.RecommendationItem{}}, false, nil
}

func (stubRecommendations) Explain(_ context.Context, studentID, mentorID string) (*dto.MatchExplanation, error) {
	return &dto.MatchExplanation{StudentID: studentID, MentorID: mentorID}, nil
}

func (stubRecommendations) Export(context.Context, string, dto.RecommendationRequest, string) (*dto.ExportFile, error) {
	return &dto.ExportFile{Filename: "r.csv", ContentType: "text/csv", Content: []byte("Rank\n")}, nil
}

func newTestRouter(env string) http.Handler {
	metrics := service.NewMetricsService()
	cfg := &config.Config{Env: env, APIPrefix: "/api/v1/"}
	return NewRouter(cfg, zap.NewNop(), metrics, Handlers{
		Mentors:         handler.NewMentorHandler(stubMentors{}),
		Recommendations: handler.NewRecommendationHandler(stubRecommendations{}),
		Metrics:         handler.NewMetricsHandler(metrics),
	})
}

func serve(router http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRouterRoutes(t *testing.T) {
	router := newTestRouter(config.EnvDevelopment)

	cases := map[string]int{
		"/health":                                     http.StatusOK,
		"/ready":                                      http.StatusOK,
		"/metrics":                                    http.StatusOK,
		"/metrics/summary":                            http.StatusOK,
		"/api/v1/mentors":                             http.StatusOK,
		"/api/v1/mentors/m1":                          http.StatusOK,
		"/api/v1/mentors/m2":                          http.StatusNotFound,
		"/api/v1/students/s-1/recommendations":        http.StatusOK,
		"/api/v1/students/s-1/recommendations/export": http.StatusOK,
		"/api/v1/students/s-1/matches/m1":             http.StatusOK,
		"/api/v1/unknown":                             http.StatusNotFound,
	}
	for path, status := range cases {
		rec := serve(router, path)
		assert.Equal(t, status, rec.Code, path)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"), path)
	}
}

func TestRouterDocsHiddenInProduction(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, serve(newTestRouter(config.EnvProduction), "/docs/index.html").Code)
	assert.Equal(t, http.StatusOK, serve(newTestRouter(config.EnvDevelopment), "/docs/index.html").Code)
}
