package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/mentor-match-api/internal/dto"
	"github.com/noah-isme/mentor-match-api/internal/middleware"
	appErrors "github.com/noah-isme/mentor-match-api/pkg/errors"
	"github.com/noah-isme/mentor-match-api/pkg/response"
)

type recommendationService interface {
	Recommend(ctx context.Context, studentID string, req dto.RecommendationRequest) (*dto.RecommendationResponse, bool, error)
	Explain(ctx context.Context, studentID, mentorID string) (*dto.MatchExplanation, error)
	Export(ctx context.Context, studentID string, req dto.RecommendationRequest, format string) (*dto.ExportFile, error)
}

// RecommendationHandler serves ranked mentor lists for students.
type RecommendationHandler struct {
	service recommendationService
}

// NewRecommendationHandler constructs the handler.
func NewRecommendationHandler(service recommendationService) *RecommendationHandler {
	return &RecommendationHandler{service: service}
}

// Recommend godoc
// @Summary Recommended mentors for a student
// @Tags Recommendations
// @Produce json
// @Param id path string true "Student ID"
// @Param limit query int false "Maximum mentors returned (1-50)"
// @Param subjects query string false "Comma separated subjects"
// @Param languages query string false "Comma separated languages"
// @Param levels query string false "Comma separated student levels"
// @Param location query string false "Location contains"
// @Param sessionDuration query string false "Exact session duration"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{id}/recommendations [get]
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	req, err := parseRecommendationRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	start := time.Now()
	result, cacheHit, err := h.service.Recommend(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	middleware.SetProcessingTime(c, time.Since(start))
	response.JSON(c, http.StatusOK, result, nil, middleware.ExtractMeta(c))
}

// Explain godoc
// @Summary Explain the match between a student and a mentor
// @Tags Recommendations
// @Produce json
// @Param id path string true "Student ID"
// @Param mentorId path string true "Mentor ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{id}/matches/{mentorId} [get]
func (h *RecommendationHandler) Explain(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	result, err := h.service.Explain(c.Request.Context(), c.Param("id"), c.Param("mentorId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Export godoc
// @Summary Download the recommendation list
// @Tags Recommendations
// @Produce text/csv
// @Produce application/pdf
// @Param id path string true "Student ID"
// @Param format query string false "csv (default) or pdf"
// @Param limit query int false "Maximum mentors returned (1-50)"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /students/{id}/recommendations/export [get]
func (h *RecommendationHandler) Export(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	req, err := parseRecommendationRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.service.Export(c.Request.Context(), c.Param("id"), req, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Content)
}

func parseRecommendationRequest(c *gin.Context) (dto.RecommendationRequest, error) {
	req := dto.RecommendationRequest{
		Subjects:        queryList(c, "subjects"),
		Languages:       queryList(c, "languages"),
		Levels:          queryList(c, "levels"),
		Location:        strings.TrimSpace(c.Query("location")),
		SessionDuration: strings.TrimSpace(c.Query("sessionDuration")),
	}
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return req, appErrors.Clone(appErrors.ErrValidation, "limit must be an integer")
		}
		if limit <= 0 {
			return req, appErrors.Clone(appErrors.ErrValidation, "limit must be positive")
		}
		req.Limit = limit
	}
	return req, nil
}

// queryList accepts both repeated keys and comma separated values.
func queryList(c *gin.Context, key string) []string {
	var values []string
	for _, raw := range c.QueryArray(key) {
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				values = append(values, trimmed)
			}
		}
	}
	return values
}
