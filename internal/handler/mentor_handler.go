package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/mentor-match-api/internal/models"
	appErrors "github.com/noah-isme/mentor-match-api/pkg/errors"
	"github.com/noah-isme/mentor-match-api/pkg/response"
)

type mentorService interface {
	List(ctx context.Context, filter models.MentorFilter) ([]models.Mentor, *models.Pagination, error)
	Get(ctx context.Context, id string) (*models.Mentor, error)
}

// MentorHandler exposes the mentor directory.
type MentorHandler struct {
	mentors mentorService
}

// NewMentorHandler constructs the handler.
func NewMentorHandler(mentors mentorService) *MentorHandler {
	return &MentorHandler{mentors: mentors}
}

// List godoc
// @Summary List mentors
// @Tags Mentors
// @Produce json
// @Param subject query string false "Exact subject taught"
// @Param location query string false "Location contains"
// @Param level query string false "Preferred student level"
// @Param search query string false "Search name, bio, role or subject"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param sort query string false "full_name, rating, total_sessions or created_at"
// @Param order query string false "asc or desc"
// @Success 200 {object} response.Envelope
// @Router /mentors [get]
func (h *MentorHandler) List(c *gin.Context) {
	if h.mentors == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	filter := models.MentorFilter{
		Search:    strings.TrimSpace(c.Query("search")),
		Subject:   c.Query("subject"),
		Location:  c.Query("location"),
		Level:     c.Query("level"),
		SortBy:    c.Query("sort"),
		SortOrder: c.Query("order"),
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.PageSize = size
	}

	mentors, pagination, err := h.mentors.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, mentors, pagination)
}

// Get godoc
// @Summary Get mentor detail
// @Tags Mentors
// @Produce json
// @Param id path string true "Mentor ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /mentors/{id} [get]
func (h *MentorHandler) Get(c *gin.Context) {
	if h.mentors == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	mentor, err := h.mentors.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, mentor, nil)
}
