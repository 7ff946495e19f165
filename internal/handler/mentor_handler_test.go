package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/mentor-match-api/internal/models"
	appErrors "github.com/noah-isme/mentor-match-api/pkg/errors"
)

type fakeMentorSrv struct {
	mentors    []models.Mentor
	lastFilter models.MentorFilter
	err        error
}

func (f *fakeMentorSrv) List(_ context.Context, filter models.MentorFilter) ([]models.Mentor, *models.Pagination, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.mentors, &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: len(f.mentors)}, nil
}

func (f *fakeMentorSrv) Get(_ context.Context, id string) (*models.Mentor, error) {
	for _, m := range f.mentors {
		if m.ID == id {
			mentor := m
			return &mentor, nil
		}
	}
	return nil, appErrors.ErrMentorNotFound
}

func TestMentorHandlerListParsesQuery(t *testing.T) {
	srv := &fakeMentorSrv{mentors: []models.Mentor{{ID: "m1", FullName: "Rahul Lavan"}}}
	handler := NewMentorHandler(srv)

	c, rec := newTestContext(http.MethodGet, "/mentors?subject=Physics&location=colombo&level=Grade+10&search=+lab+&page=2&limit=5&sort=rating&order=desc")
	handler.List(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.MentorFilter{
		Search:    "lab",
		Subject:   "Physics",
		Location:  "colombo",
		Level:     "Grade 10",
		Page:      2,
		PageSize:  5,
		SortBy:    "rating",
		SortOrder: "desc",
	}, srv.lastFilter)

	envelope := decodeEnvelope(t, rec)
	var mentors []models.Mentor
	require.NoError(t, json.Unmarshal(envelope.Data, &mentors))
	require.Len(t, mentors, 1)
	assert.Equal(t, "Rahul Lavan", mentors[0].FullName)
	assert.Equal(t, float64(2), envelope.Pagination["page"])
}

func TestMentorHandlerListError(t *testing.T) {
	handler := NewMentorHandler(&fakeMentorSrv{err: appErrors.ErrInternal})

	c, rec := newTestContext(http.MethodGet, "/mentors")
	handler.List(c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", decodeEnvelope(t, rec).Error["code"])
}

func TestMentorHandlerGet(t *testing.T) {
	handler := NewMentorHandler(&fakeMentorSrv{mentors: []models.Mentor{{ID: "m1", FullName: "Rahul Lavan"}}})

	c, rec := newTestContext(http.MethodGet, "/mentors/m1")
	c.Params = gin.Params{{Key: "id", Value: "m1"}}
	handler.Get(c)
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newTestContext(http.MethodGet, "/mentors/m9")
	c.Params = gin.Params{{Key: "id", Value: "m9"}}
	handler.Get(c)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeEnvelope(t, rec).Error["code"])
}
