package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/mentor-match-api/internal/models"
	appErrors "github.com/noah-isme/mentor-match-api/pkg/errors"
)

type mentorRepository interface {
	List(ctx context.Context, filter models.MentorFilter) ([]models.Mentor, int, error)
	FindByID(ctx context.Context, id string) (*models.Mentor, error)
}

// MentorService serves the mentor directory.
type MentorService struct {
	repo   mentorRepository
	logger *zap.Logger
}

// NewMentorService constructs the mentor service.
func NewMentorService(repo mentorRepository, logger *zap.Logger) *MentorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MentorService{repo: repo, logger: logger}
}

// List returns mentors and pagination metadata.
func (s *MentorService) List(ctx context.Context, filter models.MentorFilter) ([]models.Mentor, *models.Pagination, error) {
	filter = filter.Normalize()

	mentors, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("list mentors failed", zap.Error(err))
		return nil, nil, appErrors.Internal(err, "failed to list mentors")
	}
	if mentors == nil {
		mentors = []models.Mentor{}
	}
	return mentors, &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: total}, nil
}

// parseID checks that raw is a UUID and returns its canonical form.
func parseID(raw, kind string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", appErrors.Clone(appErrors.ErrValidation, kind+" id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", appErrors.Invalid(err, kind+" id must be a UUID")
	}
	return id.String(), nil
}

// Get returns a single mentor profile.
func (s *MentorService) Get(ctx context.Context, id string) (*models.Mentor, error) {
	id, err := parseID(id, "mentor")
	if err != nil {
		return nil, err
	}
	mentor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.FromStore(err, appErrors.ErrMentorNotFound, "failed to load mentor")
	}
	return mentor, nil
}
