package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/mentor-match-api/internal/models"
)

const mentorColumns = "id, user_id, full_name, current_location, subjects_to_teach, short_bio, professional_role, session_duration, preferred_language, teaching_experience, preferred_student_levels, rating, total_sessions, created_at, updated_at"

// MentorRepository manages persistence for mentor profiles.
type MentorRepository struct {
	db *sqlx.DB
}

// NewMentorRepository constructs a MentorRepository.
func NewMentorRepository(db *sqlx.DB) *MentorRepository {
	return &MentorRepository{db: db}
}

// List returns mentors matching directory filters along with total count.
// The filter is expected to be normalized; see models.MentorFilter.Normalize.
func (r *MentorRepository) List(ctx context.Context, filter models.MentorFilter) ([]models.Mentor, int, error) {
	base := "FROM mentors WHERE 1=1"
	var conditions []string
	var args []interface{}

	if filter.Subject != "" {
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(subjects_to_teach)", len(args)+1))
		args = append(args, filter.Subject)
	}
	if filter.Location != "" {
		conditions = append(conditions, fmt.Sprintf("current_location ILIKE $%d", len(args)+1))
		args = append(args, "%"+filter.Location+"%")
	}
	if filter.Level != "" {
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(preferred_student_levels)", len(args)+1))
		args = append(args, filter.Level)
	}
	if filter.Search != "" {
		pattern := len(args) + 1
		conditions = append(conditions, fmt.Sprintf("(full_name ILIKE $%d OR short_bio ILIKE $%d OR professional_role ILIKE $%d OR $%d = ANY(subjects_to_teach))", pattern, pattern, pattern, pattern+1))
		args = append(args, "%"+filter.Search+"%", filter.Search)
	}

	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	allowedSorts := map[string]string{
		"full_name":      "full_name",
		"rating":         "rating",
		"total_sessions": "total_sessions",
		"created_at":     "created_at",
	}
	column, ok := allowedSorts[filter.SortBy]
	if !ok {
		column = "full_name"
	}

	order := strings.ToUpper(filter.SortOrder)
	if order != "ASC" && order != "DESC" {
		order = "ASC"
	}

	query := fmt.Sprintf("SELECT %s %s ORDER BY %s %s NULLS LAST, id ASC LIMIT %d OFFSET %d", mentorColumns, base, column, order, filter.PageSize, filter.Offset())
	var mentors []models.Mentor
	if err := r.db.SelectContext(ctx, &mentors, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list mentors: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count mentors: %w", err)
	}

	return mentors, total, nil
}

// FindByID fetches a mentor by ID.
func (r *MentorRepository) FindByID(ctx context.Context, id string) (*models.Mentor, error) {
	query := fmt.Sprintf("SELECT %s FROM mentors WHERE id = $1", mentorColumns)
	var mentor models.Mentor
	if err := r.db.GetContext(ctx, &mentor, query, id); err != nil {
		return nil, err
	}
	return &mentor, nil
}

// Catalog returns every mentor in a deterministic order so that ranking ties
// resolve the same way on every call.
func (r *MentorRepository) Catalog(ctx context.Context) ([]models.Mentor, error) {
	query := fmt.Sprintf("SELECT %s FROM mentors ORDER BY full_name ASC, id ASC", mentorColumns)
	var mentors []models.Mentor
	if err := r.db.SelectContext(ctx, &mentors, query); err != nil {
		return nil, fmt.Errorf("load mentor catalog: %w", err)
	}
	return mentors, nil
}
