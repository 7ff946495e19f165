package models

import (
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/noah-isme/mentor-match-api/internal/matching"
)

// Mentor represents a mentor profile in the catalog.
type Mentor struct {
	ID                     string         `db:"id" json:"id"`
	UserID                 string         `db:"user_id" json:"user_id"`
	FullName               string         `db:"full_name" json:"full_name"`
	Location               string         `db:"current_location" json:"location"`
	Subjects               pq.StringArray `db:"subjects_to_teach" json:"subjects"`
	ShortBio               string         `db:"short_bio" json:"short_bio"`
	ProfessionalRole       string         `db:"professional_role" json:"professional_role"`
	SessionDuration        string         `db:"session_duration" json:"session_duration"`
	PreferredLanguage      pq.StringArray `db:"preferred_language" json:"preferred_language"`
	TeachingExperience     string         `db:"teaching_experience" json:"teaching_experience"`
	PreferredStudentLevels pq.StringArray `db:"preferred_student_levels" json:"preferred_student_levels"`
	Rating                 *float64       `db:"rating" json:"rating,omitempty"`
	TotalSessions          *int           `db:"total_sessions" json:"total_sessions,omitempty"`
	CreatedAt              time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt              time.Time      `db:"updated_at" json:"updated_at"`
}

// Record returns the matching view of the mentor.
func (m Mentor) Record() matching.MentorRecord {
	return matching.MentorRecord{
		ID:                     m.ID,
		Subjects:               []string(m.Subjects),
		PreferredStudentLevels: []string(m.PreferredStudentLevels),
		PreferredLanguage:      []string(m.PreferredLanguage),
		TeachingExperience:     m.TeachingExperience,
		Rating:                 m.Rating,
		TotalSessions:          m.TotalSessions,
		Location:               m.Location,
		SessionDuration:        m.SessionDuration,
	}
}

// MentorFilter captures the directory listing filters.
type MentorFilter struct {
	Search    string
	Subject   string
	Location  string
	Level     string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// Directory page size bounds.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Normalize trims the text facets and clamps paging: page starts at 1 and
// an out of range page size falls back to DefaultPageSize.
func (f MentorFilter) Normalize() MentorFilter {
	f.Search = strings.TrimSpace(f.Search)
	f.Subject = strings.TrimSpace(f.Subject)
	f.Location = strings.TrimSpace(f.Location)
	f.Level = strings.TrimSpace(f.Level)
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize <= 0 || f.PageSize > MaxPageSize {
		f.PageSize = DefaultPageSize
	}
	return f
}

// Offset is the row offset of a normalized filter's page.
func (f MentorFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}
