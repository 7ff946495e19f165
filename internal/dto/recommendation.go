package dto

import (
	"time"

	"github.com/noah-isme/mentor-match-api/internal/models"
)

// RecommendationRequest carries the ranking limit and optional filter facets.
// Empty facets impose no constraint.
type RecommendationRequest struct {
	Limit           int      `json:"limit" validate:"omitempty,min=1,max=50"`
	Subjects        []string `json:"subjects" validate:"omitempty,dive,max=100"`
	Languages       []string `json:"languages" validate:"omitempty,dive,max=50"`
	Levels          []string `json:"levels" validate:"omitempty,dive,max=50"`
	Location        string   `json:"location" validate:"omitempty,max=100"`
	SessionDuration string   `json:"sessionDuration" validate:"omitempty,max=50"`
}

// RecommendationItem is one ranked mentor with its explanation.
type RecommendationItem struct {
	Rank    int           `json:"rank"`
	Mentor  models.Mentor `json:"mentor"`
	Score   float64       `json:"score"`
	Reasons []string      `json:"reasons"`
}

// RecommendationResponse is the ranked list returned to a student.
type RecommendationResponse struct {
	StudentID   string               `json:"studentId"`
	Limit       int                  `json:"limit"`
	Candidates  int                  `json:"candidates"`
	Items       []RecommendationItem `json:"items"`
	GeneratedAt time.Time            `json:"generatedAt"`
}

// MatchExplanation details the score of a single student/mentor pair.
type MatchExplanation struct {
	StudentID string   `json:"studentId"`
	MentorID  string   `json:"mentorId"`
	Score     float64  `json:"score"`
	Reasons   []string `json:"reasons"`
}

// ExportFile is a rendered recommendation sheet ready to be served.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
