package models

import (
	"time"

	"github.com/lib/pq"

	"github.com/noah-isme/mentor-match-api/internal/matching"
)

// Student represents an onboarded student profile.
type Student struct {
	ID                    string         `db:"id" json:"id"`
	UserID                string         `db:"user_id" json:"user_id"`
	FullName              string         `db:"full_name" json:"full_name"`
	CurrentEducationLevel string         `db:"current_education_level" json:"current_education_level"`
	School                *string        `db:"school" json:"school,omitempty"`
	SubjectsOfInterest    pq.StringArray `db:"subjects_of_interest" json:"subjects_of_interest"`
	CreatedAt             time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time      `db:"updated_at" json:"updated_at"`
}

// Profile returns the matching view of the student.
func (s Student) Profile() matching.StudentProfile {
	return matching.StudentProfile{
		SubjectsOfInterest:    []string(s.SubjectsOfInterest),
		CurrentEducationLevel: s.CurrentEducationLevel,
	}
}
