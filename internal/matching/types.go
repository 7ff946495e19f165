// Package matching ranks mentors against a student profile.
//
// Every function in this package is pure: it performs no I/O, keeps no state
// and returns freshly allocated results, so callers may invoke it concurrently
// on their own input snapshots.
package matching

// DefaultStudentLanguage is the language assumed for every student when
// scoring language compatibility. Student profiles do not carry a language
// preference yet.
const DefaultStudentLanguage = "English"

// Teaching experience bands recognised by the scorer.
const (
	ExperienceUnderOneYear  = "Less than 1 year"
	ExperienceOneToThree    = "1-3 years"
	ExperienceThreeToFive   = "3-5 years"
	ExperienceFiveYearsPlus = "5+ years"
)

// Session duration values offered by mentors.
const (
	DurationHalfToOneHour = "30 mins - 1 hour"
	DurationOneHour       = "1 hour"
	DurationOneToTwoHours = "1-2 hours"
	DurationTwoHoursPlus  = "2+ hours"
)

// StudentProfile is the read-only view of a student used for scoring.
type StudentProfile struct {
	SubjectsOfInterest    []string
	CurrentEducationLevel string
}

// MentorRecord is the read-only view of a mentor used for filtering and scoring.
// Rating and TotalSessions are optional; nil or zero means the mentor has no
// recorded value yet.
type MentorRecord struct {
	ID                     string
	Subjects               []string
	PreferredStudentLevels []string
	PreferredLanguage      []string
	TeachingExperience     string
	Rating                 *float64
	TotalSessions          *int
	Location               string
	SessionDuration        string
}

// MatchResult holds the compatibility score for one student/mentor pair.
type MatchResult struct {
	Mentor  MentorRecord
	Score   float64
	Reasons []string
}

// FilterOptions narrows a mentor collection before scoring. The zero value of
// each facet (empty string, nil or empty slice) imposes no constraint.
type FilterOptions struct {
	SessionDuration string
	Subjects        []string
	Languages       []string
	StudentLevels   []string
	Location        string
}

// IsZero reports whether no facet is active.
func (o FilterOptions) IsZero() bool {
	return o.SessionDuration == "" &&
		len(o.Subjects) == 0 &&
		len(o.Languages) == 0 &&
		len(o.StudentLevels) == 0 &&
		o.Location == ""
}
