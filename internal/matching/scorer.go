package matching

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	subjectWeight     = 40.0
	levelExactWeight  = 25.0
	levelGradeWeight  = 15.0
	languageWeight    = 15.0
	ratingWeight      = 10.0
	ratingDefault     = 5.0
	sessionsWeight    = 5.0
	sessionsDefault   = 2.5
	sessionsPerPoint  = 50.0
	sessionsReasonMin = 100
	experienceTopBand = 5.0
	experienceMidBand = 3.0
	maxRating         = 5.0
	gradeMarker       = "Grade"
)

// Score computes the compatibility between a student and a mentor. Sub-scores
// are added in a fixed order (subjects, level, language, rating, sessions,
// experience) and the reasons follow that same order.
func Score(student StudentProfile, mentor MentorRecord) MatchResult {
	var total float64
	reasons := make([]string, 0, 6)

	if matched := matchedSubjects(student.SubjectsOfInterest, mentor.Subjects); len(matched) > 0 {
		total += float64(len(matched)) / float64(len(student.SubjectsOfInterest)) * subjectWeight
		reasons = append(reasons, fmt.Sprintf("Matches %d of your subjects: %s", len(matched), strings.Join(matched, ", ")))
	}

	level := student.CurrentEducationLevel
	switch {
	case contains(mentor.PreferredStudentLevels, level):
		total += levelExactWeight
		reasons = append(reasons, "Teaches your education level: "+level)
	case strings.Contains(level, gradeMarker) && anyContains(mentor.PreferredStudentLevels, gradeMarker):
		total += levelGradeWeight
		reasons = append(reasons, "Teaches similar grade levels")
	}

	if contains(mentor.PreferredLanguage, DefaultStudentLanguage) {
		total += languageWeight
		reasons = append(reasons, "Speaks your preferred language: "+DefaultStudentLanguage)
	}

	if rating, ok := ratingOf(mentor); ok {
		total += clamp(rating/maxRating*ratingWeight, 0, ratingWeight)
		reasons = append(reasons, fmt.Sprintf("High rating: %s/5", strconv.FormatFloat(rating, 'f', -1, 64)))
	} else {
		total += ratingDefault
	}

	if sessions, ok := sessionsOf(mentor); ok {
		total += clamp(float64(sessions)/sessionsPerPoint, 0, sessionsWeight)
		if sessions > sessionsReasonMin {
			reasons = append(reasons, fmt.Sprintf("Experienced mentor with %d sessions", sessions))
		}
	} else {
		total += sessionsDefault
	}

	switch mentor.TeachingExperience {
	case ExperienceFiveYearsPlus:
		total += experienceTopBand
		reasons = append(reasons, "Highly experienced teacher (5+ years)")
	case ExperienceThreeToFive:
		total += experienceMidBand
		reasons = append(reasons, "Experienced teacher (3-5 years)")
	}

	return MatchResult{
		Mentor:  mentor,
		Score:   roundScore(total),
		Reasons: reasons,
	}
}

// Reasons returns only the human readable explanation for a pair.
func Reasons(student StudentProfile, mentor MentorRecord) []string {
	return Score(student, mentor).Reasons
}

// matchedSubjects keeps the student's subjects, in their order, that overlap
// any mentor subject.
func matchedSubjects(interests, taught []string) []string {
	if len(interests) == 0 {
		return nil
	}
	matched := make([]string, 0, len(interests))
	for _, subject := range interests {
		if subjectOverlaps(subject, taught) {
			matched = append(matched, subject)
		}
	}
	return matched
}

// subjectOverlaps compares case-insensitively, accepting a substring in either direction.
func subjectOverlaps(subject string, taught []string) bool {
	needle := strings.ToLower(subject)
	for _, candidate := range taught {
		hay := strings.ToLower(candidate)
		if strings.Contains(hay, needle) || strings.Contains(needle, hay) {
			return true
		}
	}
	return false
}

// zero is treated as "not rated yet", same as nil
func ratingOf(m MentorRecord) (float64, bool) {
	if m.Rating == nil || *m.Rating == 0 {
		return 0, false
	}
	return *m.Rating, true
}

func sessionsOf(m MentorRecord) (int, bool) {
	if m.TotalSessions == nil || *m.TotalSessions == 0 {
		return 0, false
	}
	return *m.TotalSessions, true
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func anyContains(values []string, substr string) bool {
	for _, v := range values {
		if strings.Contains(v, substr) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
