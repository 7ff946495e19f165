package matching

import "strings"

// Filter keeps the mentors that satisfy every active facet of opts, preserving
// their relative order. Within a facet any one of the listed values is enough.
func Filter(mentors []MentorRecord, opts FilterOptions) []MentorRecord {
	if opts.IsZero() {
		return mentors
	}
	location := strings.ToLower(opts.Location)

	out := make([]MentorRecord, 0, len(mentors))
	for _, mentor := range mentors {
		if opts.SessionDuration != "" && mentor.SessionDuration != opts.SessionDuration {
			continue
		}
		if len(opts.Subjects) > 0 && !anySubjectOverlaps(opts.Subjects, mentor.Subjects) {
			continue
		}
		if len(opts.Languages) > 0 && !containsAny(mentor.PreferredLanguage, opts.Languages) {
			continue
		}
		if len(opts.StudentLevels) > 0 && !containsAny(mentor.PreferredStudentLevels, opts.StudentLevels) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(mentor.Location), location) {
			continue
		}
		out = append(out, mentor)
	}
	return out
}

func anySubjectOverlaps(wanted, taught []string) bool {
	for _, subject := range wanted {
		if subjectOverlaps(subject, taught) {
			return true
		}
	}
	return false
}

func containsAny(values, candidates []string) bool {
	for _, candidate := range candidates {
		if contains(values, candidate) {
			return true
		}
	}
	return false
}
