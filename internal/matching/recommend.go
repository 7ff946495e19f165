package matching

import "sort"

// Rank filters the mentors, scores each survivor and orders the results by
// score, highest first. Ties keep the filtered input order.
func Rank(student StudentProfile, mentors []MentorRecord, opts FilterOptions) []MatchResult {
	filtered := Filter(mentors, opts)
	if len(filtered) == 0 {
		return []MatchResult{}
	}

	results := make([]MatchResult, len(filtered))
	for i, mentor := range filtered {
		results[i] = Score(student, mentor)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// Recommend returns the top limit mentors for the student after filtering.
// A non-positive limit yields an empty list.
func Recommend(student StudentProfile, mentors []MentorRecord, opts FilterOptions, limit int) []MentorRecord {
	if limit <= 0 {
		return []MentorRecord{}
	}
	ranked := Rank(student, mentors, opts)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]MentorRecord, len(ranked))
	for i, result := range ranked {
		out[i] = result.Mentor
	}
	return out
}
