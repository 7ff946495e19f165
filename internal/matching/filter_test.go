package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterLocationSubstringCaseInsensitive(t *testing.T) {
	got := Filter(sampleMentors(), FilterOptions{Location: "colo"})

	assert.Equal(t, []string{"m1", "m3"}, mentorIDs(got))
}

func TestFilterSessionDurationExact(t *testing.T) {
	got := Filter(sampleMentors(), FilterOptions{SessionDuration: DurationOneHour})

	assert.Equal(t, []string{"m2", "m3"}, mentorIDs(got))
	assert.Empty(t, Filter(sampleMentors(), FilterOptions{SessionDuration: "1 HOUR"}))
}

func TestFilterSubjectsAnyOverlap(t *testing.T) {
	cases := []struct {
		name     string
		subjects []string
		want     []string
	}{
		{name: "prefix", subjects: []string{"math"}, want: []string{"m2", "m4"}},
		{name: "longer filter value", subjects: []string{"Applied Chemistry"}, want: []string{"m3"}},
		{name: "any of several", subjects: []string{"biology", "ART"}, want: []string{"m1", "m3"}},
		{name: "no overlap", subjects: []string{"Geography"}, want: []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(sampleMentors(), FilterOptions{Subjects: tc.subjects})
			assert.Equal(t, tc.want, mentorIDs(got))
		})
	}
}

func TestFilterLanguagesExactMembership(t *testing.T) {
	assert.Equal(t, []string{"m3", "m4"}, mentorIDs(Filter(sampleMentors(), FilterOptions{Languages: []string{"Sinhala"}})))
	assert.Equal(t, []string{"m1", "m3", "m4"}, mentorIDs(Filter(sampleMentors(), FilterOptions{Languages: []string{"Tamil", "Sinhala"}})))
	assert.Empty(t, Filter(sampleMentors(), FilterOptions{Languages: []string{"sinhala"}}))
}

func TestFilterStudentLevelsExactMembership(t *testing.T) {
	got := Filter(sampleMentors(), FilterOptions{StudentLevels: []string{"Grade 9", "University"}})

	assert.Equal(t, []string{"m2", "m4"}, mentorIDs(got))
}

func TestFilterCombinesFacetsWithAnd(t *testing.T) {
	opts := FilterOptions{
		Location:      "colombo",
		StudentLevels: []string{"Advanced Level"},
		Languages:     []string{"English"},
	}

	assert.Equal(t, []string{"m1"}, mentorIDs(Filter(sampleMentors(), opts)))
}

func TestFilterIdentityWithoutFacets(t *testing.T) {
	mentors := sampleMentors()

	assert.Equal(t, mentors, Filter(mentors, FilterOptions{}))
	assert.Equal(t, mentors, Filter(mentors, FilterOptions{Subjects: []string{}, Languages: nil}))
}

func TestFilterIsIdempotent(t *testing.T) {
	opts := FilterOptions{Subjects: []string{"science"}, Location: "o"}
	once := Filter(sampleMentors(), opts)

	assert.Equal(t, once, Filter(once, opts))
}

func TestFilterEmptyInput(t *testing.T) {
	assert.Empty(t, Filter(nil, FilterOptions{Location: "Colombo"}))
	assert.Empty(t, Filter([]MentorRecord{}, FilterOptions{}))
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	mentors := sampleMentors()
	before := mentorIDs(mentors)

	_ = Filter(mentors, FilterOptions{Location: "Galle"})

	assert.Equal(t, before, mentorIDs(mentors))
}
