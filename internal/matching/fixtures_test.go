package matching

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func sampleMentors() []MentorRecord {
	return []MentorRecord{
		{
			ID:                     "m1",
			Subjects:               []string{"Science", "Physics", "Biology"},
			PreferredStudentLevels: []string{"Grade 10", "Grade 11", "Advanced Level"},
			PreferredLanguage:      []string{"English", "Tamil"},
			TeachingExperience:     ExperienceFiveYearsPlus,
			Rating:                 floatPtr(4.8),
			TotalSessions:          intPtr(156),
			Location:               "Colombo",
			SessionDuration:        DurationHalfToOneHour,
		},
		{
			ID:                     "m2",
			Subjects:               []string{"Mathematics", "History", "English"},
			PreferredStudentLevels: []string{"Grade 9", "Grade 10", "Ordinary Level"},
			PreferredLanguage:      []string{"English"},
			TeachingExperience:     ExperienceThreeToFive,
			Rating:                 floatPtr(4.6),
			TotalSessions:          intPtr(89),
			Location:               "Galle",
			SessionDuration:        DurationOneHour,
		},
		{
			ID:                     "m3",
			Subjects:               []string{"Chemistry", "Art", "Commerce"},
			PreferredStudentLevels: []string{"Grade 10", "Grade 11", "Advanced Level"},
			PreferredLanguage:      []string{"Sinhala"},
			TeachingExperience:     ExperienceOneToThree,
			Rating:                 floatPtr(4.7),
			TotalSessions:          intPtr(67),
			Location:               "Colombo 07",
			SessionDuration:        DurationOneHour,
		},
		{
			ID:                     "m4",
			Subjects:               []string{"Computer Science", "Mathematics"},
			PreferredStudentLevels: []string{"Advanced Level", "University"},
			PreferredLanguage:      []string{"English", "Sinhala"},
			TeachingExperience:     ExperienceUnderOneYear,
			Location:               "Kandy",
			SessionDuration:        DurationOneToTwoHours,
		},
	}
}

func mentorIDs(mentors []MentorRecord) []string {
	ids := make([]string, len(mentors))
	for i, m := range mentors {
		ids[i] = m.ID
	}
	return ids
}
