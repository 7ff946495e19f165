package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/noah-isme/mentor-match-api/internal/matching"
)

// Catalog is an offline snapshot of students and mentors.
type Catalog struct {
	Students []CatalogStudent `toml:"students" json:"students"`
	Mentors  []CatalogMentor  `toml:"mentors" json:"mentors"`
}

// CatalogStudent is one [[students]] table.
type CatalogStudent struct {
	ID       string   `toml:"id" json:"id"`
	Name     string   `toml:"name" json:"name"`
	Level    string   `toml:"level" json:"level"`
	Subjects []string `toml:"subjects" json:"subjects"`
}

// CatalogMentor is one [[mentors]] table. Rating and sessions may be omitted.
type CatalogMentor struct {
	ID         string   `toml:"id" json:"id"`
	Name       string   `toml:"name" json:"name"`
	Subjects   []string `toml:"subjects" json:"subjects"`
	Levels     []string `toml:"levels" json:"levels"`
	Languages  []string `toml:"languages" json:"languages"`
	Experience string   `toml:"experience" json:"experience"`
	Rating     *float64 `toml:"rating" json:"rating,omitempty"`
	Sessions   *int     `toml:"sessions" json:"sessions,omitempty"`
	Location   string   `toml:"location" json:"location"`
	Duration   string   `toml:"duration" json:"duration"`
}

// LoadCatalog reads and validates a TOML catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return nil, errors.New("catalog path is required (use --catalog)")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("catalog file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes TOML catalog content.
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := toml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &catalog, nil
}

// Validate rejects missing or duplicate identifiers.
func (c *Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.Students))
	for i, s := range c.Students {
		if s.ID == "" {
			return fmt.Errorf("students[%d]: id is required", i)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("duplicate student id %q", s.ID)
		}
		seen[s.ID] = struct{}{}
	}
	seen = make(map[string]struct{}, len(c.Mentors))
	for i, m := range c.Mentors {
		if m.ID == "" {
			return fmt.Errorf("mentors[%d]: id is required", i)
		}
		if _, dup := seen[m.ID]; dup {
			return fmt.Errorf("duplicate mentor id %q", m.ID)
		}
		seen[m.ID] = struct{}{}
	}
	return nil
}

// Student looks a student up by id.
func (c *Catalog) Student(id string) (CatalogStudent, error) {
	for _, s := range c.Students {
		if s.ID == id {
			return s, nil
		}
	}
	return CatalogStudent{}, fmt.Errorf("student %q not found in catalog", id)
}

// Mentor looks a mentor up by id.
func (c *Catalog) Mentor(id string) (CatalogMentor, error) {
	for _, m := range c.Mentors {
		if m.ID == id {
			return m, nil
		}
	}
	return CatalogMentor{}, fmt.Errorf("mentor %q not found in catalog", id)
}

// Records returns the mentors in file order.
func (c *Catalog) Records() []matching.MentorRecord {
	records := make([]matching.MentorRecord, len(c.Mentors))
	for i, m := range c.Mentors {
		records[i] = m.Record()
	}
	return records
}

// Profile returns the matching view of the student.
func (s CatalogStudent) Profile() matching.StudentProfile {
	return matching.StudentProfile{SubjectsOfInterest: s.Subjects, CurrentEducationLevel: s.Level}
}

// Record returns the matching view of the mentor.
func (m CatalogMentor) Record() matching.MentorRecord {
	return matching.MentorRecord{
		ID:                     m.ID,
		Subjects:               m.Subjects,
		PreferredStudentLevels: m.Levels,
		PreferredLanguage:      m.Languages,
		TeachingExperience:     m.Experience,
		Rating:                 m.Rating,
		TotalSessions:          m.Sessions,
		Location:               m.Location,
		SessionDuration:        m.Duration,
	}
}
