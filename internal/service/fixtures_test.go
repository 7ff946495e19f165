package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/lib/pq"

	"github.com/noah-isme/mentor-match-api/internal/models"
	appErrors "github.com/noah-isme/mentor-match-api/pkg/errors"
)

const (
	mentorRahul   = "6a1f8c2e-3b4d-4e5f-8a9b-0c1d2e3f4a01"
	mentorChathum = "6a1f8c2e-3b4d-4e5f-8a9b-0c1d2e3f4a02"
	mentorMalsha  = "6a1f8c2e-3b4d-4e5f-8a9b-0c1d2e3f4a03"
	mentorIsuru   = "6a1f8c2e-3b4d-4e5f-8a9b-0c1d2e3f4a04"
	studentNimal  = "d2b7a9e4-1c3f-4a6b-9d8e-7f6a5b4c3d21"
	unknownID     = "00000000-0000-4000-8000-0000000000ff"
)

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func sampleCatalog() []models.Mentor {
	return []models.Mentor{
		{
			ID:                     mentorRahul,
			FullName:               "Rahul Lavan",
			Location:               "Colombo",
			Subjects:               pq.StringArray{"Science", "Physics", "Biology"},
			PreferredStudentLevels: pq.StringArray{"Grade 10", "Grade 11", "Advanced Level"},
			PreferredLanguage:      pq.StringArray{"English", "Tamil"},
			TeachingExperience:     "5+ years",
			Rating:                 floatPtr(4.8),
			TotalSessions:          intPtr(156),
			SessionDuration:        "30 mins - 1 hour",
		},
		{
			ID:                     mentorChathum,
			FullName:               "Chathum Rahal",
			Location:               "Galle",
			Subjects:               pq.StringArray{"Mathematics", "History", "English"},
			PreferredStudentLevels: pq.StringArray{"Grade 9", "Grade 10", "Ordinary Level"},
			PreferredLanguage:      pq.StringArray{"English"},
			TeachingExperience:     "3-5 years",
			Rating:                 floatPtr(4.6),
			TotalSessions:          intPtr(89),
			SessionDuration:        "1 hour",
		},
		{
			ID:                     mentorMalsha,
			FullName:               "Malsha Fernando",
			Location:               "Colombo 07",
			Subjects:               pq.StringArray{"Chemistry", "Art", "Commerce"},
			PreferredStudentLevels: pq.StringArray{"Grade 10", "Grade 11", "Advanced Level"},
			PreferredLanguage:      pq.StringArray{"Sinhala"},
			TeachingExperience:     "1-3 years",
			Rating:                 floatPtr(4.7),
			TotalSessions:          intPtr(67),
			SessionDuration:        "1 hour",
		},
		{
			ID:                     mentorIsuru,
			FullName:               "Isuru Jayasinghe",
			Location:               "Kandy",
			Subjects:               pq.StringArray{"Computer Science", "Mathematics"},
			PreferredStudentLevels: pq.StringArray{"Advanced Level", "University"},
			PreferredLanguage:      pq.StringArray{"English", "Sinhala"},
			TeachingExperience:     "Less than 1 year",
			SessionDuration:        "1-2 hours",
		},
	}
}

func sampleStudent() models.Student {
	return models.Student{
		ID:                    studentNimal,
		FullName:              "Nimal Perera",
		CurrentEducationLevel: "Grade 10",
		SubjectsOfInterest:    pq.StringArray{"Mathematics", "Physics"},
	}
}

type fakeMentorRepo struct {
	mentors      []models.Mentor
	listFilter   models.MentorFilter
	listTotal    int
	catalogCalls int
	err          error
}

func (f *fakeMentorRepo) List(ctx context.Context, filter models.MentorFilter) ([]models.Mentor, int, error) {
	f.listFilter = filter
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.mentors, f.listTotal, nil
}

func (f *fakeMentorRepo) FindByID(ctx context.Context, id string) (*models.Mentor, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, m := range f.mentors {
		if m.ID == id {
			mentor := m
			return &mentor, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeMentorRepo) Catalog(ctx context.Context) ([]models.Mentor, error) {
	f.catalogCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.mentors, nil
}

type fakeStudentRepo struct {
	students map[string]models.Student
	err      error
}

func newFakeStudentRepo(students ...models.Student) *fakeStudentRepo {
	repo := &fakeStudentRepo{students: make(map[string]models.Student)}
	for _, s := range students {
		repo.students[s.ID] = s
	}
	return repo
}

func (f *fakeStudentRepo) FindByID(ctx context.Context, id string) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.students[id]; ok {
		return &s, nil
	}
	return nil, sql.ErrNoRows
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	ttls    map[string]time.Duration
	getErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte), ttls: make(map[string]time.Duration)}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return m.getErr
	}
	raw, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	m.ttls[key] = ttl
	return nil
}

func (m *memoryCache) keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	return keys
}

var errStorage = errors.New("connection refused")
