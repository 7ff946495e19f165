package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/mentor-match-api/internal/dto"
	"github.com/noah-isme/mentor-match-api/internal/matching"
	"github.com/noah-isme/mentor-match-api/internal/models"
	appErrors "github.com/noah-isme/mentor-match-api/pkg/errors"
	"github.com/noah-isme/mentor-match-api/pkg/export"
	"github.com/noah-isme/mentor-match-api/pkg/middleware/requestid"
)

type mentorCatalog interface {
	FindByID(ctx context.Context, id string) (*models.Mentor, error)
	Catalog(ctx context.Context) ([]models.Mentor, error)
}

type studentFinder interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title, subtitle string) ([]byte, error)
}

// RecommendationServiceConfig tunes ranking defaults and caching.
type RecommendationServiceConfig struct {
	CacheTTL     time.Duration
	DefaultLimit int
	MaxLimit     int
}

// RecommendationServiceParams groups constructor dependencies.
type RecommendationServiceParams struct {
	Mentors   mentorCatalog
	Students  studentFinder
	Cache     *CacheService
	Metrics   *MetricsService
	Validator *validator.Validate
	Logger    *zap.Logger
	CSV       csvRenderer
	PDF       pdfRenderer
	Config    RecommendationServiceConfig
}

// RecommendationService loads a student and the mentor catalog, runs the
// matching engine on that snapshot and caches the ranked result.
type RecommendationService struct {
	mentors   mentorCatalog
	students  studentFinder
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	csv       csvRenderer
	pdf       pdfRenderer
	now       func() time.Time
	cfg       RecommendationServiceConfig
}

// NewRecommendationService constructs a RecommendationService with sane defaults.
func NewRecommendationService(params RecommendationServiceParams) *RecommendationService {
	cfg := params.Config
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 6
	}
	if cfg.MaxLimit < cfg.DefaultLimit {
		cfg.MaxLimit = cfg.DefaultLimit
	}
	validate := params.Validator
	if validate == nil {
		validate = validator.New()
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	csv := params.CSV
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	pdf := params.PDF
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &RecommendationService{
		mentors:   params.Mentors,
		students:  params.Students,
		cache:     params.Cache,
		metrics:   params.Metrics,
		validator: validate,
		logger:    logger,
		csv:       csv,
		pdf:       pdf,
		now:       time.Now,
		cfg:       cfg,
	}
}

// Recommend returns the top mentors for a student and reports whether the
// result was served from cache.
func (s *RecommendationService) Recommend(ctx context.Context, studentID string, req dto.RecommendationRequest) (*dto.RecommendationResponse, bool, error) {
	studentID, err := parseID(studentID, "student")
	if err != nil {
		return nil, false, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, false, appErrors.Invalid(err, "invalid recommendation request")
	}
	req = s.normalize(req)

	cacheKey := recommendationCacheKey(studentID, req)
	if cached, hit := s.tryCache(ctx, cacheKey); hit {
		s.metrics.ObserveRecommendation(SourceCache, cached.Candidates, itemScores(cached.Items))
		return cached, true, nil
	}

	resp, err := s.rank(ctx, studentID, req)
	if err != nil {
		return nil, false, err
	}
	s.persistCache(ctx, cacheKey, resp)
	s.metrics.ObserveRecommendation(SourceEngine, resp.Candidates, itemScores(resp.Items))
	return resp, false, nil
}

// Explain scores one mentor against the student, ignoring filters.
func (s *RecommendationService) Explain(ctx context.Context, studentID, mentorID string) (*dto.MatchExplanation, error) {
	studentID, err := parseID(studentID, "student")
	if err != nil {
		return nil, err
	}
	mentorID, err = parseID(mentorID, "mentor")
	if err != nil {
		return nil, err
	}
	student, err := s.loadStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	mentor, err := s.mentors.FindByID(ctx, mentorID)
	if err != nil {
		return nil, appErrors.FromStore(err, appErrors.ErrMentorNotFound, "failed to load mentor")
	}
	result := matching.Score(student.Profile(), mentor.Record())
	return &dto.MatchExplanation{
		StudentID: student.ID,
		MentorID:  mentor.ID,
		Score:     result.Score,
		Reasons:   result.Reasons,
	}, nil
}

// Export renders the recommendation list as a downloadable CSV or PDF sheet.
func (s *RecommendationService) Export(ctx context.Context, studentID string, req dto.RecommendationRequest, format string) (*dto.ExportFile, error) {
	parsed, err := export.ParseFormat(format)
	if err != nil {
		return nil, appErrors.Invalid(err, "format must be csv or pdf")
	}
	resp, _, err := s.Recommend(ctx, studentID, req)
	if err != nil {
		return nil, err
	}

	dataset := recommendationDataset(resp)
	var payload []byte
	switch parsed {
	case export.FormatPDF:
		subtitle := fmt.Sprintf("Student %s, generated %s", resp.StudentID, resp.GeneratedAt.UTC().Format(time.RFC3339))
		payload, err = s.pdf.Render(dataset, "Mentor recommendations", subtitle)
	default:
		payload, err = s.csv.Render(dataset)
	}
	if err != nil {
		return nil, appErrors.Internal(err, "failed to render export")
	}

	filename := fmt.Sprintf("recommendations_%s_%s.%s", sanitizeFilename(resp.StudentID), s.now().UTC().Format("20060102_150405"), parsed)
	return &dto.ExportFile{Filename: filename, ContentType: parsed.ContentType(), Content: payload}, nil
}

func (s *RecommendationService) rank(ctx context.Context, studentID string, req dto.RecommendationRequest) (*dto.RecommendationResponse, error) {
	student, err := s.loadStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	mentors, err := s.mentors.Catalog(ctx)
	s.metrics.ObserveDBQuery("mentor_catalog", time.Since(start))
	if err != nil {
		return nil, appErrors.Internal(err, "failed to load mentor catalog")
	}

	records := make([]matching.MentorRecord, len(mentors))
	byID := make(map[string]models.Mentor, len(mentors))
	for i, mentor := range mentors {
		records[i] = mentor.Record()
		byID[mentor.ID] = mentor
	}

	ranked := matching.Rank(student.Profile(), records, filterOptions(req))
	candidates := len(ranked)
	if len(ranked) > req.Limit {
		ranked = ranked[:req.Limit]
	}

	items := make([]dto.RecommendationItem, len(ranked))
	for i, result := range ranked {
		items[i] = dto.RecommendationItem{
			Rank:    i + 1,
			Mentor:  byID[result.Mentor.ID],
			Score:   result.Score,
			Reasons: result.Reasons,
		}
	}

	s.logger.Debug("recommendations ranked",
		zap.String("request_id", requestid.FromContext(ctx)),
		zap.String("student_id", studentID),
		zap.Int("catalog", len(mentors)),
		zap.Int("candidates", candidates),
		zap.Int("returned", len(items)),
	)

	return &dto.RecommendationResponse{
		StudentID:   student.ID,
		Limit:       req.Limit,
		Candidates:  candidates,
		Items:       items,
		GeneratedAt: s.now().UTC(),
	}, nil
}

func (s *RecommendationService) loadStudent(ctx context.Context, id string) (*models.Student, error) {
	start := time.Now()
	student, err := s.students.FindByID(ctx, id)
	s.metrics.ObserveDBQuery("student_profile", time.Since(start))
	if err != nil {
		return nil, appErrors.FromStore(err, appErrors.ErrStudentNotFound, "failed to load student")
	}
	return student, nil
}

func (s *RecommendationService) normalize(req dto.RecommendationRequest) dto.RecommendationRequest {
	switch {
	case req.Limit <= 0:
		req.Limit = s.cfg.DefaultLimit
	case req.Limit > s.cfg.MaxLimit:
		req.Limit = s.cfg.MaxLimit
	}
	req.Subjects = compactValues(req.Subjects)
	req.Languages = compactValues(req.Languages)
	req.Levels = compactValues(req.Levels)
	req.Location = strings.TrimSpace(req.Location)
	req.SessionDuration = strings.TrimSpace(req.SessionDuration)
	return req
}

// tryCache treats lookup failures as misses; the engine result is always
// available as a fallback.
func (s *RecommendationService) tryCache(ctx context.Context, key string) (*dto.RecommendationResponse, bool) {
	if s.cache == nil {
		return nil, false
	}
	var cached dto.RecommendationResponse
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil || !hit {
		return nil, false
	}
	return &cached, true
}

func (s *RecommendationService) persistCache(ctx context.Context, key string, value *dto.RecommendationResponse) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("recommendation cache write failed", zap.String("request_id", requestid.FromContext(ctx)), zap.String("key", key), zap.Error(err))
	}
}

func filterOptions(req dto.RecommendationRequest) matching.FilterOptions {
	return matching.FilterOptions{
		SessionDuration: req.SessionDuration,
		Subjects:        req.Subjects,
		Languages:       req.Languages,
		StudentLevels:   req.Levels,
		Location:        req.Location,
	}
}

// recommendationCacheKey hashes the normalised request. Facet values are
// sorted because their order never changes the ranking.
func recommendationCacheKey(studentID string, req dto.RecommendationRequest) string {
	var b strings.Builder
	b.WriteString("limit=")
	b.WriteString(strconv.Itoa(req.Limit))
	writeFacet(&b, "subjects", req.Subjects)
	writeFacet(&b, "languages", req.Languages)
	writeFacet(&b, "levels", req.Levels)
	writeFacet(&b, "location", []string{req.Location})
	writeFacet(&b, "duration", []string{req.SessionDuration})
	return fmt.Sprintf("reco:%s:%016x", studentID, xxhash.Sum64String(b.String()))
}

func writeFacet(b *strings.Builder, name string, values []string) {
	sorted := append([]string(nil), values...)
	sort.Strings(sorted)
	b.WriteByte('\x1f')
	b.WriteString(name)
	b.WriteByte('=')
	b.WriteString(strings.Join(sorted, "\x1e"))
}

func compactValues(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func itemScores(items []dto.RecommendationItem) []float64 {
	scores := make([]float64, len(items))
	for i, item := range items {
		scores[i] = item.Score
	}
	return scores
}

func recommendationDataset(resp *dto.RecommendationResponse) export.Dataset {
	data := export.Dataset{Headers: []string{"Rank", "Mentor", "Location", "Subjects", "Experience", "Rating", "Score", "Reasons"}}
	for _, item := range resp.Items {
		rating := "-"
		if item.Mentor.Rating != nil && *item.Mentor.Rating > 0 {
			rating = strconv.FormatFloat(*item.Mentor.Rating, 'f', -1, 64)
		}
		data.Append(
			strconv.Itoa(item.Rank),
			item.Mentor.FullName,
			item.Mentor.Location,
			strings.Join(item.Mentor.Subjects, ", "),
			item.Mentor.TeachingExperience,
			rating,
			strconv.FormatFloat(item.Score, 'f', 2, 64),
			strings.Join(item.Reasons, "; "),
		)
	}
	return data
}

func sanitizeFilename(raw string) string {
	if raw == "" {
		return "na"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "..", ".")
	return replacer.Replace(raw)
}
