package tailor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/metrics"
	"github.com/jonathan/resume-tailor/internal/selection"
	"github.com/jonathan/resume-tailor/internal/skills"
	"github.com/jonathan/resume-tailor/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultHistoryLimit caps tailored resume history listings
const DefaultHistoryLimit = 50

// Service loads state from a Store, runs the Engine and persists results.
type Service struct {
	store    Store
	catalog  CatalogStore
	engine   *Engine
	logger   *zap.Logger
	matchers matcherCache
}

// ServiceOption configures a Service
type ServiceOption func(*Service)

// WithCatalog overrides where the skill catalog is read from, e.g. a cache.
func WithCatalog(c CatalogStore) ServiceOption {
	return func(s *Service) { s.catalog = c }
}

// NewService creates a Service.
func NewService(store Store, logger *zap.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		store:   store,
		catalog: store,
		engine:  NewEngine(logger),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Engine exposes the underlying engine.
func (s *Service) Engine() *Engine {
	return s.engine
}

// IngestJob extracts skills and keywords from a posting and stores the result.
func (s *Service) IngestJob(ctx context.Context, req types.IngestJobRequest) (*types.JobIngest, error) {
	job, err := s.ingestJob(ctx, req)
	metrics.JobIngests.WithLabelValues(outcome(err)).Inc()
	return job, err
}

func (s *Service) ingestJob(ctx context.Context, req types.IngestJobRequest) (*types.JobIngest, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return nil, &ValidationError{Field: "user_id", Message: "user_id is required"}
	}

	catalog, err := s.catalog.ListSkillCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load skill catalog: %w", err)
	}

	extraction, err := s.engine.IngestJob(req.Text, s.matchers.get(catalog))
	if err != nil {
		return nil, err
	}
	metrics.MatchedSkills.Observe(float64(len(extraction.Skills)))

	job := &types.JobIngest{
		UserID:      req.UserID,
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		SourceURL:   req.URL,
		Text:        req.Text,
		TextPreview: ingestion.TextPreview(req.Text),
		ContentHash: ingestion.ContentHash(req.Text),
		Extraction:  *extraction,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.InsertJobIngest(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to save job ingest: %w", err)
	}

	s.logger.Info("job ingested",
		zap.String("job_id", job.ID),
		zap.String("user_id", job.UserID),
		zap.Int("skills", len(extraction.Skills)),
		zap.Int("keywords", len(extraction.Keywords)))
	return job, nil
}

// GetJobIngest returns a stored job ingest owned by userID.
func (s *Service) GetJobIngest(ctx context.Context, userID, id string) (*types.JobIngest, error) {
	if err := validateID("job_id", id); err != nil {
		return nil, err
	}
	job, err := s.store.GetJobIngest(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get job ingest: %w", err)
	}
	if job == nil {
		return nil, &NotFoundError{Resource: "job ingest", ID: id}
	}
	return job, nil
}

// PreviewTailoredResume generates and stores a tailored resume for a user and job.
func (s *Service) PreviewTailoredResume(ctx context.Context, req types.PreviewRequest) (*PreviewResult, error) {
	start := time.Now()
	result, err := s.preview(ctx, req)
	metrics.Previews.WithLabelValues(outcome(err)).Inc()
	if err == nil {
		metrics.PreviewDuration.Observe(time.Since(start).Seconds())
	}
	return result, err
}

func (s *Service) preview(ctx context.Context, req types.PreviewRequest) (*PreviewResult, error) {
	req.ApplyDefaults()
	if strings.TrimSpace(req.UserID) == "" {
		return nil, &ValidationError{Field: "user_id", Message: "user_id is required"}
	}

	var extraction *types.JobExtraction
	if req.JobID != "" {
		job, err := s.GetJobIngest(ctx, req.UserID, req.JobID)
		if err != nil {
			return nil, err
		}
		extraction = &job.Extraction
	} else if len([]rune(req.JobText)) < types.MinJobTextLength {
		return nil, &ValidationError{
			Field:   "job_text",
			Message: fmt.Sprintf("provide job_id or job_text (>=%d chars)", types.MinJobTextLength),
		}
	}

	var (
		catalog   []types.CatalogSkill
		items     []types.PortfolioItem
		projects  []types.LegacyProject
		confirmed *types.ConfirmedSkillSet
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		catalog, err = s.catalog.ListSkillCatalog(gctx)
		if err != nil {
			return fmt.Errorf("failed to load skill catalog: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		items, err = s.store.ListPortfolioItems(gctx, req.UserID)
		if err != nil {
			return fmt.Errorf("failed to load portfolio items: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		projects, err = s.store.ListLegacyProjects(gctx, req.UserID)
		if err != nil {
			return fmt.Errorf("failed to load projects: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		confirmed, err = s.store.LatestConfirmedSkills(gctx, req.UserID)
		if err != nil {
			return fmt.Errorf("failed to load confirmed skills: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var matcher *skills.Matcher
	if extraction == nil {
		matcher = s.matchers.get(catalog)
	}

	result, err := s.engine.Preview(PreviewInput{
		UserID:            req.UserID,
		JobID:             req.JobID,
		Template:          req.Template,
		Extraction:        extraction,
		JobText:           req.JobText,
		Matcher:           matcher,
		SkillNames:        types.SkillNames(catalog),
		Confirmed:         confirmed.Set(),
		Items:             selection.CandidateItems(items, projects),
		MaxItems:          req.MaxItems,
		MaxBulletsPerItem: req.MaxBulletsPerItem,
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.InsertTailoredResume(ctx, result.Resume); err != nil {
		return nil, fmt.Errorf("failed to save tailored resume: %w", err)
	}

	s.logger.Info("tailored resume generated",
		zap.String("resume_id", result.Resume.ID),
		zap.String("user_id", req.UserID),
		zap.String("job_id", req.JobID),
		zap.Int("skills", len(result.Resume.SelectedSkillIDs)),
		zap.Int("items", len(result.Resume.SelectedItemIDs)))
	return result, nil
}

// GetTailoredResume returns a stored tailored resume.
func (s *Service) GetTailoredResume(ctx context.Context, id string) (*types.TailoredResume, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	resume, err := s.store.GetTailoredResume(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tailored resume: %w", err)
	}
	if resume == nil {
		return nil, &NotFoundError{Resource: "tailored resume", ID: id}
	}
	return resume, nil
}

// ListTailoredResumes returns a user's tailored resumes, newest first.
func (s *Service) ListTailoredResumes(ctx context.Context, userID string, limit int) ([]types.TailoredResume, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, &ValidationError{Field: "user_id", Message: "user_id is required"}
	}
	if limit <= 0 || limit > DefaultHistoryLimit {
		limit = DefaultHistoryLimit
	}
	resumes, err := s.store.ListTailoredResumes(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list tailored resumes: %w", err)
	}
	return resumes, nil
}

// IngestResponse builds the presentation view of a job ingest.
func IngestResponse(job *types.JobIngest) types.JobIngestResponse {
	keywords := job.Extraction.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	extracted := skills.Top(job.Extraction.Skills, MaxResponseSkills)
	if extracted == nil {
		extracted = []types.ExtractedSkill{}
	}
	return types.JobIngestResponse{
		ID:              job.ID,
		UserID:          job.UserID,
		Title:           job.Title,
		Company:         job.Company,
		Location:        job.Location,
		TextPreview:     job.TextPreview,
		ExtractedSkills: extracted,
		Keywords:        keywords,
		CreatedAt:       job.CreatedAt.Format(time.RFC3339),
	}
}

func validateID(field, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return &ValidationError{Field: field, Message: "invalid " + field}
	}
	return nil
}

func outcome(err error) string {
	var validationErr *ValidationError
	var notFoundErr *NotFoundError
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.As(err, &validationErr):
		return metrics.OutcomeInvalid
	case errors.As(err, &notFoundErr):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}
