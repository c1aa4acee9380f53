// Package tailortest provides an in-memory Store for tests.
package tailortest

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Store is an in-memory tailor.Store. Set Err to make every call fail.
type Store struct {
	mu sync.Mutex

	Catalog   []types.CatalogSkill
	Items     map[string][]types.PortfolioItem
	Projects  map[string][]types.LegacyProject
	Confirmed map[string]*types.ConfirmedSkillSet
	Jobs      map[string]*types.JobIngest
	Resumes   map[string]*types.TailoredResume

	CatalogCalls int
	Err          error
}

// NewStore creates an empty Store with the given catalog.
func NewStore(catalog []types.CatalogSkill) *Store {
	return &Store{
		Catalog:   catalog,
		Items:     make(map[string][]types.PortfolioItem),
		Projects:  make(map[string][]types.LegacyProject),
		Confirmed: make(map[string]*types.ConfirmedSkillSet),
		Jobs:      make(map[string]*types.JobIngest),
		Resumes:   make(map[string]*types.TailoredResume),
	}
}

func (s *Store) ListSkillCatalog(_ context.Context) ([]types.CatalogSkill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CatalogCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]types.CatalogSkill(nil), s.Catalog...), nil
}

func (s *Store) InsertJobIngest(_ context.Context, job *types.JobIngest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	job.ID = uuid.New().String()
	cp := *job
	s.Jobs[job.ID] = &cp
	return nil
}

func (s *Store) GetJobIngest(_ context.Context, userID, id string) (*types.JobIngest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	job, ok := s.Jobs[id]
	if !ok || job.UserID != userID {
		return nil, nil
	}
	cp := *job
	return &cp, nil
}

func (s *Store) ListPortfolioItems(_ context.Context, userID string) ([]types.PortfolioItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Items[userID], nil
}

func (s *Store) ListLegacyProjects(_ context.Context, userID string) ([]types.LegacyProject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Projects[userID], nil
}

func (s *Store) LatestConfirmedSkills(_ context.Context, userID string) (*types.ConfirmedSkillSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Confirmed[userID], nil
}

func (s *Store) InsertTailoredResume(_ context.Context, resume *types.TailoredResume) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	resume.ID = uuid.New().String()
	cp := *resume
	s.Resumes[resume.ID] = &cp
	return nil
}

func (s *Store) GetTailoredResume(_ context.Context, id string) (*types.TailoredResume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	r, ok := s.Resumes[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (s *Store) ListTailoredResumes(_ context.Context, userID string, limit int) ([]types.TailoredResume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]types.TailoredResume, 0)
	for _, r := range s.Resumes {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
