package tailor

import (
	"context"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Store lookups return (nil, nil) when a record does not exist.

// CatalogStore reads the shared skill catalog
type CatalogStore interface {
	ListSkillCatalog(ctx context.Context) ([]types.CatalogSkill, error)
}

// JobStore persists job ingests
type JobStore interface {
	InsertJobIngest(ctx context.Context, job *types.JobIngest) error
	GetJobIngest(ctx context.Context, userID, id string) (*types.JobIngest, error)
}

// PortfolioStore reads a user's portfolio and confirmed skills
type PortfolioStore interface {
	ListPortfolioItems(ctx context.Context, userID string) ([]types.PortfolioItem, error)
	ListLegacyProjects(ctx context.Context, userID string) ([]types.LegacyProject, error)
	LatestConfirmedSkills(ctx context.Context, userID string) (*types.ConfirmedSkillSet, error)
}

// ResumeStore persists tailored resumes
type ResumeStore interface {
	InsertTailoredResume(ctx context.Context, resume *types.TailoredResume) error
	GetTailoredResume(ctx context.Context, id string) (*types.TailoredResume, error)
	ListTailoredResumes(ctx context.Context, userID string, limit int) ([]types.TailoredResume, error)
}

// Store is everything the Service needs
type Store interface {
	CatalogStore
	JobStore
	PortfolioStore
	ResumeStore
}
