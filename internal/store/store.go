package store

import (
	"context"

	"github.com/tokentrack/burn-tracker/internal/domain"
	"github.com/tokentrack/burn-tracker/internal/store/schema"
)

// Store defines the interface for job bookkeeping database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateJobRun records a newly started recomputation
	CreateJobRun(ctx context.Context, run *schema.JobRun) error
	// FinishJobRun marks a run completed or failed with its result
	FinishJobRun(ctx context.Context, run *schema.JobRun) error
	// GetRecentJobRuns retrieves the most recent runs for a token
	GetRecentJobRuns(ctx context.Context, tokenKey string, limit int) ([]schema.JobRun, error)
	// CreateSweepRun persists a finished sweep report
	CreateSweepRun(ctx context.Context, report *domain.SweepReport) error
}
