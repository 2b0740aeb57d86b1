package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/tokentrack/burn-tracker/internal/domain"
	"github.com/tokentrack/burn-tracker/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// AutoMigrate creates or updates the bookkeeping tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&schema.JobRun{}, &schema.SweepRun{})
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero settings fall back to conservative defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings
// into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// CreateJobRun records a newly started recomputation
func (s *pgStore) CreateJobRun(ctx context.Context, run *schema.JobRun) error {
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to create job run: %w", err)
	}
	return nil
}

// FinishJobRun marks a run completed or failed with its result
func (s *pgStore) FinishJobRun(ctx context.Context, run *schema.JobRun) error {
	if err := s.db.WithContext(ctx).Save(run).Error; err != nil {
		return fmt.Errorf("failed to finish job run: %w", err)
	}
	return nil
}

// GetRecentJobRuns retrieves the most recent runs for a token
func (s *pgStore) GetRecentJobRuns(ctx context.Context, tokenKey string, limit int) ([]schema.JobRun, error) {
	var runs []schema.JobRun
	err := s.db.WithContext(ctx).
		Where("token_key = ?", tokenKey).
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get job runs: %w", err)
	}
	return runs, nil
}

// CreateSweepRun persists a finished sweep report
func (s *pgStore) CreateSweepRun(ctx context.Context, report *domain.SweepReport) error {
	failures, err := json.Marshal(report.Failures)
	if err != nil {
		return fmt.Errorf("failed to marshal sweep failures: %w", err)
	}

	run := schema.SweepRun{
		ID:         report.RunID,
		Kind:       report.Kind,
		Processed:  report.Processed,
		Succeeded:  report.Succeeded,
		Failed:     report.Failed,
		Failures:   failures,
		StartedAt:  report.StartedAt,
		DurationMS: report.Duration.Milliseconds(),
	}

	if err := s.db.WithContext(ctx).Create(&run).Error; err != nil {
		return fmt.Errorf("failed to create sweep run: %w", err)
	}
	return nil
}
