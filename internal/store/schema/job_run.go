package schema

import (
	"time"

	"github.com/tokentrack/burn-tracker/internal/domain"
)

// JobRun represents the job_runs table - audit trail of burn recomputations.
// Observability only: the refresh pipeline never consults it for correctness.
type JobRun struct {
	// ID is a ULID assigned by the refresher when the job is enqueued
	ID string `gorm:"column:id;primaryKey;type:text"`
	// TokenKey is the "{chain}:{address}" identity of the recomputed token
	TokenKey string `gorm:"column:token_key;not null;type:text;index:idx_job_runs_token_key"`
	// Trigger names what started the run (sweep-full, sweep-active, cron, stale-read)
	Trigger string `gorm:"column:trigger;not null;type:text"`
	// State is the lifecycle state (pending, running, completed, failed)
	State domain.JobState `gorm:"column:state;not null;type:text"`
	// Error holds the failure message for failed runs
	Error *string `gorm:"column:error;type:text"`
	// Burn24H is the widest-window result, denormalized for quick inspection
	Burn24H *float64 `gorm:"column:burn_24h"`
	// Duration is how long the recomputation took, in milliseconds
	DurationMS int64 `gorm:"column:duration_ms"`
	// StartedAt is when the recomputation began
	StartedAt time.Time `gorm:"column:started_at;not null;type:timestamptz"`
	// FinishedAt is when the recomputation ended
	FinishedAt *time.Time `gorm:"column:finished_at;type:timestamptz"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the JobRun model
func (JobRun) TableName() string {
	return "job_runs"
}
