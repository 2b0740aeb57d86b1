package schema

import (
	"time"

	"gorm.io/datatypes"
)

// SweepRun represents the sweep_runs table - one row per scheduler sweep
type SweepRun struct {
	// ID is the ULID run ID from the SweepReport
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Kind is "full" or "active"
	Kind string `gorm:"column:kind;not null;type:text;index:idx_sweep_runs_kind"`
	// Processed is how many tokens the sweep attempted
	Processed int `gorm:"column:processed;not null"`
	// Succeeded is how many tokens refreshed cleanly
	Succeeded int `gorm:"column:succeeded;not null"`
	// Failed is how many tokens errored
	Failed int `gorm:"column:failed;not null"`
	// Failures holds the per-token failure list as JSON
	Failures datatypes.JSON `gorm:"column:failures;type:jsonb"`
	// StartedAt is when the sweep began
	StartedAt time.Time `gorm:"column:started_at;not null;type:timestamptz"`
	// DurationMS is the wall-clock sweep duration, in milliseconds
	DurationMS int64 `gorm:"column:duration_ms"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the SweepRun model
func (SweepRun) TableName() string {
	return "sweep_runs"
}
