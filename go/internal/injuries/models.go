package injuries

import (
	"time"

	"github.com/google/uuid"
	"github.com/ttflab/injurytrack/go/internal/models"
)

// DefaultSource is assumed when a report does not name its source.
const DefaultSource = "ESPN"

// Report is one injury observation as delivered by the snapshot producer.
type Report struct {
	TeamID    int    `json:"team_id" validate:"required"`
	Player    string `json:"player" validate:"required"`
	Status    string `json:"status" validate:"required"`
	EstReturn string `json:"est_return" validate:"required"`
	Source    string `json:"source,omitempty"`
}

// Snapshot is the full set of injury reports fetched in one ETL run.
// CheckDate is when the snapshot was fetched; zero means "now".
type Snapshot struct {
	CheckDate time.Time `json:"check_date"`
	Reports   []Report  `json:"reports"`
}

// WriteOp classifies what one reconciled report did to injuries_current.
type WriteOp int

const (
	// OpInsert is a new injury observation for a never-seen (team, player) pair.
	OpInsert WriteOp = iota
	// OpUpdate changed at least one of status/est_return/source.
	OpUpdate
	// OpUnchanged rewrote identical values; updated_at still advanced.
	OpUnchanged
)

func (op WriteOp) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpUpdate:
		return "update"
	case OpUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// RowError records one rejected report without failing the run.
type RowError struct {
	Index  int    `json:"index"`
	TeamID int    `json:"team_id"`
	Player string `json:"player"`
	Err    error  `json:"error"`
}

// RunResult is the per-run summary of a reconciliation.
type RunResult struct {
	RunID     uuid.UUID              `json:"run_id"`
	CheckDate time.Time              `json:"check_date"`
	Processed int                    `json:"processed"`
	Inserted  int                    `json:"inserted"`
	Updated   int                    `json:"updated"`
	Unchanged int                    `json:"unchanged"`
	Skipped   int                    `json:"skipped"`
	Stale     []models.CurrentInjury `json:"stale,omitempty"`
	Errors    []RowError             `json:"errors,omitempty"`
}

// TeamInjury is the read model served to the dashboard and the report:
// one current injury with the team tricode instead of the internal ID.
type TeamInjury struct {
	Team      string `json:"team"`
	Player    string `json:"player"`
	Status    string `json:"status"`
	EstReturn string `json:"est_return"`
}
