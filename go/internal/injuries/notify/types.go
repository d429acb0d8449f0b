package notify

import (
	"context"
	"errors"
	"time"
)

// Channel is the Postgres NOTIFY channel carrying injury change events.
const Channel = "injury_changes"

// Op tags the kind of write that produced an event.
type Op string

const (
	OpInsert Op = "insert"
	OpUpdate Op = "update"
)

// ChangeEvent is the payload emitted for every write to injuries_current.
// It is a freshness hint for live consumers; the tables stay the source
// of truth.
type ChangeEvent struct {
	CheckDate time.Time `json:"check_date"`
	TeamID    int       `json:"team_id"`
	Player    string    `json:"player"`
	Status    string    `json:"status"`
	EstReturn string    `json:"est_return"`
	Op        Op        `json:"op"`
}

// Notifier is the injectable publish interface the reconciler emits
// through. The concrete transport is the surrounding application's
// choice; delivery is fire-and-forget.
type Notifier interface {
	Publish(ctx context.Context, event ChangeEvent) error
}

// Multi fans one event out to several notifiers. Errors from individual
// notifiers are joined, not short-circuited.
type Multi []Notifier

func (m Multi) Publish(ctx context.Context, event ChangeEvent) error {
	var errs []error
	for _, n := range m {
		if err := n.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
