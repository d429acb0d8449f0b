package notify

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PGNotifier publishes change events on the injury_changes Postgres
// channel via pg_notify. Events are delivered on commit, in write order
// per connection, which matches the ordering contract of the store writes
// that produce them.
type PGNotifier struct {
	db *sql.DB
}

func NewPGNotifier(db *sql.DB) *PGNotifier {
	return &PGNotifier{db: db}
}

func (p *PGNotifier) Publish(ctx context.Context, event ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal change event: %w", err)
	}
	if _, err := p.db.ExecContext(ctx, `SELECT pg_notify($1, $2)`, Channel, string(payload)); err != nil {
		return fmt.Errorf("pg_notify %s: %w", Channel, err)
	}
	return nil
}
