package injuries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/ttflab/injurytrack/go/internal/models"
	"github.com/ttflab/injurytrack/go/internal/sqlutil"
)

// Repository implements injury data access operations
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new injuries repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// UpsertWithHistory writes one report into injuries_current and appends
// the observation to injuries_history, as a single transaction: either
// both rows land or neither does. The returned WriteOp classifies the
// write against the previously stored values.
func (r *Repository) UpsertWithHistory(ctx context.Context, report Report, checkDate time.Time) (WriteOp, error) {
	op := OpInsert

	err := sqlutil.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		var prevStatus, prevReturn, prevSource string
		err := tx.QueryRowContext(ctx, `
			SELECT status, est_return, source FROM injuries_current
			WHERE team_id = $1 AND player = $2
			FOR UPDATE`,
			report.TeamID, report.Player,
		).Scan(&prevStatus, &prevReturn, &prevSource)

		switch {
		case errors.Is(err, sql.ErrNoRows):
			op = OpInsert
		case err != nil:
			return fmt.Errorf("failed to read current injury: %w", err)
		case prevStatus == report.Status && prevReturn == report.EstReturn && prevSource == report.Source:
			op = OpUnchanged
		default:
			op = OpUpdate
		}

		// The PK on (team_id, player) serializes concurrent writers to the
		// same pair; unchanged values are still rewritten (last-write-wins
		// on updated_at).
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO injuries_current (team_id, player, status, est_return, source, updated_at)
			VALUES ($1, $2, $3, $4, $5, now())
			ON CONFLICT (team_id, player) DO UPDATE SET
				status     = EXCLUDED.status,
				est_return = EXCLUDED.est_return,
				source     = EXCLUDED.source,
				updated_at = now()`,
			report.TeamID, report.Player, report.Status, report.EstReturn, report.Source,
		); err != nil {
			return fmt.Errorf("failed to upsert current injury: %w", err)
		}

		// History is an append log of observations, not of changes: one row
		// per reconciled report, unchanged or not.
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO injuries_history (check_date, team_id, player, status, est_return, source)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			checkDate, report.TeamID, report.Player, report.Status, report.EstReturn, report.Source,
		); err != nil {
			return fmt.Errorf("failed to append injury history: %w", err)
		}
		return nil
	})
	if err != nil {
		return op, err
	}
	return op, nil
}

// RemoveWithHistory deletes the current row for (teamID, player) and
// appends a terminal "Recovered" observation, atomically. Returns false
// when no current row existed.
func (r *Repository) RemoveWithHistory(ctx context.Context, teamID int, player string, checkDate time.Time) (bool, error) {
	removed := false

	err := sqlutil.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		var estReturn, source string
		err := tx.QueryRowContext(ctx, `
			DELETE FROM injuries_current
			WHERE team_id = $1 AND player = $2
			RETURNING est_return, source`,
			teamID, player,
		).Scan(&estReturn, &source)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to remove current injury: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO injuries_history (check_date, team_id, player, status, est_return, source)
			VALUES ($1, $2, $3, 'Recovered', $4, $5)`,
			checkDate, teamID, player, estReturn, source,
		); err != nil {
			return fmt.Errorf("failed to append recovery history: %w", err)
		}
		removed = true
		return nil
	})
	return removed, err
}

// ListCurrentByTeam returns the current injuries for one team
func (r *Repository) ListCurrentByTeam(ctx context.Context, teamID int) ([]models.CurrentInjury, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT team_id, player, status, est_return, source, updated_at
		FROM injuries_current
		WHERE team_id = $1
		ORDER BY player`,
		teamID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list current injuries for team %d: %w", teamID, err)
	}
	defer rows.Close()

	var injuries []models.CurrentInjury
	for rows.Next() {
		var inj models.CurrentInjury
		if err := rows.Scan(&inj.TeamID, &inj.Player, &inj.Status, &inj.EstReturn, &inj.Source, &inj.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan current injury: %w", err)
		}
		injuries = append(injuries, inj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list current injuries for team %d: %w", teamID, err)
	}
	return injuries, nil
}

// CurrentForTeams returns current injuries for a set of teams joined to
// their tricodes, ordered for display.
func (r *Repository) CurrentForTeams(ctx context.Context, teamIDs []int) ([]TeamInjury, error) {
	ids := make([]int64, len(teamIDs))
	for i, id := range teamIDs {
		ids[i] = int64(id)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT t.tricode, ic.player, ic.status, ic.est_return
		FROM injuries_current ic
		JOIN teams t ON t.id = ic.team_id
		WHERE ic.team_id = ANY($1)
		ORDER BY t.tricode, ic.status, ic.player`,
		pq.Array(ids),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query current injuries: %w", err)
	}
	defer rows.Close()

	var injuries []TeamInjury
	for rows.Next() {
		var inj TeamInjury
		if err := rows.Scan(&inj.Team, &inj.Player, &inj.Status, &inj.EstReturn); err != nil {
			return nil, fmt.Errorf("failed to scan current injury: %w", err)
		}
		injuries = append(injuries, inj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to query current injuries: %w", err)
	}
	return injuries, nil
}

// History returns the most recent observations for one (team, player)
// pair, newest first.
func (r *Repository) History(ctx context.Context, teamID int, player string, limit int) ([]models.InjuryHistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, check_date, team_id, player, status, est_return, source
		FROM injuries_history
		WHERE team_id = $1 AND lower(player) = lower($2)
		ORDER BY check_date DESC, id DESC
		LIMIT $3`,
		teamID, player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query injury history: %w", err)
	}
	defer rows.Close()

	var entries []models.InjuryHistoryEntry
	for rows.Next() {
		var e models.InjuryHistoryEntry
		if err := rows.Scan(&e.ID, &e.CheckDate, &e.TeamID, &e.Player, &e.Status, &e.EstReturn, &e.Source); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to query injury history: %w", err)
	}
	return entries, nil
}
