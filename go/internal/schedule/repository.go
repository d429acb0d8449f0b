package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ttflab/injurytrack/go/internal/sqlutil"
)

// Repository implements game data access operations
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new schedule repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// UpsertGame inserts a game or refreshes it when the game_id already
// exists. Re-syncing the same feed is idempotent.
func (r *Repository) UpsertGame(ctx context.Context, req UpsertGameRequest) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO games (
			game_id, season, tipoff_utc, home_team_id, away_team_id,
			arena_name, arena_city, arena_state, game_status, game_status_text, postponed, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())
		ON CONFLICT (game_id) DO UPDATE SET
			season           = EXCLUDED.season,
			tipoff_utc       = EXCLUDED.tipoff_utc,
			home_team_id     = EXCLUDED.home_team_id,
			away_team_id     = EXCLUDED.away_team_id,
			arena_name       = EXCLUDED.arena_name,
			arena_city       = EXCLUDED.arena_city,
			arena_state      = EXCLUDED.arena_state,
			game_status      = EXCLUDED.game_status,
			game_status_text = EXCLUDED.game_status_text,
			postponed        = EXCLUDED.postponed,
			updated_at       = now()`,
		req.GameID, req.Season, req.TipoffUTC.UTC(), req.HomeTeamID, req.AwayTeamID,
		sqlutil.ToSqlString(req.ArenaName), sqlutil.ToSqlString(req.ArenaCity),
		sqlutil.ToSqlString(req.ArenaState), sqlutil.ToSqlInt32(req.GameStatus),
		sqlutil.ToSqlString(req.GameStatusText), req.Postponed,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert game %s: %w", req.GameID, err)
	}
	return nil
}

// GamesInWindow returns games tipping off inside [start, end), joined to
// team tricodes, ordered by tipoff.
func (r *Repository) GamesInWindow(ctx context.Context, start, end time.Time) ([]GameSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT g.game_id, g.tipoff_utc, th.tricode AS home, ta.tricode AS away,
		       COALESCE(g.arena_name, '') AS arena_name
		FROM games g
		JOIN teams th ON th.id = g.home_team_id
		JOIN teams ta ON ta.id = g.away_team_id
		WHERE g.tipoff_utc >= $1 AND g.tipoff_utc < $2
		ORDER BY g.tipoff_utc`,
		start.UTC(), end.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query games in window: %w", err)
	}
	defer rows.Close()

	var games []GameSummary
	for rows.Next() {
		var g GameSummary
		if err := rows.Scan(&g.GameID, &g.TipoffUTC, &g.Home, &g.Away, &g.ArenaName); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to query games in window: %w", err)
	}
	return games, nil
}

// TeamsPlayingInWindow returns the distinct team IDs with a game tipping
// off inside [start, end).
func (r *Repository) TeamsPlayingInWindow(ctx context.Context, start, end time.Time) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT home_team_id AS team_id FROM games
		WHERE tipoff_utc >= $1 AND tipoff_utc < $2
		UNION
		SELECT away_team_id FROM games
		WHERE tipoff_utc >= $1 AND tipoff_utc < $2`,
		start.UTC(), end.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams playing in window: %w", err)
	}
	defer rows.Close()

	var teamIDs []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan team id: %w", err)
		}
		teamIDs = append(teamIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to query teams playing in window: %w", err)
	}
	return teamIDs, nil
}
