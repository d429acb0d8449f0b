package roster

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ttflab/injurytrack/go/internal/models"
	"github.com/ttflab/injurytrack/go/internal/sqlutil"
)

// Repository implements player data access operations
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new roster repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const playerColumns = `id, nba_player_id, team_id, first_name, last_name, display_name,
	jersey_number, position, height_cm, weight_kg, birth_date, country, active, updated_at`

// UpsertByNBAPlayerID inserts a player or refreshes the roster entry when
// the league player ID already exists. nba_player_id itself is never
// rewritten. Returns whether the row was created.
func (r *Repository) UpsertByNBAPlayerID(ctx context.Context, req UpsertPlayerRequest) (*models.Player, bool, error) {
	first, last := SplitDisplayName(req.DisplayName)

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO players (
			nba_player_id, team_id, first_name, last_name, display_name,
			jersey_number, position, height_cm, weight_kg, birth_date, country, active, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now())
		ON CONFLICT (nba_player_id) DO UPDATE SET
			team_id       = EXCLUDED.team_id,
			first_name    = EXCLUDED.first_name,
			last_name     = EXCLUDED.last_name,
			display_name  = EXCLUDED.display_name,
			jersey_number = EXCLUDED.jersey_number,
			position      = EXCLUDED.position,
			height_cm     = EXCLUDED.height_cm,
			weight_kg     = EXCLUDED.weight_kg,
			birth_date    = EXCLUDED.birth_date,
			country       = EXCLUDED.country,
			active        = EXCLUDED.active,
			updated_at    = now()
		RETURNING `+playerColumns+`, (xmax = 0) AS inserted`,
		req.NBAPlayerID, sqlutil.ToSqlInt32(req.TeamID), first, last, req.DisplayName,
		sqlutil.ToSqlString(req.JerseyNumber), sqlutil.ToSqlString(req.Position),
		sqlutil.ToSqlInt32(req.HeightCm), sqlutil.ToSqlInt32(req.WeightKg),
		sqlutil.ToSqlTime(req.BirthDate), sqlutil.ToSqlString(req.Country), req.Active,
	)

	player, inserted, err := scanPlayer(row)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert player %d: %w", req.NBAPlayerID, err)
	}
	return player, inserted, nil
}

// ListByTeam retrieves the active roster for a team
func (r *Repository) ListByTeam(ctx context.Context, teamID int) ([]models.Player, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+playerColumns+`, TRUE FROM players WHERE team_id = $1 AND active ORDER BY display_name`,
		teamID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list players for team %d: %w", teamID, err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		player, _, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, *player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list players for team %d: %w", teamID, err)
	}
	return players, nil
}

// DetachFromTeam marks a player as a free agent (team reference cleared)
func (r *Repository) DetachFromTeam(ctx context.Context, nbaPlayerID int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE players SET team_id = NULL, updated_at = now() WHERE nba_player_id = $1`,
		nbaPlayerID,
	)
	if err != nil {
		return fmt.Errorf("failed to detach player %d: %w", nbaPlayerID, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (*models.Player, bool, error) {
	var (
		p         models.Player
		teamID    sql.NullInt32
		jersey    sql.NullString
		position  sql.NullString
		heightCm  sql.NullInt32
		weightKg  sql.NullInt32
		birthDate sql.NullTime
		country   sql.NullString
		inserted  bool
	)
	if err := row.Scan(
		&p.ID, &p.NBAPlayerID, &teamID, &p.FirstName, &p.LastName, &p.DisplayName,
		&jersey, &position, &heightCm, &weightKg, &birthDate, &country, &p.Active,
		&p.UpdatedAt, &inserted,
	); err != nil {
		return nil, false, err
	}
	p.TeamID = sqlutil.FromSqlInt32(teamID)
	p.JerseyNumber = sqlutil.FromSqlStringPtr(jersey)
	p.Position = sqlutil.FromSqlStringPtr(position)
	p.HeightCm = sqlutil.FromSqlInt32(heightCm)
	p.WeightKg = sqlutil.FromSqlInt32(weightKg)
	p.BirthDate = sqlutil.FromSqlTime(birthDate)
	p.Country = sqlutil.FromSqlStringPtr(country)
	return &p, inserted, nil
}
