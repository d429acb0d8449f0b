package teams

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ttflab/injurytrack/go/internal/models"
	"github.com/ttflab/injurytrack/go/internal/sqlutil"
)

// Repository implements team data access operations
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new teams repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const teamColumns = `id, tricode, nba_team_id, name, city, espn_name, conference, division, created_at, updated_at`

// UpsertByTricode inserts a team or refreshes it when the tricode already
// exists. Returns the stored team and whether the row was created.
func (r *Repository) UpsertByTricode(ctx context.Context, req UpsertTeamRequest) (*models.Team, bool, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO teams (tricode, nba_team_id, name, city, espn_name, conference, division, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (tricode) DO UPDATE SET
			nba_team_id = EXCLUDED.nba_team_id,
			name        = EXCLUDED.name,
			city        = EXCLUDED.city,
			espn_name   = EXCLUDED.espn_name,
			conference  = COALESCE(EXCLUDED.conference, teams.conference),
			division    = COALESCE(EXCLUDED.division, teams.division),
			updated_at  = now()
		RETURNING `+teamColumns+`, (xmax = 0) AS inserted`,
		req.Tricode, req.NBATeamID, req.Name, req.City, req.ESPNName,
		sqlutil.ToSqlString(req.Conference), sqlutil.ToSqlString(req.Division),
	)

	team, inserted, err := scanTeamWithInserted(row)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert team %s: %w", req.Tricode, err)
	}
	return team, inserted, nil
}

// GetTeam retrieves a team by internal ID
func (r *Repository) GetTeam(ctx context.Context, id int) (*models.Team, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+teamColumns+` FROM teams WHERE id = $1`, id)
	team, err := scanTeam(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get team %d: %w", id, err)
	}
	return team, nil
}

// GetTeamByTricode retrieves a team by its three-letter code
func (r *Repository) GetTeamByTricode(ctx context.Context, tricode string) (*models.Team, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+teamColumns+` FROM teams WHERE tricode = $1`, tricode)
	team, err := scanTeam(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get team by tricode %s: %w", tricode, err)
	}
	return team, nil
}

// ListAllTeams retrieves all teams
func (r *Repository) ListAllTeams(ctx context.Context) ([]models.Team, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+teamColumns+` FROM teams ORDER BY tricode`)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, *team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTeam(row rowScanner) (*models.Team, error) {
	var (
		team      models.Team
		nbaTeamID sql.NullInt64
		city      sql.NullString
		espnName  sql.NullString
		conf      sql.NullString
		div       sql.NullString
	)
	if err := row.Scan(
		&team.ID, &team.Tricode, &nbaTeamID, &team.Name, &city, &espnName,
		&conf, &div, &team.CreatedAt, &team.UpdatedAt,
	); err != nil {
		return nil, err
	}
	team.NBATeamID = sqlutil.FromSqlInt64(nbaTeamID)
	team.City = sqlutil.FromSqlString(city, "")
	team.ESPNName = sqlutil.FromSqlString(espnName, "")
	team.Conference = sqlutil.FromSqlStringPtr(conf)
	team.Division = sqlutil.FromSqlStringPtr(div)
	return &team, nil
}

func scanTeamWithInserted(row rowScanner) (*models.Team, bool, error) {
	var (
		team      models.Team
		nbaTeamID sql.NullInt64
		city      sql.NullString
		espnName  sql.NullString
		conf      sql.NullString
		div       sql.NullString
		inserted  bool
	)
	if err := row.Scan(
		&team.ID, &team.Tricode, &nbaTeamID, &team.Name, &city, &espnName,
		&conf, &div, &team.CreatedAt, &team.UpdatedAt, &inserted,
	); err != nil {
		return nil, false, err
	}
	team.NBATeamID = sqlutil.FromSqlInt64(nbaTeamID)
	team.City = sqlutil.FromSqlString(city, "")
	team.ESPNName = sqlutil.FromSqlString(espnName, "")
	team.Conference = sqlutil.FromSqlStringPtr(conf)
	team.Division = sqlutil.FromSqlStringPtr(div)
	return &team, inserted, nil
}
