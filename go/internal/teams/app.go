package teams

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/ttflab/injurytrack/go/internal/models"
)

// TeamsRepository defines what the app layer needs from the repository
type TeamsRepository interface {
	UpsertByTricode(ctx context.Context, req UpsertTeamRequest) (*models.Team, bool, error)
	GetTeam(ctx context.Context, id int) (*models.Team, error)
	GetTeamByTricode(ctx context.Context, tricode string) (*models.Team, error)
	ListAllTeams(ctx context.Context) ([]models.Team, error)
}

// App handles team registry business logic
type App struct {
	repo TeamsRepository
}

// NewApp creates a new teams App
func NewApp(repo TeamsRepository) *App {
	return &App{repo: repo}
}

// UpsertTeam creates or refreshes a team keyed on its tricode
func (a *App) UpsertTeam(ctx context.Context, req UpsertTeamRequest) (*models.Team, bool, error) {
	if err := a.validateUpsertTeamRequest(req); err != nil {
		return nil, false, fmt.Errorf("validation failed: %w", err)
	}

	team, created, err := a.repo.UpsertByTricode(ctx, req)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert team: %w", err)
	}
	return team, created, nil
}

// GetTeam retrieves a team by internal ID
func (a *App) GetTeam(ctx context.Context, id int) (*models.Team, error) {
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// GetTeamByTricode retrieves a team by its three-letter code
func (a *App) GetTeamByTricode(ctx context.Context, tricode string) (*models.Team, error) {
	team, err := a.repo.GetTeamByTricode(ctx, tricode)
	if err != nil {
		return nil, fmt.Errorf("failed to get team by tricode: %w", err)
	}
	return team, nil
}

// ListAllTeams retrieves all teams
func (a *App) ListAllTeams(ctx context.Context) ([]models.Team, error) {
	teams, err := a.repo.ListAllTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list all teams: %w", err)
	}
	return teams, nil
}

// BuildNameIndex loads every team once and builds a lookup of stored
// names, ESPN labels and tricodes to team IDs, so snapshot mapping does
// not hit the database per player.
func (a *App) BuildNameIndex(ctx context.Context) (*NameIndex, error) {
	stored, err := a.repo.ListAllTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build team name index: %w", err)
	}

	names := make([]teamNames, len(stored))
	for i, t := range stored {
		names[i] = teamNames{ID: t.ID, Name: t.Name, ESPNName: t.ESPNName, Tricode: t.Tricode}
	}

	log.Debug().Int("teams", len(names)).Msg("built team name index")
	return newNameIndex(names), nil
}

func (a *App) validateUpsertTeamRequest(req UpsertTeamRequest) error {
	if req.Tricode == "" {
		return fmt.Errorf("tricode is required")
	}
	if req.NBATeamID == 0 {
		return fmt.Errorf("nba_team_id is required")
	}
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}
