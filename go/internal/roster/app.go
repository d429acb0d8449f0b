package roster

import (
	"context"
	"fmt"

	"github.com/ttflab/injurytrack/go/internal/models"
)

// RosterRepository defines what the app layer needs from the repository
type RosterRepository interface {
	UpsertByNBAPlayerID(ctx context.Context, req UpsertPlayerRequest) (*models.Player, bool, error)
	ListByTeam(ctx context.Context, teamID int) ([]models.Player, error)
	DetachFromTeam(ctx context.Context, nbaPlayerID int64) error
}

// App handles roster business logic
type App struct {
	repo RosterRepository
}

// NewApp creates a new roster App
func NewApp(repo RosterRepository) *App {
	return &App{repo: repo}
}

// UpsertPlayer validates and stores one roster entry keyed on the league
// player ID
func (a *App) UpsertPlayer(ctx context.Context, req UpsertPlayerRequest) (*models.Player, bool, error) {
	if req.NBAPlayerID == 0 {
		return nil, false, fmt.Errorf("validation failed: nba_player_id is required")
	}
	if req.DisplayName == "" {
		return nil, false, fmt.Errorf("validation failed: display_name is required")
	}

	player, created, err := a.repo.UpsertByNBAPlayerID(ctx, req)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert player: %w", err)
	}
	return player, created, nil
}

// ListByTeam retrieves the active roster for a team
func (a *App) ListByTeam(ctx context.Context, teamID int) ([]models.Player, error) {
	players, err := a.repo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players by team: %w", err)
	}
	return players, nil
}

// DetachFromTeam clears a player's team reference (free agency)
func (a *App) DetachFromTeam(ctx context.Context, nbaPlayerID int64) error {
	if err := a.repo.DetachFromTeam(ctx, nbaPlayerID); err != nil {
		return fmt.Errorf("failed to detach player: %w", err)
	}
	return nil
}
