package schedule

import (
	"context"
	"fmt"
	"time"
)

// ScheduleRepository defines what the app layer needs from the repository
type ScheduleRepository interface {
	UpsertGame(ctx context.Context, req UpsertGameRequest) error
	GamesInWindow(ctx context.Context, start, end time.Time) ([]GameSummary, error)
	TeamsPlayingInWindow(ctx context.Context, start, end time.Time) ([]int, error)
}

// App handles schedule business logic
type App struct {
	repo ScheduleRepository
}

// NewApp creates a new schedule App
func NewApp(repo ScheduleRepository) *App {
	return &App{repo: repo}
}

// UpsertGame validates and stores one game keyed on its league game_id
func (a *App) UpsertGame(ctx context.Context, req UpsertGameRequest) error {
	if err := a.validateUpsertGameRequest(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if err := a.repo.UpsertGame(ctx, req); err != nil {
		return fmt.Errorf("failed to upsert game: %w", err)
	}
	return nil
}

// GamesInWindow returns the games tipping off inside [start, end)
func (a *App) GamesInWindow(ctx context.Context, start, end time.Time) ([]GameSummary, error) {
	games, err := a.repo.GamesInWindow(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get games in window: %w", err)
	}
	return games, nil
}

// TeamsPlayingInWindow returns the distinct teams with a game inside [start, end)
func (a *App) TeamsPlayingInWindow(ctx context.Context, start, end time.Time) ([]int, error) {
	teamIDs, err := a.repo.TeamsPlayingInWindow(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams playing in window: %w", err)
	}
	return teamIDs, nil
}

func (a *App) validateUpsertGameRequest(req UpsertGameRequest) error {
	if req.GameID == "" {
		return fmt.Errorf("game_id is required")
	}
	if req.TipoffUTC.IsZero() {
		return fmt.Errorf("tipoff_utc is required")
	}
	if req.HomeTeamID == 0 || req.AwayTeamID == 0 {
		return fmt.Errorf("home and away team references are required")
	}
	// Not enforced by the schema; business rule.
	if req.HomeTeamID == req.AwayTeamID {
		return fmt.Errorf("home_team_id and away_team_id must differ")
	}
	return nil
}
