package schedule

import (
	"time"
)

// UpsertGameRequest represents the data needed to create or refresh a game
type UpsertGameRequest struct {
	GameID         string    `json:"game_id" validate:"required"`
	Season         int       `json:"season" validate:"required"`
	TipoffUTC      time.Time `json:"tipoff_utc" validate:"required"`
	HomeTeamID     int       `json:"home_team_id" validate:"required"`
	AwayTeamID     int       `json:"away_team_id" validate:"required"`
	ArenaName      *string   `json:"arena_name,omitempty"`
	ArenaCity      *string   `json:"arena_city,omitempty"`
	ArenaState     *string   `json:"arena_state,omitempty"`
	GameStatus     *int      `json:"game_status,omitempty"`
	GameStatusText *string   `json:"game_status_text,omitempty"`
	Postponed      bool      `json:"postponed"`
}

// GameSummary is the window view served to the dashboard and the report:
// one game with team tricodes instead of internal IDs.
type GameSummary struct {
	GameID    string    `json:"game_id"`
	TipoffUTC time.Time `json:"tipoff_utc"`
	Home      string    `json:"home"`
	Away      string    `json:"away"`
	ArenaName string    `json:"arena_name"`
}
