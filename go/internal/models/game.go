package models

import (
	"time"
)

// Game represents one scheduled or completed contest. GameID is the
// league's stable identifier and the primary key.
type Game struct {
	GameID         string    `json:"game_id"`
	Season         int       `json:"season"`
	TipoffUTC      time.Time `json:"tipoff_utc"`
	HomeTeamID     int       `json:"home_team_id"`
	AwayTeamID     int       `json:"away_team_id"`
	ArenaName      *string   `json:"arena_name,omitempty"`
	ArenaCity      *string   `json:"arena_city,omitempty"`
	ArenaState     *string   `json:"arena_state,omitempty"`
	GameStatus     *int      `json:"game_status,omitempty"`
	GameStatusText *string   `json:"game_status_text,omitempty"`
	Postponed      bool      `json:"postponed"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
