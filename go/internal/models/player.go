package models

import (
	"time"
)

// Player represents a roster entry. NBAPlayerID is the league identifier
// and is immutable once assigned. TeamID is nil for free agents or when
// the team was deleted.
type Player struct {
	ID           int        `json:"id"`
	NBAPlayerID  int64      `json:"nba_player_id"`
	TeamID       *int       `json:"team_id,omitempty"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	DisplayName  string     `json:"display_name"`
	JerseyNumber *string    `json:"jersey_number,omitempty"`
	Position     *string    `json:"position,omitempty"`
	HeightCm     *int       `json:"height_cm,omitempty"`
	WeightKg     *int       `json:"weight_kg,omitempty"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	Country      *string    `json:"country,omitempty"`
	Active       bool       `json:"active"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
