package roster

import (
	"time"
)

// UpsertPlayerRequest represents the data needed to create or refresh a
// roster entry, keyed on the league player ID.
type UpsertPlayerRequest struct {
	NBAPlayerID  int64      `json:"nba_player_id" validate:"required"`
	TeamID       *int       `json:"team_id,omitempty"`
	DisplayName  string     `json:"display_name" validate:"required"`
	JerseyNumber *string    `json:"jersey_number,omitempty"`
	Position     *string    `json:"position,omitempty"`
	HeightCm     *int       `json:"height_cm,omitempty"`
	WeightKg     *int       `json:"weight_kg,omitempty"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	Country      *string    `json:"country,omitempty"`
	Active       bool       `json:"active"`
}

// SyncResult represents the result of syncing rosters from the stats API
type SyncResult struct {
	TotalProcessed int     `json:"total_processed"`
	Created        int     `json:"created"`
	Updated        int     `json:"updated"`
	Errors         []error `json:"errors,omitempty"`
}
