package models

import (
	"time"
)

// Team represents an NBA franchise in the system
type Team struct {
	ID         int       `json:"id"`
	Tricode    string    `json:"tricode"`
	NBATeamID  *int64    `json:"nba_team_id,omitempty"`
	Name       string    `json:"name"`
	City       string    `json:"city"`
	ESPNName   string    `json:"espn_name"`
	Conference *string   `json:"conference,omitempty"`
	Division   *string   `json:"division,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
