package models

import (
	"time"
)

// CurrentInjury is the live status of one player on one team. The key is
// (team_id, player-name-as-written-by-the-source): the injury feed does
// not expose stable player identifiers, so there is deliberately no
// foreign key to Player.
type CurrentInjury struct {
	TeamID    int       `json:"team_id"`
	Player    string    `json:"player"`
	Status    string    `json:"status"`
	EstReturn string    `json:"est_return"`
	Source    string    `json:"source"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InjuryHistoryEntry is an immutable record of one observed injury state.
// CheckDate is when the observation was made, not when the row was written.
type InjuryHistoryEntry struct {
	ID        int64     `json:"id"`
	CheckDate time.Time `json:"check_date"`
	TeamID    int       `json:"team_id"`
	Player    string    `json:"player"`
	Status    string    `json:"status"`
	EstReturn string    `json:"est_return"`
	Source    string    `json:"source"`
}
