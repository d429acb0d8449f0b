package teams

// UpsertTeamRequest represents the data needed to create or refresh a team
type UpsertTeamRequest struct {
	Tricode    string  `json:"tricode" validate:"required"`
	NBATeamID  int64   `json:"nba_team_id" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	City       string  `json:"city"`
	ESPNName   string  `json:"espn_name"`
	Conference *string `json:"conference,omitempty"`
	Division   *string `json:"division,omitempty"`
}

// SyncResult represents the result of syncing teams from the schedule feed
type SyncResult struct {
	TotalProcessed int     `json:"total_processed"`
	Created        int     `json:"created"`
	Updated        int     `json:"updated"`
	Errors         []error `json:"errors,omitempty"`
}
