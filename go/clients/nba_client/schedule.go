package nba_client

import (
	"context"
	"encoding/json"
	"fmt"
)

// Schedule feed response structures (scheduleLeagueV2.json)
type ScheduleTeam struct {
	TeamID      int64  `json:"teamId"`
	TeamTricode string `json:"teamTricode"`
	TeamCity    string `json:"teamCity"`
	TeamName    string `json:"teamName"`
}

type ScheduleGame struct {
	GameID          string       `json:"gameId"`
	GameCode        string       `json:"gameCode"`
	GameDateTimeUTC string       `json:"gameDateTimeUTC"`
	GameStatus      int          `json:"gameStatus"`
	GameStatusText  string       `json:"gameStatusText"`
	PostponedStatus string       `json:"postponedStatus"`
	ArenaName       string       `json:"arenaName"`
	ArenaCity       string       `json:"arenaCity"`
	ArenaState      string       `json:"arenaState"`
	HomeTeam        ScheduleTeam `json:"homeTeam"`
	AwayTeam        ScheduleTeam `json:"awayTeam"`
}

type GameDate struct {
	GameDate string         `json:"gameDate"`
	Games    []ScheduleGame `json:"games"`
}

type scheduleResponse struct {
	LeagueSchedule struct {
		SeasonYear string     `json:"seasonYear"`
		GameDates  []GameDate `json:"gameDates"`
	} `json:"leagueSchedule"`
	// Some feed variants hoist gameDates to the top level.
	GameDates []GameDate `json:"gameDates"`
}

// GetLeagueSchedule downloads the full-season schedule feed and returns
// its per-date game lists, tolerating both known JSON variants.
func (c *NBAClient) GetLeagueSchedule(ctx context.Context) ([]GameDate, error) {
	body, err := c.cdn.Get(ctx, schedulePath)
	if err != nil {
		return nil, fmt.Errorf("failed to get league schedule: %w", err)
	}

	var response scheduleResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schedule response: %w", err)
	}

	gameDates := response.LeagueSchedule.GameDates
	if len(gameDates) == 0 {
		gameDates = response.GameDates
	}
	if len(gameDates) == 0 {
		return nil, fmt.Errorf("no gameDates found in schedule feed")
	}

	return gameDates, nil
}
