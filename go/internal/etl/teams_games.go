package etl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/ttflab/injurytrack/go/clients/nba_client"
	"github.com/ttflab/injurytrack/go/internal/schedule"
	"github.com/ttflab/injurytrack/go/internal/teams"
)

// TeamsGamesResult summarises one schedule feed import.
type TeamsGamesResult struct {
	TeamsUpserted int     `json:"teams_upserted"`
	GamesUpserted int     `json:"games_upserted"`
	GamesSkipped  int     `json:"games_skipped"`
	Errors        []error `json:"errors,omitempty"`
}

// SyncTeamsAndGames downloads the league schedule feed and refreshes the
// teams and games tables. Teams are derived from the home/away blocks of
// every game, so new franchises appear without a separate feed.
func (j *Jobs) SyncTeamsAndGames(ctx context.Context) (*TeamsGamesResult, error) {
	gameDates, err := j.scheduleFeed.GetLeagueSchedule(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch league schedule: %w", err)
	}

	result := &TeamsGamesResult{}

	tricodeToID, err := j.upsertTeamsFromSchedule(ctx, gameDates, result)
	if err != nil {
		return result, err
	}

	for _, day := range gameDates {
		for _, game := range day.Games {
			if err := j.upsertGame(ctx, game, tricodeToID); err != nil {
				result.GamesSkipped++
				if !isIncompleteGame(err) {
					result.Errors = append(result.Errors, err)
					log.Warn().Err(err).Str("game_id", game.GameID).Msg("game upsert failed")
				}
				continue
			}
			result.GamesUpserted++
		}
	}

	log.Info().
		Int("teams", result.TeamsUpserted).
		Int("games", result.GamesUpserted).
		Int("skipped", result.GamesSkipped).
		Msg("teams and games sync complete")

	return result, nil
}

func (j *Jobs) upsertTeamsFromSchedule(ctx context.Context, gameDates []nba_client.GameDate, result *TeamsGamesResult) (map[string]int, error) {
	// Deduplicate team blocks across the whole schedule first.
	byTricode := make(map[string]teams.UpsertTeamRequest)
	for _, day := range gameDates {
		for _, game := range day.Games {
			for _, side := range []nba_client.ScheduleTeam{game.HomeTeam, game.AwayTeam} {
				tricode := strings.TrimSpace(side.TeamTricode)
				name := strings.TrimSpace(side.TeamName)
				city := strings.TrimSpace(side.TeamCity)
				if tricode == "" || name == "" || side.TeamID == 0 {
					continue
				}
				espnName := name
				if city != "" {
					espnName = city + " " + name
				}
				byTricode[tricode] = teams.UpsertTeamRequest{
					Tricode:   tricode,
					NBATeamID: side.TeamID,
					Name:      name,
					City:      city,
					ESPNName:  espnName,
				}
			}
		}
	}

	tricodeToID := make(map[string]int, len(byTricode))
	for tricode, req := range byTricode {
		team, _, err := j.teams.UpsertTeam(ctx, req)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("team %s: %w", tricode, err))
			log.Warn().Err(err).Str("tricode", tricode).Msg("team upsert failed")
			continue
		}
		tricodeToID[tricode] = team.ID
		result.TeamsUpserted++
	}
	if len(tricodeToID) == 0 {
		return nil, fmt.Errorf("no teams found in schedule feed")
	}
	return tricodeToID, nil
}

// errIncompleteGame marks schedule rows the feed publishes before they
// are playable (no tipoff, placeholder teams). Skipped quietly.
var errIncompleteGame = errors.New("incomplete game block")

func isIncompleteGame(err error) bool {
	return errors.Is(err, errIncompleteGame)
}

func (j *Jobs) upsertGame(ctx context.Context, game nba_client.ScheduleGame, tricodeToID map[string]int) error {
	if game.GameDateTimeUTC == "" {
		return fmt.Errorf("%w: no tipoff for game %s", errIncompleteGame, game.GameID)
	}
	homeID, ok := tricodeToID[strings.TrimSpace(game.HomeTeam.TeamTricode)]
	if !ok {
		return fmt.Errorf("%w: unknown home team in game %s", errIncompleteGame, game.GameID)
	}
	awayID, ok := tricodeToID[strings.TrimSpace(game.AwayTeam.TeamTricode)]
	if !ok {
		return fmt.Errorf("%w: unknown away team in game %s", errIncompleteGame, game.GameID)
	}

	tipoff, err := parseTipoff(game.GameDateTimeUTC)
	if err != nil {
		return fmt.Errorf("%w: bad tipoff %q for game %s", errIncompleteGame, game.GameDateTimeUTC, game.GameID)
	}

	req := schedule.UpsertGameRequest{
		GameID:     game.GameID,
		Season:     schedule.InferSeason(game.GameCode, tipoff),
		TipoffUTC:  tipoff,
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		Postponed:  game.PostponedStatus == "Y",
	}
	if game.ArenaName != "" {
		req.ArenaName = &game.ArenaName
	}
	if game.ArenaCity != "" {
		req.ArenaCity = &game.ArenaCity
	}
	if game.ArenaState != "" {
		req.ArenaState = &game.ArenaState
	}
	if game.GameStatus != 0 {
		req.GameStatus = &game.GameStatus
	}
	if game.GameStatusText != "" {
		req.GameStatusText = &game.GameStatusText
	}

	return j.schedule.UpsertGame(ctx, req)
}

func parseTipoff(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable tipoff %q", raw)
}
