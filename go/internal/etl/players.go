package etl

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/ttflab/injurytrack/go/clients/nba_client"
	"github.com/ttflab/injurytrack/go/internal/roster"
)

// RostersResult summarises one roster import across all teams.
type RostersResult struct {
	TeamsProcessed int     `json:"teams_processed"`
	TeamsSkipped   int     `json:"teams_skipped"`
	PlayersCreated int     `json:"players_created"`
	PlayersUpdated int     `json:"players_updated"`
	Errors         []error `json:"errors,omitempty"`
}

// SyncRosters refreshes every team's roster from the stats API. Teams
// without a league ID are skipped; a failed team is recorded and the
// import moves on to the next one.
func (j *Jobs) SyncRosters(ctx context.Context) (*RostersResult, error) {
	stored, err := j.teams.ListAllTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for roster sync: %w", err)
	}

	result := &RostersResult{}

	for _, team := range stored {
		if team.NBATeamID == nil {
			result.TeamsSkipped++
			log.Warn().Str("tricode", team.Tricode).Msg("skip roster sync, no league team ID")
			continue
		}

		entries, err := j.rosterFeed.GetTeamRoster(ctx, *team.NBATeamID, j.cfg.SeasonLabel)
		if err != nil {
			result.TeamsSkipped++
			result.Errors = append(result.Errors, fmt.Errorf("roster %s: %w", team.Tricode, err))
			log.Warn().Err(err).Str("tricode", team.Tricode).Msg("roster fetch failed")
			continue
		}

		for _, entry := range entries {
			created, err := j.upsertRosterEntry(ctx, team.ID, entry)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Errorf("player %d (%s): %w", entry.NBAPlayerID, team.Tricode, err))
				continue
			}
			if created {
				result.PlayersCreated++
			} else {
				result.PlayersUpdated++
			}
		}
		result.TeamsProcessed++

		// Pace the stats API between teams.
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-j.clock.After(j.cfg.RosterPause):
		}
	}

	log.Info().
		Int("teams", result.TeamsProcessed).
		Int("skipped", result.TeamsSkipped).
		Int("created", result.PlayersCreated).
		Int("updated", result.PlayersUpdated).
		Int("errors", len(result.Errors)).
		Msg("rosters sync complete")

	return result, nil
}

func (j *Jobs) upsertRosterEntry(ctx context.Context, teamID int, entry nba_client.RosterEntry) (bool, error) {
	req := roster.UpsertPlayerRequest{
		NBAPlayerID: entry.NBAPlayerID,
		TeamID:      &teamID,
		DisplayName: entry.DisplayName,
		HeightCm:    roster.ParseHeightCm(entry.Height),
		WeightKg:    roster.ParseWeightKg(entry.Weight),
		BirthDate:   roster.ParseBirthDate(entry.BirthDate),
		Active:      true,
	}
	if entry.Jersey != "" {
		req.JerseyNumber = &entry.Jersey
	}
	if entry.Position != "" {
		req.Position = &entry.Position
	}
	if entry.Country != "" {
		req.Country = &entry.Country
	}

	_, created, err := j.roster.UpsertPlayer(ctx, req)
	return created, err
}
