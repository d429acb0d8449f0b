package etl

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/ttflab/injurytrack/go/internal/injuries"
)

// SyncInjuries scrapes the ESPN injuries page, maps team labels to
// stored team IDs and reconciles the resulting snapshot. Rows whose
// team label matches nothing in the registry are dropped before
// reconciliation; everything else is the reconciler's problem.
func (j *Jobs) SyncInjuries(ctx context.Context) (*injuries.RunResult, error) {
	scraped, err := j.injuryFeed.GetInjuries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch injuries: %w", err)
	}

	index, err := j.teams.BuildNameIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load team name index: %w", err)
	}

	snapshot := injuries.Snapshot{
		CheckDate: j.clock.Now().UTC(),
		Reports:   make([]injuries.Report, 0, len(scraped)),
	}
	unmapped := 0
	for _, row := range scraped {
		teamID, ok := index.Resolve(row.Team)
		if !ok {
			unmapped++
			log.Debug().Str("team", row.Team).Str("player", row.Player).Msg("skip unmapped team label")
			continue
		}
		snapshot.Reports = append(snapshot.Reports, injuries.Report{
			TeamID:    teamID,
			Player:    row.Player,
			Status:    row.Status,
			EstReturn: row.EstReturn,
		})
	}
	if unmapped > 0 {
		log.Warn().Int("rows", unmapped).Msg("injury rows dropped for unmapped team labels")
	}

	result, err := j.reconciler.Reconcile(ctx, snapshot)
	if err != nil {
		return result, fmt.Errorf("injuries reconciliation failed: %w", err)
	}
	return result, nil
}
