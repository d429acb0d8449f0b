package etl

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// RunnerConfig schedules the periodic jobs. Injuries move fast, the
// schedule and rosters barely do.
type RunnerConfig struct {
	InjuriesEvery time.Duration
	ScheduleEvery time.Duration
	RostersEvery  time.Duration
}

func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		InjuriesEvery: 2 * time.Hour,
		ScheduleEvery: 24 * time.Hour,
		RostersEvery:  24 * time.Hour,
	}
}

// Run executes every job once, then keeps them running on their
// intervals until the context is cancelled. Job failures are logged and
// the loop keeps going: a transient feed outage must not kill the
// process.
func (j *Jobs) Run(ctx context.Context, cfg RunnerConfig) error {
	j.runScheduleJob(ctx)
	j.runRostersJob(ctx)
	j.runInjuriesJob(ctx)

	injuriesTicker := j.clock.NewTicker(cfg.InjuriesEvery)
	defer injuriesTicker.Stop()
	scheduleTicker := j.clock.NewTicker(cfg.ScheduleEvery)
	defer scheduleTicker.Stop()
	rostersTicker := j.clock.NewTicker(cfg.RostersEvery)
	defer rostersTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("etl runner stopping")
			return ctx.Err()
		case <-injuriesTicker.Chan():
			j.runInjuriesJob(ctx)
		case <-scheduleTicker.Chan():
			j.runScheduleJob(ctx)
		case <-rostersTicker.Chan():
			j.runRostersJob(ctx)
		}
	}
}

func (j *Jobs) runInjuriesJob(ctx context.Context) {
	if _, err := j.SyncInjuries(ctx); err != nil {
		log.Error().Err(err).Msg("injuries job failed")
	}
}

func (j *Jobs) runScheduleJob(ctx context.Context) {
	if _, err := j.SyncTeamsAndGames(ctx); err != nil {
		log.Error().Err(err).Msg("teams and games job failed")
	}
}

func (j *Jobs) runRostersJob(ctx context.Context) {
	if _, err := j.SyncRosters(ctx); err != nil {
		log.Error().Err(err).Msg("rosters job failed")
	}
}
