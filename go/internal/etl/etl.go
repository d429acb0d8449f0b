package etl

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/ttflab/injurytrack/go/clients/espn_client"
	"github.com/ttflab/injurytrack/go/clients/nba_client"
	"github.com/ttflab/injurytrack/go/internal/injuries"
	"github.com/ttflab/injurytrack/go/internal/models"
	"github.com/ttflab/injurytrack/go/internal/roster"
	"github.com/ttflab/injurytrack/go/internal/schedule"
	"github.com/ttflab/injurytrack/go/internal/teams"
)

// TeamRegistry defines what the ETL jobs need from the teams app
type TeamRegistry interface {
	UpsertTeam(ctx context.Context, req teams.UpsertTeamRequest) (*models.Team, bool, error)
	ListAllTeams(ctx context.Context) ([]models.Team, error)
	BuildNameIndex(ctx context.Context) (*teams.NameIndex, error)
}

// ScheduleStore defines what the ETL jobs need from the schedule app
type ScheduleStore interface {
	UpsertGame(ctx context.Context, req schedule.UpsertGameRequest) error
}

// RosterStore defines what the ETL jobs need from the roster app
type RosterStore interface {
	UpsertPlayer(ctx context.Context, req roster.UpsertPlayerRequest) (*models.Player, bool, error)
}

// Reconciler defines what the injuries job needs from the injuries app
type Reconciler interface {
	Reconcile(ctx context.Context, snapshot injuries.Snapshot) (*injuries.RunResult, error)
}

// ScheduleFeed is the NBA schedule CDN surface the jobs consume.
type ScheduleFeed interface {
	GetLeagueSchedule(ctx context.Context) ([]nba_client.GameDate, error)
}

// RosterFeed is the stats API surface the jobs consume.
type RosterFeed interface {
	GetTeamRoster(ctx context.Context, nbaTeamID int64, season string) ([]nba_client.RosterEntry, error)
}

// InjuryFeed is the ESPN scrape surface the jobs consume.
type InjuryFeed interface {
	GetInjuries(ctx context.Context) ([]espn_client.TeamReport, error)
}

// Config tunes the ETL jobs.
type Config struct {
	// SeasonLabel is the stats API season selector, e.g. "2025-26".
	SeasonLabel string
	// RosterPause spaces out stats API calls; the endpoint bans bursts.
	RosterPause time.Duration
}

func DefaultConfig() Config {
	return Config{
		SeasonLabel: "2025-26",
		RosterPause: 600 * time.Millisecond,
	}
}

// Jobs bundles the ETL entry points with their dependencies.
type Jobs struct {
	teams      TeamRegistry
	schedule   ScheduleStore
	roster     RosterStore
	reconciler Reconciler

	scheduleFeed ScheduleFeed
	rosterFeed   RosterFeed
	injuryFeed   InjuryFeed

	clock clockwork.Clock
	cfg   Config
}

// NewJobs creates the ETL job set
func NewJobs(
	teamsApp TeamRegistry,
	scheduleApp ScheduleStore,
	rosterApp RosterStore,
	reconciler Reconciler,
	scheduleFeed ScheduleFeed,
	rosterFeed RosterFeed,
	injuryFeed InjuryFeed,
	clock clockwork.Clock,
	cfg Config,
) *Jobs {
	return &Jobs{
		teams:        teamsApp,
		schedule:     scheduleApp,
		roster:       rosterApp,
		reconciler:   reconciler,
		scheduleFeed: scheduleFeed,
		rosterFeed:   rosterFeed,
		injuryFeed:   injuryFeed,
		clock:        clock,
		cfg:          cfg,
	}
}
