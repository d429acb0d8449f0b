package main

import (
	"database/sql"

	"github.com/jonboulle/clockwork"

	"github.com/ttflab/injurytrack/go/internal/injuries"
	"github.com/ttflab/injurytrack/go/internal/injuries/notify"
	"github.com/ttflab/injurytrack/go/internal/roster"
	"github.com/ttflab/injurytrack/go/internal/schedule"
	"github.com/ttflab/injurytrack/go/internal/teams"
)

type Services struct {
	Teams    *teams.App
	Schedule *schedule.App
	Roster   *roster.App
	Injuries *injuries.App
	Bus      *notify.Bus
}

func setupServices(database *sql.DB) *Services {
	// Database layer → Repository layer → App layer

	teamsApp := teams.NewApp(teams.NewRepository(database))
	scheduleApp := schedule.NewApp(schedule.NewRepository(database))
	rosterApp := roster.NewApp(roster.NewRepository(database))

	// Writes through this process notify both the Postgres channel
	// (remote consumers) and the in-process bus (websocket clients).
	bus := notify.NewBus()
	notifier := notify.Multi{notify.NewPGNotifier(database), bus}

	injuriesApp := injuries.NewApp(
		injuries.NewRepository(database),
		teamsApp,
		notifier,
		clockwork.NewRealClock(),
		injuries.DefaultConfig(),
	)

	return &Services{
		Teams:    teamsApp,
		Schedule: scheduleApp,
		Roster:   rosterApp,
		Injuries: injuriesApp,
		Bus:      bus,
	}
}
