package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ttflab/injurytrack/go/internal/dbconfig"
	"github.com/ttflab/injurytrack/go/internal/injuries"
	"github.com/ttflab/injurytrack/go/internal/injuries/notify"
	"github.com/ttflab/injurytrack/go/internal/report"
	"github.com/ttflab/injurytrack/go/internal/schedule"
	"github.com/ttflab/injurytrack/go/internal/teams"
	"github.com/ttflab/injurytrack/go/internal/timewindow"
)

// Emails the injury digest for the teams playing in tonight's Paris
// window (18:00 to 08:00 the next morning).
func main() {
	date := flag.String("date", "", "Paris date YYYY-MM-DD (default: tonight)")
	dryRun := flag.Bool("dry-run", false, "print the text digest instead of emailing it")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	window := timewindow.TonightIn(time.Now())
	if *date != "" {
		parsed, err := time.Parse("2006-01-02", *date)
		if err != nil {
			log.Fatal().Err(err).Str("date", *date).Msg("invalid -date, expected YYYY-MM-DD")
		}
		window = timewindow.PickNight(parsed)
	}

	cfg := dbconfig.NewConfigFromEnv()
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}

	ctx := context.Background()

	teamsApp := teams.NewApp(teams.NewRepository(db))
	scheduleApp := schedule.NewApp(schedule.NewRepository(db))
	injuriesApp := injuries.NewApp(
		injuries.NewRepository(db),
		teamsApp,
		notify.LogPublisher{},
		clockwork.NewRealClock(),
		injuries.DefaultConfig(),
	)

	teamIDs, err := scheduleApp.TeamsPlayingInWindow(ctx, window.Start, window.End)
	if err != nil {
		log.Fatal().Err(err).Msg("load teams playing in window")
	}

	rows, err := injuriesApp.CurrentForTeams(ctx, teamIDs)
	if err != nil {
		log.Fatal().Err(err).Msg("load current injuries")
	}

	digest := report.BuildDigest(rows, window.ParisDate(), time.Now().In(timewindow.Paris()))
	log.Info().
		Str("date", digest.DateStr).
		Int("teams", digest.TeamCount).
		Int("players", digest.PlayerCount).
		Msg("digest built")

	if *dryRun {
		os.Stdout.WriteString(digest.RenderText())
		return
	}

	sender := report.NewSender(report.NewSMTPConfigFromEnv())
	if err := sender.Send(digest); err != nil {
		log.Fatal().Err(err).Msg("send injuries report")
	}
}
