package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ttflab/injurytrack/go/clients/espn_client"
	"github.com/ttflab/injurytrack/go/clients/nba_client"
	"github.com/ttflab/injurytrack/go/internal/dbconfig"
	"github.com/ttflab/injurytrack/go/internal/etl"
	"github.com/ttflab/injurytrack/go/internal/injuries"
	"github.com/ttflab/injurytrack/go/internal/injuries/notify"
	"github.com/ttflab/injurytrack/go/internal/roster"
	"github.com/ttflab/injurytrack/go/internal/schedule"
	"github.com/ttflab/injurytrack/go/internal/teams"
)

func main() {
	job := flag.String("job", "injuries", "job to run: teams_games, players, injuries, all")
	loop := flag.Bool("loop", false, "keep running the jobs on their intervals")
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var fileCfg *Config
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("load config")
		}
		fileCfg = loaded
	}

	cfg := dbconfig.NewConfigFromEnv()
	dsn := cfg.DSN()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}
	log.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Msg("connected to database")

	jobs := setupJobs(db, fileCfg.etlConfig())

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *loop {
		if err := jobs.Run(ctx, fileCfg.runnerConfig()); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatal().Err(err).Msg("etl runner exited")
		}
		return
	}

	if err := runOnce(ctx, jobs, *job); err != nil {
		log.Fatal().Err(err).Str("job", *job).Msg("job failed")
	}
}

func setupJobs(db *sql.DB, etlCfg etl.Config) *etl.Jobs {
	teamsApp := teams.NewApp(teams.NewRepository(db))
	scheduleApp := schedule.NewApp(schedule.NewRepository(db))
	rosterApp := roster.NewApp(roster.NewRepository(db))

	// The app-level notifier is the only emitter on injury_changes, so
	// subscribers see exactly one event per write with check_date as
	// reconciled.
	notifier := notify.NewPGNotifier(db)
	injuriesApp := injuries.NewApp(
		injuries.NewRepository(db),
		teamsApp,
		notifier,
		clockwork.NewRealClock(),
		injuries.DefaultConfig(),
	)

	nba := nba_client.NewNBAClient()
	espn := espn_client.NewESPNClient()

	return etl.NewJobs(
		teamsApp, scheduleApp, rosterApp, injuriesApp,
		nba, nba, espn,
		clockwork.NewRealClock(), etlCfg,
	)
}

func runOnce(ctx context.Context, jobs *etl.Jobs, job string) error {
	switch job {
	case "teams_games":
		_, err := jobs.SyncTeamsAndGames(ctx)
		return err
	case "players":
		_, err := jobs.SyncRosters(ctx)
		return err
	case "injuries":
		_, err := jobs.SyncInjuries(ctx)
		return err
	case "all":
		if _, err := jobs.SyncTeamsAndGames(ctx); err != nil {
			return err
		}
		if _, err := jobs.SyncRosters(ctx); err != nil {
			return err
		}
		_, err := jobs.SyncInjuries(ctx)
		return err
	default:
		return errors.New("unknown job, expected teams_games, players, injuries or all")
	}
}
