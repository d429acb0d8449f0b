package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ttflab/injurytrack/go/internal/dashboard"
	"github.com/ttflab/injurytrack/go/internal/injuries/notify"
)

// All-in-one service: the dashboard API plus the websocket feed, with
// Postgres NOTIFY bridged into the in-process bus so changes written by
// the ETL process reach connected clients too.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	db, dsn, err := setupDatabase()
	if err != nil {
		log.Fatal().Err(err).Msg("setup database")
	}
	defer db.Close()

	services := setupServices(db)

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listener, err := notify.NewListener(services.Bus, notify.DefaultListenerConfig(dsn))
	if err != nil {
		log.Fatal().Err(err).Msg("create change listener")
	}
	go func() {
		if err := listener.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("change listener exited")
		}
	}()

	hub := dashboard.NewHub()
	go hub.Run(ctx, services.Bus)

	port := os.Getenv("DASHBOARD_PORT")
	if port == "" {
		port = "8050"
	}
	server := dashboard.NewServer(port, services.Schedule, services.Injuries, hub)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
		server.Stop()
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("dashboard server exited")
		}
	}
}
