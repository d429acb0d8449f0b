package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ttflab/injurytrack/go/internal/dbconfig"
	"github.com/ttflab/injurytrack/go/internal/injuries/notify"
)

// Bridges the injury_changes Postgres channel to NATS JetStream so
// consumers outside the database network can follow injury changes.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	dsn := dbconfig.NewConfigFromEnv().DSN()

	jsCfg := notify.DefaultJetStreamConfig()
	if url := os.Getenv("NATS_URL"); url != "" {
		jsCfg.URL = url
	}
	publisher, err := notify.NewJetStreamPublisher(jsCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("create JetStream publisher")
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("close publisher")
		}
	}()

	listener, err := notify.NewListener(publisher, notify.DefaultListenerConfig(dsn))
	if err != nil {
		log.Fatal().Err(err).Msg("create change listener")
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Msg("starting injury change forwarder")
		errCh <- listener.Start(ctx)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
		waitForListener(errCh, 5*time.Second)
		log.Info().Msg("graceful shutdown complete")
	case err := <-errCh:
		log.Error().Err(err).Msg("listener exited unexpectedly")
	}
}

// waitForListener blocks until the listener goroutine exits, giving up
// after the timeout.
func waitForListener(errCh <-chan error, timeout time.Duration) {
	select {
	case <-errCh:
	case <-time.After(timeout):
		log.Warn().Msg("listener did not stop before the timeout")
	}
}
