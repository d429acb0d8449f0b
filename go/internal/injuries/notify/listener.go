package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type ListenerConfig struct {
	DatabaseURL  string        // Postgres DSN for LISTEN/NOTIFY
	PingInterval time.Duration // Keeps the listening connection alive
}

func DefaultListenerConfig(databaseURL string) ListenerConfig {
	return ListenerConfig{
		DatabaseURL:  databaseURL,
		PingInterval: 90 * time.Second,
	}
}

// Listener subscribes to the injury_changes Postgres channel and forwards
// every payload to a Notifier (JetStream in production). Delivery is
// fire-and-forget: events raised while the listener is down are gone, and
// that is fine — injuries_current/injuries_history remain authoritative.
type Listener struct {
	listener *pq.Listener
	forward  Notifier
	cfg      ListenerConfig
}

func NewListener(forward Notifier, cfg ListenerConfig) (*Listener, error) {
	l := pq.NewListener(
		cfg.DatabaseURL,
		10*time.Second,
		time.Minute,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				log.Error().Err(err).Msg("listener event")
			}
		},
	)
	if err := l.Listen(Channel); err != nil {
		return nil, fmt.Errorf("failed to listen to channel: %w", err)
	}

	log.Info().Str("channel", Channel).Msg("listening for injury changes")

	return &Listener{listener: l, forward: forward, cfg: cfg}, nil
}

func (l *Listener) Start(ctx context.Context) error {
	pingTicker := time.NewTicker(l.cfg.PingInterval)
	defer pingTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("listener shutting down")
			return l.Stop()
		case note := <-l.listener.Notify:
			if note == nil {
				// nil notification means the connection was lost; pq reconnects
				continue
			}
			if err := l.handleNotification(ctx, note.Extra); err != nil {
				log.Error().Err(err).Msg("failed to handle notification")
			}
		case <-pingTicker.C:
			if err := l.listener.Ping(); err != nil {
				log.Error().Err(err).Msg("failed to ping listener")
			}
		}
	}
}

func (l *Listener) Stop() error {
	return l.listener.Close()
}

func (l *Listener) handleNotification(ctx context.Context, payload string) error {
	var event ChangeEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return fmt.Errorf("invalid change event payload: %w", err)
	}

	if err := l.forward.Publish(ctx, event); err != nil {
		return fmt.Errorf("failed to forward event: %w", err)
	}

	log.Debug().
		Int("team_id", event.TeamID).
		Str("player", event.Player).
		Str("op", string(event.Op)).
		Msg("forwarded injury change")
	return nil
}
