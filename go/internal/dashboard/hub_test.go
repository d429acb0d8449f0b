package dashboard

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttflab/injurytrack/go/internal/injuries/notify"
)

func waitForClientCount(t *testing.T, hub *Hub, want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.clients) == want
	}, time.Second, 10*time.Millisecond)
}

func TestHubPushesBusEventsToClients(t *testing.T) {
	hub := NewHub()
	bus := notify.NewBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx, bus)

	client := &Client{hub: hub, send: make(chan []byte, 4)}
	require.True(t, hub.add(client))
	waitForClientCount(t, hub, 1)

	event := notify.ChangeEvent{TeamID: 5, Player: "J. Doe", Status: "Out", EstReturn: "TBD", Op: notify.OpUpdate}
	require.NoError(t, bus.Publish(ctx, event))

	select {
	case raw := <-client.send:
		var msg WSMessage
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, "injury_change", msg.Type)
	case <-time.After(time.Second):
		t.Fatal("no push for the change event")
	}
}

func TestHubShutdownReleasesClients(t *testing.T) {
	hub := NewHub()
	bus := notify.NewBus()
	ctx, cancel := context.WithCancel(context.Background())

	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx, bus)
		close(stopped)
	}()

	client := &Client{hub: hub, send: make(chan []byte, 4)}
	require.True(t, hub.add(client))
	waitForClientCount(t, hub, 1)

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("hub did not stop on context cancel")
	}

	_, open := <-client.send
	assert.False(t, open, "shutdown closes the client send channel")

	// A read pump exiting after shutdown detaches without blocking.
	released := make(chan struct{})
	go func() {
		hub.drop(client)
		close(released)
	}()
	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("drop blocked after hub shutdown")
	}

	assert.False(t, hub.add(&Client{hub: hub, send: make(chan []byte, 1)}),
		"late registrations are refused after shutdown")
}
