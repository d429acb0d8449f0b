package notify

import (
	"context"
	"sync"
)

// Bus is an in-memory fan-out for change events, used when publisher and
// consumers live in one process (the dashboard pushing websocket
// refreshes). Slow subscribers drop events rather than block the writer;
// the channel is a freshness signal, not a log.
type Bus struct {
	mu   sync.RWMutex
	subs map[int]chan ChangeEvent
	next int
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan ChangeEvent)}
}

// Subscribe registers a consumer. The returned cancel func must be called
// when done.
func (b *Bus) Subscribe() (<-chan ChangeEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan ChangeEvent, 64)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (b *Bus) Publish(ctx context.Context, event ChangeEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- event:
		default:
		}
	}
	return nil
}
