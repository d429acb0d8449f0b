package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotifier struct {
	events []ChangeEvent
	err    error
}

func (s *stubNotifier) Publish(_ context.Context, event ChangeEvent) error {
	s.events = append(s.events, event)
	return s.err
}

func TestMultiFansOutToEveryNotifier(t *testing.T) {
	first := &stubNotifier{}
	second := &stubNotifier{}
	multi := Multi{first, second}

	event := ChangeEvent{TeamID: 3, Player: "K. Smith", Status: "Out", EstReturn: "TBD", Op: OpUpdate}
	require.NoError(t, multi.Publish(context.Background(), event))

	assert.Equal(t, []ChangeEvent{event}, first.events)
	assert.Equal(t, []ChangeEvent{event}, second.events)
}

func TestMultiJoinsErrorsWithoutShortCircuiting(t *testing.T) {
	errNats := errors.New("nats down")
	errPG := errors.New("pg down")
	middle := &stubNotifier{}
	multi := Multi{&stubNotifier{err: errNats}, middle, &stubNotifier{err: errPG}}

	event := ChangeEvent{TeamID: 3, Player: "K. Smith", Status: "Out", EstReturn: "TBD", Op: OpInsert}
	err := multi.Publish(context.Background(), event)

	require.Error(t, err)
	assert.ErrorIs(t, err, errNats)
	assert.ErrorIs(t, err, errPG)
	assert.Equal(t, []ChangeEvent{event}, middle.events, "a failing notifier must not stop the fan-out")
}
