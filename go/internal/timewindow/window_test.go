package timewindow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickNightWinterOffsets(t *testing.T) {
	// January: Paris is UTC+1 on both bounds.
	w := PickNight(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2026, 1, 15, 17, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2026, 1, 16, 7, 0, 0, 0, time.UTC), w.End)
}

func TestPickNightSummerOffsets(t *testing.T) {
	// April: Paris is UTC+2 on both bounds.
	w := PickNight(time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2026, 4, 10, 16, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2026, 4, 11, 6, 0, 0, 0, time.UTC), w.End)
}

func TestPickNightSpansDSTTransition(t *testing.T) {
	// Paris springs forward on 2026-03-29 at 02:00: the window opens at
	// UTC+1 and closes at UTC+2, so it is one hour shorter than usual.
	w := PickNight(time.Date(2026, 3, 28, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2026, 3, 28, 17, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2026, 3, 29, 6, 0, 0, 0, time.UTC), w.End)
	assert.Equal(t, 13*time.Hour, w.End.Sub(w.Start))
}

func TestTonightBeforeMorningCutoff(t *testing.T) {
	// 05:00 Paris (04:00 UTC in winter): still the previous night.
	now := time.Date(2026, 1, 16, 4, 0, 0, 0, time.UTC)
	w := TonightIn(now)

	assert.Equal(t, "2026-01-15", w.ParisDate())
	assert.True(t, w.Contains(now))
}

func TestTonightAfterMorningCutoff(t *testing.T) {
	// 10:00 Paris: the upcoming night.
	now := time.Date(2026, 1, 16, 9, 0, 0, 0, time.UTC)
	w := TonightIn(now)

	assert.Equal(t, "2026-01-16", w.ParisDate())
	assert.False(t, w.Contains(now), "daytime falls between windows")
}

func TestContainsBounds(t *testing.T) {
	w := PickNight(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC))
	require.False(t, w.Start.IsZero())

	assert.True(t, w.Contains(w.Start), "start is inclusive")
	assert.False(t, w.Contains(w.End), "end is exclusive")
	assert.True(t, w.Contains(w.Start.Add(6*time.Hour)))
	assert.False(t, w.Contains(w.Start.Add(-time.Minute)))
}
