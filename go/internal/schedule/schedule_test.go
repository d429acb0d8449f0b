package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferSeason(t *testing.T) {
	tipoff := time.Date(2025, 11, 21, 0, 30, 0, 0, time.UTC)

	t.Run("from game code", func(t *testing.T) {
		assert.Equal(t, 2025, InferSeason("20251121/BOSLAL", time.Time{}))
	})

	t.Run("falls back to tipoff year", func(t *testing.T) {
		assert.Equal(t, 2025, InferSeason("", tipoff))
		assert.Equal(t, 2025, InferSeason("BOS", tipoff))
	})

	t.Run("unknown", func(t *testing.T) {
		assert.Equal(t, 1970, InferSeason("", time.Time{}))
	})
}

type fakeScheduleRepo struct {
	games []UpsertGameRequest
}

func (f *fakeScheduleRepo) UpsertGame(ctx context.Context, req UpsertGameRequest) error {
	f.games = append(f.games, req)
	return nil
}

func (f *fakeScheduleRepo) GamesInWindow(ctx context.Context, start, end time.Time) ([]GameSummary, error) {
	return nil, nil
}

func (f *fakeScheduleRepo) TeamsPlayingInWindow(ctx context.Context, start, end time.Time) ([]int, error) {
	return nil, nil
}

func TestUpsertGameValidation(t *testing.T) {
	repo := &fakeScheduleRepo{}
	app := NewApp(repo)
	tipoff := time.Date(2025, 11, 21, 0, 30, 0, 0, time.UTC)

	t.Run("rejects same home and away team", func(t *testing.T) {
		err := app.UpsertGame(context.Background(), UpsertGameRequest{
			GameID: "0022500001", Season: 2025, TipoffUTC: tipoff,
			HomeTeamID: 5, AwayTeamID: 5,
		})
		require.Error(t, err)
		assert.Empty(t, repo.games)
	})

	t.Run("rejects missing tipoff", func(t *testing.T) {
		err := app.UpsertGame(context.Background(), UpsertGameRequest{
			GameID: "0022500001", Season: 2025, HomeTeamID: 5, AwayTeamID: 6,
		})
		require.Error(t, err)
	})

	t.Run("accepts a valid game", func(t *testing.T) {
		err := app.UpsertGame(context.Background(), UpsertGameRequest{
			GameID: "0022500001", Season: 2025, TipoffUTC: tipoff,
			HomeTeamID: 5, AwayTeamID: 6,
		})
		require.NoError(t, err)
		require.Len(t, repo.games, 1)
		assert.Equal(t, "0022500001", repo.games[0].GameID)
	})
}
