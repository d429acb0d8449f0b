package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttflab/injurytrack/go/internal/injuries"
	"github.com/ttflab/injurytrack/go/internal/models"
	"github.com/ttflab/injurytrack/go/internal/schedule"
)

type fakeScheduleReader struct {
	games   []schedule.GameSummary
	teamIDs []int

	gotStart time.Time
	gotEnd   time.Time
}

func (f *fakeScheduleReader) GamesInWindow(ctx context.Context, start, end time.Time) ([]schedule.GameSummary, error) {
	f.gotStart, f.gotEnd = start, end
	return f.games, nil
}

func (f *fakeScheduleReader) TeamsPlayingInWindow(ctx context.Context, start, end time.Time) ([]int, error) {
	f.gotStart, f.gotEnd = start, end
	return f.teamIDs, nil
}

type fakeInjuriesReader struct {
	current []injuries.TeamInjury
	history []models.InjuryHistoryEntry

	gotTeamIDs []int
	gotLimit   int
}

func (f *fakeInjuriesReader) CurrentForTeams(ctx context.Context, teamIDs []int) ([]injuries.TeamInjury, error) {
	f.gotTeamIDs = teamIDs
	return f.current, nil
}

func (f *fakeInjuriesReader) History(ctx context.Context, teamID int, player string, limit int) ([]models.InjuryHistoryEntry, error) {
	f.gotLimit = limit
	return f.history, nil
}

func newTestServer(sched *fakeScheduleReader, inj *fakeInjuriesReader) http.Handler {
	return NewServer("0", sched, inj, NewHub()).router()
}

func TestHandleGames(t *testing.T) {
	sched := &fakeScheduleReader{games: []schedule.GameSummary{
		{GameID: "0022500123", Home: "BOS", Away: "LAL", TipoffUTC: time.Date(2026, 1, 15, 23, 30, 0, 0, time.UTC)},
	}}
	handler := newTestServer(sched, &fakeInjuriesReader{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/games?date=2026-01-15", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Date  string                 `json:"date"`
		Games []schedule.GameSummary `json:"games"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-01-15", resp.Date)
	require.Len(t, resp.Games, 1)
	assert.Equal(t, "BOS", resp.Games[0].Home)

	// 18:00 Paris on a winter date is 17:00 UTC.
	assert.Equal(t, time.Date(2026, 1, 15, 17, 0, 0, 0, time.UTC), sched.gotStart)
	assert.Equal(t, time.Date(2026, 1, 16, 7, 0, 0, 0, time.UTC), sched.gotEnd)
}

func TestHandleGamesBadDate(t *testing.T) {
	handler := newTestServer(&fakeScheduleReader{}, &fakeInjuriesReader{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/games?date=tonight", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleInjuries(t *testing.T) {
	sched := &fakeScheduleReader{teamIDs: []int{5, 9}}
	inj := &fakeInjuriesReader{current: []injuries.TeamInjury{
		{Team: "BOS", Player: "Jayson Tatum", Status: "Out", EstReturn: "TBD"},
	}}
	handler := newTestServer(sched, inj)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/injuries?date=2026-01-15", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{5, 9}, inj.gotTeamIDs, "injuries scoped to teams playing in the window")

	var resp struct {
		Teams    int                   `json:"teams"`
		Injuries []injuries.TeamInjury `json:"injuries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Teams)
	require.Len(t, resp.Injuries, 1)
}

func TestHandleHistory(t *testing.T) {
	inj := &fakeInjuriesReader{history: []models.InjuryHistoryEntry{
		{ID: 2, TeamID: 5, Player: "Jayson Tatum", Status: "Out"},
		{ID: 1, TeamID: 5, Player: "Jayson Tatum", Status: "Day-To-Day"},
	}}
	handler := newTestServer(&fakeScheduleReader{}, inj)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/injuries/history?team_id=5&player=Jayson+Tatum", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 50, inj.gotLimit, "limit defaults to 50")

	var resp struct {
		History []models.InjuryHistoryEntry `json:"history"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.History, 2)
}

func TestHandleHistoryRequiresParams(t *testing.T) {
	handler := newTestServer(&fakeScheduleReader{}, &fakeInjuriesReader{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/injuries/history?player=X", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/injuries/history?team_id=5", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	handler := newTestServer(&fakeScheduleReader{}, &fakeInjuriesReader{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
