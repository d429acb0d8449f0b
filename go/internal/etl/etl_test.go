package etl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttflab/injurytrack/go/clients/espn_client"
	"github.com/ttflab/injurytrack/go/clients/nba_client"
	"github.com/ttflab/injurytrack/go/internal/injuries"
	"github.com/ttflab/injurytrack/go/internal/models"
	"github.com/ttflab/injurytrack/go/internal/roster"
	"github.com/ttflab/injurytrack/go/internal/schedule"
	"github.com/ttflab/injurytrack/go/internal/teams"
)

type fakeTeamRegistry struct {
	stored  []models.Team
	upserts []teams.UpsertTeamRequest
	nextID  int
}

func (f *fakeTeamRegistry) UpsertTeam(ctx context.Context, req teams.UpsertTeamRequest) (*models.Team, bool, error) {
	f.upserts = append(f.upserts, req)
	for i := range f.stored {
		if f.stored[i].Tricode == req.Tricode {
			return &f.stored[i], false, nil
		}
	}
	f.nextID++
	team := models.Team{ID: f.nextID, Tricode: req.Tricode, NBATeamID: &req.NBATeamID, Name: req.Name, City: req.City, ESPNName: req.ESPNName}
	f.stored = append(f.stored, team)
	return &team, true, nil
}

func (f *fakeTeamRegistry) ListAllTeams(ctx context.Context) ([]models.Team, error) {
	return f.stored, nil
}

func (f *fakeTeamRegistry) BuildNameIndex(ctx context.Context) (*teams.NameIndex, error) {
	app := teams.NewApp(fakeTeamsRepo{teams: f.stored})
	return app.BuildNameIndex(ctx)
}

// fakeTeamsRepo adapts the stored slice to the teams repository surface
// so BuildNameIndex can run against it.
type fakeTeamsRepo struct {
	teams []models.Team
}

func (f fakeTeamsRepo) UpsertByTricode(ctx context.Context, req teams.UpsertTeamRequest) (*models.Team, bool, error) {
	return nil, false, errors.New("not implemented")
}

func (f fakeTeamsRepo) GetTeam(ctx context.Context, id int) (*models.Team, error) {
	return nil, errors.New("not implemented")
}

func (f fakeTeamsRepo) GetTeamByTricode(ctx context.Context, tricode string) (*models.Team, error) {
	return nil, errors.New("not implemented")
}

func (f fakeTeamsRepo) ListAllTeams(ctx context.Context) ([]models.Team, error) {
	return f.teams, nil
}

type fakeScheduleStore struct {
	games []schedule.UpsertGameRequest
}

func (f *fakeScheduleStore) UpsertGame(ctx context.Context, req schedule.UpsertGameRequest) error {
	f.games = append(f.games, req)
	return nil
}

type fakeRosterStore struct {
	players []roster.UpsertPlayerRequest
}

func (f *fakeRosterStore) UpsertPlayer(ctx context.Context, req roster.UpsertPlayerRequest) (*models.Player, bool, error) {
	f.players = append(f.players, req)
	return &models.Player{NBAPlayerID: req.NBAPlayerID}, true, nil
}

type fakeReconciler struct {
	snapshots []injuries.Snapshot
}

func (f *fakeReconciler) Reconcile(ctx context.Context, snapshot injuries.Snapshot) (*injuries.RunResult, error) {
	f.snapshots = append(f.snapshots, snapshot)
	return &injuries.RunResult{Processed: len(snapshot.Reports)}, nil
}

type fakeFeeds struct {
	gameDates []nba_client.GameDate
	rosters   map[int64][]nba_client.RosterEntry
	injuries  []espn_client.TeamReport
}

func (f *fakeFeeds) GetLeagueSchedule(ctx context.Context) ([]nba_client.GameDate, error) {
	return f.gameDates, nil
}

func (f *fakeFeeds) GetTeamRoster(ctx context.Context, nbaTeamID int64, season string) ([]nba_client.RosterEntry, error) {
	return f.rosters[nbaTeamID], nil
}

func (f *fakeFeeds) GetInjuries(ctx context.Context) ([]espn_client.TeamReport, error) {
	return f.injuries, nil
}

func newTestJobs(registry *fakeTeamRegistry, store *fakeScheduleStore, rosters *fakeRosterStore, rec *fakeReconciler, feeds *fakeFeeds) *Jobs {
	cfg := DefaultConfig()
	cfg.RosterPause = 0
	return NewJobs(registry, store, rosters, rec, feeds, feeds, feeds, clockwork.NewRealClock(), cfg)
}

func scheduleFixture() []nba_client.GameDate {
	return []nba_client.GameDate{{
		GameDate: "10/30/2025 00:00:00",
		Games: []nba_client.ScheduleGame{
			{
				GameID:          "0022500123",
				GameCode:        "20251030/BOSLAL",
				GameDateTimeUTC: "2025-10-30T23:30:00Z",
				ArenaName:       "TD Garden",
				HomeTeam:        nba_client.ScheduleTeam{TeamID: 1610612738, TeamTricode: "BOS", TeamCity: "Boston", TeamName: "Celtics"},
				AwayTeam:        nba_client.ScheduleTeam{TeamID: 1610612747, TeamTricode: "LAL", TeamCity: "Los Angeles", TeamName: "Lakers"},
			},
			{
				// Placeholder row without a tipoff: skipped quietly.
				GameID:   "0022500124",
				HomeTeam: nba_client.ScheduleTeam{TeamID: 1610612738, TeamTricode: "BOS", TeamCity: "Boston", TeamName: "Celtics"},
				AwayTeam: nba_client.ScheduleTeam{TeamID: 1610612747, TeamTricode: "LAL", TeamCity: "Los Angeles", TeamName: "Lakers"},
			},
		},
	}}
}

func TestSyncTeamsAndGames(t *testing.T) {
	registry := &fakeTeamRegistry{}
	store := &fakeScheduleStore{}
	feeds := &fakeFeeds{gameDates: scheduleFixture()}
	jobs := newTestJobs(registry, store, &fakeRosterStore{}, &fakeReconciler{}, feeds)

	result, err := jobs.SyncTeamsAndGames(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.TeamsUpserted, "teams deduplicated across games")
	assert.Equal(t, 1, result.GamesUpserted)
	assert.Equal(t, 1, result.GamesSkipped, "tipoff-less placeholder skipped")
	assert.Empty(t, result.Errors)

	require.Len(t, store.games, 1)
	game := store.games[0]
	assert.Equal(t, "0022500123", game.GameID)
	assert.Equal(t, 2025, game.Season)
	assert.Equal(t, time.Date(2025, 10, 30, 23, 30, 0, 0, time.UTC), game.TipoffUTC)
	assert.NotEqual(t, game.HomeTeamID, game.AwayTeamID)
	require.NotNil(t, game.ArenaName)
	assert.Equal(t, "TD Garden", *game.ArenaName)

	// ESPN labels derive from city + name.
	var celtics teams.UpsertTeamRequest
	for _, req := range registry.upserts {
		if req.Tricode == "BOS" {
			celtics = req
		}
	}
	assert.Equal(t, "Boston Celtics", celtics.ESPNName)
}

func TestSyncRosters(t *testing.T) {
	bosID := int64(1610612738)
	registry := &fakeTeamRegistry{stored: []models.Team{
		{ID: 1, Tricode: "BOS", NBATeamID: &bosID, Name: "Celtics"},
		{ID: 2, Tricode: "XXX", Name: "No League ID"},
	}}
	feeds := &fakeFeeds{rosters: map[int64][]nba_client.RosterEntry{
		bosID: {
			{NBAPlayerID: 1628369, DisplayName: "Jayson Tatum", Jersey: "0", Position: "F", Height: "6-8", Weight: "210", BirthDate: "MAR 03, 1998", Country: "USA"},
			{NBAPlayerID: 204001, DisplayName: "Kristaps Porzingis", Height: "7-2", Weight: "240"},
		},
	}}
	store := &fakeRosterStore{}
	jobs := newTestJobs(registry, &fakeScheduleStore{}, store, &fakeReconciler{}, feeds)

	result, err := jobs.SyncRosters(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.TeamsProcessed)
	assert.Equal(t, 1, result.TeamsSkipped, "team without league ID skipped")
	assert.Equal(t, 2, result.PlayersCreated)

	require.Len(t, store.players, 2)
	tatum := store.players[0]
	require.NotNil(t, tatum.TeamID)
	assert.Equal(t, 1, *tatum.TeamID)
	require.NotNil(t, tatum.HeightCm)
	assert.Equal(t, 203, *tatum.HeightCm)
	require.NotNil(t, tatum.WeightKg)
	assert.Equal(t, 95, *tatum.WeightKg)
	require.NotNil(t, tatum.BirthDate)
	assert.Equal(t, time.Date(1998, 3, 3, 0, 0, 0, 0, time.UTC), *tatum.BirthDate)
	assert.True(t, tatum.Active)
}

func TestSyncInjuriesMapsTeamLabels(t *testing.T) {
	lacID := int64(1610612746)
	registry := &fakeTeamRegistry{stored: []models.Team{
		{ID: 7, Tricode: "LAC", NBATeamID: &lacID, Name: "Clippers", City: "Los Angeles", ESPNName: "Los Angeles Clippers"},
	}, nextID: 7}
	feeds := &fakeFeeds{injuries: []espn_client.TeamReport{
		{Team: "LA Clippers", Player: "Kawhi Leonard", Status: "Out", EstReturn: "TBD"},
		{Team: "Gotham Knights", Player: "B. Wayne", Status: "Out", EstReturn: "TBD"},
	}}
	rec := &fakeReconciler{}
	jobs := newTestJobs(registry, &fakeScheduleStore{}, &fakeRosterStore{}, rec, feeds)

	result, err := jobs.SyncInjuries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)

	require.Len(t, rec.snapshots, 1)
	reports := rec.snapshots[0].Reports
	require.Len(t, reports, 1, "unmapped team labels dropped before reconciliation")
	assert.Equal(t, 7, reports[0].TeamID)
	assert.Equal(t, "Kawhi Leonard", reports[0].Player)
	assert.False(t, rec.snapshots[0].CheckDate.IsZero())
}
