package injuries

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/ttflab/injurytrack/go/internal/injuries/notify"
	"github.com/ttflab/injurytrack/go/internal/models"
)

// InjuriesRepository defines what the app layer needs from the repository
type InjuriesRepository interface {
	UpsertWithHistory(ctx context.Context, report Report, checkDate time.Time) (WriteOp, error)
	RemoveWithHistory(ctx context.Context, teamID int, player string, checkDate time.Time) (bool, error)
	ListCurrentByTeam(ctx context.Context, teamID int) ([]models.CurrentInjury, error)
	CurrentForTeams(ctx context.Context, teamIDs []int) ([]TeamInjury, error)
	History(ctx context.Context, teamID int, player string, limit int) ([]models.InjuryHistoryEntry, error)
}

// TeamLookup is the only dependency the reconciler has on the team
// registry: validating that report rows reference existing teams.
type TeamLookup interface {
	GetTeam(ctx context.Context, id int) (*models.Team, error)
}

// Config bounds the batch-level retry on store unavailability.
type Config struct {
	MaxRetries int
	RetryDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		RetryDelay: 500 * time.Millisecond,
	}
}

// App reconciles injury snapshots against the current/history tables and
// emits one change event per write.
type App struct {
	repo     InjuriesRepository
	teams    TeamLookup
	notifier notify.Notifier
	clock    clockwork.Clock
	cfg      Config
}

// NewApp creates a new injuries App
func NewApp(repo InjuriesRepository, teams TeamLookup, notifier notify.Notifier, clock clockwork.Clock, cfg Config) *App {
	return &App{
		repo:     repo,
		teams:    teams,
		notifier: notifier,
		clock:    clock,
		cfg:      cfg,
	}
}

// Reconcile merges one snapshot into injuries_current and appends every
// observation to injuries_history. Malformed rows and unknown team
// references are rejected individually and never abort the run; store
// unavailability is retried a bounded number of times and then fails the
// whole run (rows already committed stand).
func (a *App) Reconcile(ctx context.Context, snapshot Snapshot) (*RunResult, error) {
	result := &RunResult{
		RunID:     uuid.New(),
		CheckDate: snapshot.CheckDate.UTC(),
	}
	if snapshot.CheckDate.IsZero() {
		result.CheckDate = a.clock.Now().UTC()
	}

	knownTeams := make(map[int]bool)
	seen := make(map[int]map[string]bool)

	for i, raw := range snapshot.Reports {
		result.Processed++

		report, err := a.normalizeReport(raw)
		if err != nil {
			a.rejectRow(result, i, raw, err)
			continue
		}

		if err := a.checkTeam(ctx, report.TeamID, knownTeams); err != nil {
			a.rejectRow(result, i, raw, err)
			continue
		}

		op, err := a.upsertWithRetry(ctx, report, result.CheckDate)
		if err != nil {
			if isRowRejection(err) {
				a.rejectRow(result, i, raw, err)
				continue
			}
			// Store unavailable after bounded retries: the run fails.
			return result, fmt.Errorf("reconciliation run %s aborted at row %d: %w", result.RunID, i, err)
		}

		switch op {
		case OpInsert:
			result.Inserted++
		case OpUpdate:
			result.Updated++
		case OpUnchanged:
			result.Unchanged++
		}

		if seen[report.TeamID] == nil {
			seen[report.TeamID] = make(map[string]bool)
		}
		seen[report.TeamID][strings.ToLower(report.Player)] = true

		a.publishChange(ctx, report, op, result.CheckDate)
	}

	a.collectStale(ctx, seen, result)

	log.Info().
		Str("run_id", result.RunID.String()).
		Int("processed", result.Processed).
		Int("inserted", result.Inserted).
		Int("updated", result.Updated).
		Int("unchanged", result.Unchanged).
		Int("skipped", result.Skipped).
		Int("stale", len(result.Stale)).
		Msg("injuries reconciliation complete")

	return result, nil
}

// MarkRecovered explicitly removes a player from the current view and
// appends a terminal "Recovered" observation. Reconciliation never does
// this implicitly: injuries silently missing from a feed must not
// silently vanish from the current view.
func (a *App) MarkRecovered(ctx context.Context, teamID int, player string) (bool, error) {
	player = strings.TrimSpace(player)
	if player == "" {
		return false, fmt.Errorf("%w: player is required", ErrValidation)
	}

	removed, err := a.repo.RemoveWithHistory(ctx, teamID, player, a.clock.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to mark %q recovered: %w", player, err)
	}
	if removed {
		log.Info().Int("team_id", teamID).Str("player", player).Msg("marked player recovered")
	}
	return removed, nil
}

// CurrentForTeams returns the current injuries for a set of teams, joined
// to tricodes for display.
func (a *App) CurrentForTeams(ctx context.Context, teamIDs []int) ([]TeamInjury, error) {
	if len(teamIDs) == 0 {
		return nil, nil
	}
	injuries, err := a.repo.CurrentForTeams(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get current injuries: %w", err)
	}
	return injuries, nil
}

// History returns the recent observations for one (team, player) pair.
func (a *App) History(ctx context.Context, teamID int, player string, limit int) ([]models.InjuryHistoryEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	entries, err := a.repo.History(ctx, teamID, player, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get injury history: %w", err)
	}
	return entries, nil
}

func (a *App) normalizeReport(raw Report) (Report, error) {
	report := Report{
		TeamID:    raw.TeamID,
		Player:    strings.TrimSpace(raw.Player),
		Status:    strings.TrimSpace(raw.Status),
		EstReturn: strings.TrimSpace(raw.EstReturn),
		Source:    strings.TrimSpace(raw.Source),
	}
	if report.Source == "" {
		report.Source = DefaultSource
	}
	if report.TeamID <= 0 {
		return report, fmt.Errorf("%w: team_id is required", ErrValidation)
	}
	if report.Player == "" {
		return report, fmt.Errorf("%w: player is required", ErrValidation)
	}
	if report.Status == "" {
		return report, fmt.Errorf("%w: status is required", ErrValidation)
	}
	if report.EstReturn == "" {
		return report, fmt.Errorf("%w: est_return is required", ErrValidation)
	}
	return report, nil
}

func (a *App) checkTeam(ctx context.Context, teamID int, known map[int]bool) error {
	if known[teamID] {
		return nil
	}
	if _, err := a.teams.GetTeam(ctx, teamID); err != nil {
		return fmt.Errorf("%w: team %d: %v", ErrUnknownTeam, teamID, err)
	}
	known[teamID] = true
	return nil
}

func (a *App) upsertWithRetry(ctx context.Context, report Report, checkDate time.Time) (WriteOp, error) {
	var (
		op      WriteOp
		lastErr error
	)
	for attempt := 0; attempt <= a.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return op, ctx.Err()
			case <-a.clock.After(a.cfg.RetryDelay * time.Duration(attempt)):
			}
		}

		op, lastErr = a.repo.UpsertWithHistory(ctx, report, checkDate)
		if lastErr == nil {
			return op, nil
		}
		if isRowRejection(lastErr) {
			return op, lastErr
		}
		log.Warn().
			Err(lastErr).
			Int("attempt", attempt+1).
			Str("player", report.Player).
			Msg("injury upsert failed, retrying")
	}
	return op, fmt.Errorf("upsert failed after %d attempts: %w", a.cfg.MaxRetries+1, lastErr)
}

// publishChange emits one event per committed write. Notification failure
// never rolls back or blocks the data write.
func (a *App) publishChange(ctx context.Context, report Report, op WriteOp, checkDate time.Time) {
	eventOp := notify.OpUpdate
	if op == OpInsert {
		eventOp = notify.OpInsert
	}

	event := notify.ChangeEvent{
		CheckDate: checkDate,
		TeamID:    report.TeamID,
		Player:    report.Player,
		Status:    report.Status,
		EstReturn: report.EstReturn,
		Op:        eventOp,
	}
	if err := a.notifier.Publish(ctx, event); err != nil {
		log.Warn().
			Err(err).
			Int("team_id", report.TeamID).
			Str("player", report.Player).
			Msg("failed to publish injury change event")
	}
}

func (a *App) rejectRow(result *RunResult, index int, raw Report, err error) {
	result.Skipped++
	result.Errors = append(result.Errors, RowError{
		Index:  index,
		TeamID: raw.TeamID,
		Player: raw.Player,
		Err:    err,
	})
	log.Warn().
		Err(err).
		Int("row", index).
		Int("team_id", raw.TeamID).
		Str("player", raw.Player).
		Msg("injury report rejected")
}

// collectStale reports current rows for snapshotted teams that the
// snapshot no longer mentions. They are recovery candidates for
// MarkRecovered, never deleted here.
func (a *App) collectStale(ctx context.Context, seen map[int]map[string]bool, result *RunResult) {
	for teamID, players := range seen {
		current, err := a.repo.ListCurrentByTeam(ctx, teamID)
		if err != nil {
			log.Warn().Err(err).Int("team_id", teamID).Msg("stale detection skipped")
			continue
		}
		for _, inj := range current {
			if !players[strings.ToLower(inj.Player)] {
				result.Stale = append(result.Stale, inj)
			}
		}
	}
}
