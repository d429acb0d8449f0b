package nba_client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RosterEntry is one player row from the commonteamroster endpoint,
// with the raw stats-API string formats preserved (height "6-8",
// weight "210", birth date "MAR 03, 1998").
type RosterEntry struct {
	NBAPlayerID int64
	DisplayName string
	Jersey      string
	Position    string
	Height      string
	Weight      string
	BirthDate   string
	Country     string
}

// statsResponse is the generic stats.nba.com tabular envelope: parallel
// headers and untyped row values.
type statsResponse struct {
	ResultSets []struct {
		Name    string              `json:"name"`
		Headers []string            `json:"headers"`
		RowSet  [][]json.RawMessage `json:"rowSet"`
	} `json:"resultSets"`
}

// GetTeamRoster retrieves the current roster for one team by its NBA
// team ID and a season label such as "2025-26".
func (c *NBAClient) GetTeamRoster(ctx context.Context, nbaTeamID int64, season string) ([]RosterEntry, error) {
	endpoint := fmt.Sprintf("%s?TeamID=%d&Season=%s", rosterPath, nbaTeamID, season)

	body, err := c.stats.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster for team %d: %w", nbaTeamID, err)
	}

	var response statsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roster response: %w", err)
	}

	for _, set := range response.ResultSets {
		if set.Name != "CommonTeamRoster" {
			continue
		}
		return parseRosterRows(set.Headers, set.RowSet)
	}
	return nil, fmt.Errorf("no CommonTeamRoster result set for team %d", nbaTeamID)
}

func parseRosterRows(headers []string, rows [][]json.RawMessage) ([]RosterEntry, error) {
	col := make(map[string]int, len(headers))
	for i, h := range headers {
		col[strings.ToUpper(h)] = i
	}
	if _, ok := col["PLAYER_ID"]; !ok {
		return nil, fmt.Errorf("roster result set missing PLAYER_ID column")
	}

	entries := make([]RosterEntry, 0, len(rows))
	for _, row := range rows {
		id, err := cellInt64(row, col, "PLAYER_ID")
		if err != nil || id == 0 {
			// Rows without a numeric player ID cannot be keyed; skip them.
			continue
		}
		entries = append(entries, RosterEntry{
			NBAPlayerID: id,
			DisplayName: cellString(row, col, "PLAYER"),
			Jersey:      cellString(row, col, "NUM"),
			Position:    cellString(row, col, "POSITION"),
			Height:      cellString(row, col, "HEIGHT"),
			Weight:      cellString(row, col, "WEIGHT"),
			BirthDate:   cellString(row, col, "BIRTH_DATE"),
			Country:     cellString(row, col, "NATIONALITY"),
		})
	}
	return entries, nil
}

// cellString reads one cell as a string, accepting the stats API's habit
// of emitting numbers where strings are expected.
func cellString(row []json.RawMessage, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	var s string
	if err := json.Unmarshal(row[i], &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n float64
	if err := json.Unmarshal(row[i], &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return ""
}

func cellInt64(row []json.RawMessage, col map[string]int, name string) (int64, error) {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return 0, fmt.Errorf("missing column %s", name)
	}
	var n int64
	if err := json.Unmarshal(row[i], &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(row[i], &s); err == nil {
		return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	}
	return 0, fmt.Errorf("column %s is neither number nor string", name)
}
