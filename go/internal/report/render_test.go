package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttflab/injurytrack/go/internal/injuries"
)

func sampleRows() []injuries.TeamInjury {
	return []injuries.TeamInjury{
		{Team: "BOS", Player: "Jayson Tatum", Status: "Day-To-Day", EstReturn: "Nov 1"},
		{Team: "BOS", Player: "Kristaps Porzingis", Status: "Out", EstReturn: "Unknown"},
		{Team: "LAL", Player: "LeBron James", Status: "Questionable", EstReturn: "Oct 30"},
	}
}

func TestBuildDigestGroupsByTeam(t *testing.T) {
	now := time.Date(2025, 10, 30, 9, 30, 0, 0, time.UTC)
	digest := BuildDigest(sampleRows(), "2025-10-30", now)

	assert.Equal(t, 2, digest.TeamCount)
	assert.Equal(t, 3, digest.PlayerCount)
	require.Len(t, digest.Teams, 2)
	assert.Equal(t, "BOS", digest.Teams[0].Name)
	assert.Len(t, digest.Teams[0].Players, 2)
	assert.Equal(t, "LAL", digest.Teams[1].Name)

	assert.Equal(t, "#fff8e1", digest.Teams[0].Players[0].Background)
	assert.Equal(t, "#ffebeb", digest.Teams[0].Players[1].Background)
	assert.Equal(t, "#ffffff", digest.Teams[1].Players[0].Background)
}

func TestRenderHTML(t *testing.T) {
	digest := BuildDigest(sampleRows(), "2025-10-30", time.Date(2025, 10, 30, 9, 30, 0, 0, time.UTC))

	html, err := digest.RenderHTML()
	require.NoError(t, err)

	assert.Contains(t, html, "nuit du 2025-10-30")
	assert.Contains(t, html, "Jayson Tatum")
	assert.Contains(t, html, "<strong>2</strong> équipes jouent")
	assert.Contains(t, html, "30/10/2025 09:30")
	assert.NotContains(t, html, "Aucun joueur blessé")
}

func TestRenderHTMLEscapesPlayerNames(t *testing.T) {
	rows := []injuries.TeamInjury{
		{Team: "BOS", Player: "<script>alert(1)</script>", Status: "Out", EstReturn: "TBD"},
	}
	digest := BuildDigest(rows, "2025-10-30", time.Now())

	html, err := digest.RenderHTML()
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestRenderHTMLEmpty(t *testing.T) {
	digest := BuildDigest(nil, "2025-10-30", time.Now())

	html, err := digest.RenderHTML()
	require.NoError(t, err)
	assert.Contains(t, html, "Aucun joueur blessé signalé.")
}

func TestRenderText(t *testing.T) {
	digest := BuildDigest(sampleRows(), "2025-10-30", time.Now())

	text := digest.RenderText()
	lines := strings.Split(strings.TrimSpace(text), "\n")
	assert.Equal(t, "Blessés — nuit du 2025-10-30", lines[0])
	assert.Contains(t, text, "2 équipes — 3 blessés")
	assert.Contains(t, text, "  - Kristaps Porzingis — Out (retour: Unknown)")
}

func TestSubject(t *testing.T) {
	digest := BuildDigest(nil, "2025-10-30", time.Now())
	assert.Equal(t, "NBA — Blessés (fenêtre Paris 18h→8h) — 2025-10-30", digest.Subject())
}
