package espn_client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const injuriesPage = `
<html><body>
<div class="ResponsiveTable">
  <div class="Table__Title">Boston Celtics</div>
  <table>
    <thead><tr>
      <th>NAME</th><th>POS</th><th>EST. RETURN DATE</th><th>STATUS</th><th>COMMENT</th>
    </tr></thead>
    <tbody>
      <tr><td>Jayson Tatum</td><td>SF</td><td>Nov 1</td><td>Day-To-Day</td><td>Ankle sprain.</td></tr>
      <tr><td>Kristaps Porzingis</td><td>C</td><td></td><td>Out</td><td>Knee soreness.</td></tr>
    </tbody>
  </table>
</div>
<div class="ResponsiveTable">
  <div class="Table__Title">LA Clippers</div>
  <table>
    <thead><tr>
      <th>NAME</th><th>POS</th><th>EST. RETURN DATE</th><th>STATUS</th><th>COMMENT</th>
    </tr></thead>
    <tbody>
      <tr><td>Kawhi Leonard</td><td>SF</td><td>TBD</td><td></td><td></td></tr>
    </tbody>
  </table>
</div>
</body></html>`

func TestParseInjuriesHTML(t *testing.T) {
	reports, err := ParseInjuriesHTML([]byte(injuriesPage))
	require.NoError(t, err)
	require.Len(t, reports, 3)

	assert.Equal(t, TeamReport{
		Team:      "Boston Celtics",
		Player:    "Jayson Tatum",
		Status:    "Day-To-Day",
		EstReturn: "Nov 1",
		Comment:   "Ankle sprain.",
	}, reports[0])

	assert.Equal(t, "Unknown", reports[1].EstReturn, "blank cells default to Unknown")
	assert.Equal(t, "LA Clippers", reports[2].Team, "team labels are passed through raw")
	assert.Equal(t, "Unknown", reports[2].Status)
}

func TestParseInjuriesHTMLReorderedColumns(t *testing.T) {
	page := `
<div class="ResponsiveTable">
  <div class="Table__Title">Denver Nuggets</div>
  <table>
    <thead><tr><th>NAME</th><th>STATUS</th><th>EST. RETURN DATE</th></tr></thead>
    <tbody><tr><td>Jamal Murray</td><td>Questionable</td><td>Oct 30</td></tr></tbody>
  </table>
</div>`

	reports, err := ParseInjuriesHTML([]byte(page))
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "Questionable", reports[0].Status)
	assert.Equal(t, "Oct 30", reports[0].EstReturn)
}

func TestParseInjuriesHTMLEmptyPage(t *testing.T) {
	_, err := ParseInjuriesHTML([]byte("<html><body></body></html>"))
	assert.Error(t, err, "a page without tables means the scrape broke")
}
