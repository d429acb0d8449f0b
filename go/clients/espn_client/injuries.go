package espn_client

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// TeamReport is one scraped injury row, still keyed by the ESPN team
// label. Mapping labels to database team IDs is the caller's job.
type TeamReport struct {
	Team      string `json:"team"`
	Player    string `json:"player"`
	Status    string `json:"status"`
	EstReturn string `json:"est_return"`
	Comment   string `json:"comment,omitempty"`
}

// ParseInjuriesHTML extracts all per-team injury tables from the page.
// Column positions are resolved by header text, with the historical
// positions as fallback: ESPN reorders columns between seasons.
func ParseInjuriesHTML(html []byte) ([]TeamReport, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse injuries HTML: %w", err)
	}

	var reports []TeamReport
	doc.Find("div.ResponsiveTable").Each(func(_ int, section *goquery.Selection) {
		team := strings.TrimSpace(section.Find("div.Table__Title").First().Text())
		if team == "" {
			return
		}

		table := section.Find("table").First()
		if table.Length() == 0 {
			return
		}

		idxName, idxEst, idxStatus, idxComment := columnIndexes(table)
		table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td")
			player := cellText(cells, idxName)
			if player == "" || strings.EqualFold(player, "NAME") {
				return
			}
			reports = append(reports, TeamReport{
				Team:      team,
				Player:    player,
				Status:    orUnknown(cellText(cells, idxStatus)),
				EstReturn: orUnknown(cellText(cells, idxEst)),
				Comment:   cellText(cells, idxComment),
			})
		})
	})

	if len(reports) == 0 {
		return nil, fmt.Errorf("no injury tables found in ESPN page")
	}
	return reports, nil
}

func columnIndexes(table *goquery.Selection) (name, est, status, comment int) {
	name, est, status, comment = 0, 2, 3, 4

	headers := table.Find("thead th")
	headers.Each(func(i int, th *goquery.Selection) {
		switch text := strings.ToUpper(strings.TrimSpace(th.Text())); {
		case text == "NAME":
			name = i
		case strings.Contains(text, "EST"):
			est = i
		case strings.Contains(text, "STATUS"):
			status = i
		case strings.Contains(text, "COMMENT"):
			comment = i
		}
	})
	if n := headers.Length(); n > 0 && comment >= n {
		comment = n - 1
	}
	return name, est, status, comment
}

func cellText(cells *goquery.Selection, index int) string {
	if index < 0 || index >= cells.Length() {
		return ""
	}
	return strings.TrimSpace(cells.Eq(index).Text())
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
