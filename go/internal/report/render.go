package report

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/ttflab/injurytrack/go/internal/injuries"
)

// Digest is one night's injury report, rendered for teams playing in
// the Paris window. The audience is French TTFL players, hence the
// French copy.
type Digest struct {
	DateStr     string
	TeamCount   int
	PlayerCount int
	Teams       []teamSection
	UpdatedAt   string
}

type teamSection struct {
	Name    string
	Players []playerRow
}

type playerRow struct {
	Player     string
	Status     string
	EstReturn  string
	Background string
}

var htmlTemplate = template.Must(template.New("digest").Parse(`
<div style="font-family:Arial, sans-serif; background-color:#f3f6ff; padding:20px;">
  <h2 style="margin:0 0 8px;color:#0d1b2a;">&#128567; Blessés — équipes jouant la nuit du {{.DateStr}}</h2>
{{- if .Teams}}
  <p style="color:#444;margin-bottom:20px;">
    <strong>{{.TeamCount}}</strong> équipes jouent — <strong>{{.PlayerCount}}</strong> blessé(s) signalé(s)
  </p>
{{- range .Teams}}
  <h3 style="color:#0d1b2a;margin-top:20px;">&#127936; {{.Name}}</h3>
  <table style="width:100%;border-collapse:collapse;background:#fff;border-radius:8px;overflow:hidden;margin-bottom:10px;">
    <thead>
      <tr style="background:#1a237e;color:#fff;text-align:left;">
        <th style="padding:10px 12px;">PLAYER</th>
        <th style="padding:10px 12px;">STATUS</th>
        <th style="padding:10px 12px;">EST RETURN</th>
      </tr>
    </thead>
    <tbody>
{{- range .Players}}
      <tr style="background-color:{{.Background}};">
        <td style="padding:8px 12px;border-bottom:1px solid #e5e7eb;">{{.Player}}</td>
        <td style="padding:8px 12px;border-bottom:1px solid #e5e7eb;">{{.Status}}</td>
        <td style="padding:8px 12px;border-bottom:1px solid #e5e7eb;">{{.EstReturn}}</td>
      </tr>
{{- end}}
    </tbody>
  </table>
{{- end}}
{{- else}}
  <p style="color:#555;">Aucun joueur blessé signalé.</p>
{{- end}}
  <p style="font-size:12px;color:#7a7a7a;margin-top:20px;">
    Dernière mise à jour : {{.UpdatedAt}}
  </p>
</div>
`))

// BuildDigest groups current injuries by team label. The input keeps the
// repository ordering (team, status, player), so grouping is sequential.
func BuildDigest(rows []injuries.TeamInjury, dateStr string, now time.Time) Digest {
	digest := Digest{
		DateStr:   dateStr,
		UpdatedAt: now.Format("02/01/2006 15:04"),
	}

	for _, row := range rows {
		if len(digest.Teams) == 0 || digest.Teams[len(digest.Teams)-1].Name != row.Team {
			digest.Teams = append(digest.Teams, teamSection{Name: row.Team})
		}
		section := &digest.Teams[len(digest.Teams)-1]
		section.Players = append(section.Players, playerRow{
			Player:     row.Player,
			Status:     row.Status,
			EstReturn:  row.EstReturn,
			Background: statusBackground(row.Status),
		})
	}

	digest.TeamCount = len(digest.Teams)
	digest.PlayerCount = len(rows)
	return digest
}

func statusBackground(status string) string {
	switch {
	case strings.Contains(status, "Out"):
		return "#ffebeb"
	case strings.Contains(status, "Day-To-Day"):
		return "#fff8e1"
	default:
		return "#ffffff"
	}
}

// RenderHTML renders the digest for HTML-capable mail clients.
func (d Digest) RenderHTML() (string, error) {
	var sb strings.Builder
	if err := htmlTemplate.Execute(&sb, d); err != nil {
		return "", fmt.Errorf("failed to render digest HTML: %w", err)
	}
	return sb.String(), nil
}

// RenderText renders the plain-text alternative.
func (d Digest) RenderText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Blessés — nuit du %s\n", d.DateStr)
	if len(d.Teams) == 0 {
		sb.WriteString("Aucun joueur blessé signalé.")
		return sb.String()
	}

	fmt.Fprintf(&sb, "%d équipes — %d blessés\n\n", d.TeamCount, d.PlayerCount)
	for _, team := range d.Teams {
		fmt.Fprintf(&sb, "%s\n", team.Name)
		for _, p := range team.Players {
			fmt.Fprintf(&sb, "  - %s — %s (retour: %s)\n", p.Player, p.Status, p.EstReturn)
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// Subject returns the email subject for the digest's date.
func (d Digest) Subject() string {
	return fmt.Sprintf("NBA — Blessés (fenêtre Paris 18h→8h) — %s", d.DateStr)
}
