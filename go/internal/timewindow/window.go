package timewindow

import (
	"fmt"
	"time"
	_ "time/tzdata" // Paris zone must resolve even on zoneless containers
)

// Window is a half-open UTC interval [Start, End) used to select the
// games relevant to one pick day.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

const parisZone = "Europe/Paris"

var paris = mustLoadParis()

func mustLoadParis() *time.Location {
	loc, err := time.LoadLocation(parisZone)
	if err != nil {
		panic(fmt.Sprintf("load %s: %v", parisZone, err))
	}
	return loc
}

// Paris returns the reference zone all pick-day boundaries are defined in.
func Paris() *time.Location {
	return paris
}

// PickNight returns the window of NBA games belonging to the pick day
// that starts on the given Paris date: 18:00 Paris that evening through
// 08:00 Paris the next morning, expressed in UTC. DST is handled by the
// zone database, so the UTC offsets on the two bounds can differ.
func PickNight(parisDate time.Time) Window {
	d := parisDate.In(paris)
	start := time.Date(d.Year(), d.Month(), d.Day(), 18, 0, 0, 0, paris)
	end := time.Date(d.Year(), d.Month(), d.Day(), 8, 0, 0, 0, paris).AddDate(0, 0, 1)
	return Window{Start: start.UTC(), End: end.UTC()}
}

// TonightIn returns the pick-night window for "today" as seen from
// Paris at the given instant. Before 08:00 Paris the night still in
// progress is the previous date's window.
func TonightIn(now time.Time) Window {
	local := now.In(paris)
	if local.Hour() < 8 {
		local = local.AddDate(0, 0, -1)
	}
	return PickNight(local)
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	u := t.UTC()
	return !u.Before(w.Start) && u.Before(w.End)
}

// ParisDate formats the window's starting Paris calendar date.
func (w Window) ParisDate() string {
	return w.Start.In(paris).Format("2006-01-02")
}
