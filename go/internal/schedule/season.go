package schedule

import (
	"time"
)

// InferSeason infers the season from the league gameCode ("20251121/BOSLAL")
// or, failing that, from the tipoff year. 1970 marks an unknown season.
func InferSeason(gameCode string, tipoffUTC time.Time) int {
	if len(gameCode) >= 4 {
		if year, ok := parseYear(gameCode[:4]); ok {
			return year
		}
	}
	if !tipoffUTC.IsZero() {
		return tipoffUTC.UTC().Year()
	}
	return 1970
}

func parseYear(s string) (int, bool) {
	year := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		year = year*10 + int(r-'0')
	}
	return year, true
}
