package roster

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// SplitDisplayName splits "Jayson Tatum" into first and last name parts.
// Single-word names keep the whole string as the first name.
func SplitDisplayName(display string) (first, last string) {
	parts := strings.Fields(strings.TrimSpace(display))
	if len(parts) == 0 {
		return "", ""
	}
	first = parts[0]
	if len(parts) > 1 {
		last = strings.Join(parts[1:], " ")
	}
	return first, last
}

// ParseHeightCm converts the stats API "feet-inches" height ("6-8") to
// centimeters. Returns nil when the value cannot be parsed.
func ParseHeightCm(raw string) *int {
	feetStr, inchesStr, found := strings.Cut(strings.TrimSpace(raw), "-")
	if !found {
		return nil
	}
	feet, err := strconv.Atoi(feetStr)
	if err != nil {
		return nil
	}
	inches, err := strconv.Atoi(inchesStr)
	if err != nil {
		return nil
	}
	cm := int(math.Round(float64(feet*12+inches) * 2.54))
	return &cm
}

// ParseWeightKg converts the stats API weight in pounds ("210") to
// kilograms. Returns nil when the value cannot be parsed.
func ParseWeightKg(raw string) *int {
	lbs, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || lbs <= 0 {
		return nil
	}
	kg := int(math.Round(float64(lbs) * 0.453592))
	return &kg
}

// ParseBirthDate normalises the stats API birth date formats
// ("1998-03-03T00:00:00", "MAR 03, 1998") to a date. Returns nil when the
// value cannot be parsed.
func ParseBirthDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if len(s) >= 10 && s[4] == '-' && s[7] == '-' {
		if d, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return &d
		}
	}
	// The stats API sometimes upper-cases the month ("MAR 03, 1998").
	if month, rest, found := strings.Cut(s, " "); found && len(month) >= 3 {
		s = strings.ToUpper(month[:1]) + strings.ToLower(month[1:]) + " " + rest
	}
	for _, layout := range []string{"Jan 2, 2006", "January 2, 2006"} {
		if d, err := time.Parse(layout, s); err == nil {
			return &d
		}
	}
	return nil
}
