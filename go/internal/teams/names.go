package teams

import (
	"strings"
)

// NormalizeESPNName normalises ESPN team labels to match stored values.
func NormalizeESPNName(name string) string {
	norm := strings.TrimSpace(name)
	norm = strings.ReplaceAll(norm, "LA Clippers", "Los Angeles Clippers")
	norm = strings.ReplaceAll(norm, "LA Lakers", "Los Angeles Lakers")
	norm = strings.ReplaceAll(norm, "Phoenix Suns Suns", "Phoenix Suns")
	return norm
}

// NameIndex resolves team labels as written by external sources to the
// internal teams.id key. Keys are normalised and lower-cased.
type NameIndex struct {
	byName map[string]int
}

// Resolve returns the team ID for a source label, or false when no team
// matches.
func (idx *NameIndex) Resolve(label string) (int, bool) {
	id, ok := idx.byName[strings.ToLower(NormalizeESPNName(label))]
	return id, ok
}

func newNameIndex(teams []teamNames) *NameIndex {
	idx := &NameIndex{byName: make(map[string]int)}
	for _, t := range teams {
		for _, key := range []string{t.Name, t.ESPNName, t.Tricode} {
			if key == "" {
				continue
			}
			idx.byName[strings.ToLower(NormalizeESPNName(key))] = t.ID
		}
	}
	return idx
}

type teamNames struct {
	ID       int
	Name     string
	ESPNName string
	Tricode  string
}
