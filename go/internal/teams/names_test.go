package teams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeESPNNameVariants(t *testing.T) {
	assert.Equal(t, "Los Angeles Clippers", NormalizeESPNName("LA Clippers"))
	assert.Equal(t, "Los Angeles Lakers", NormalizeESPNName("LA Lakers"))
	assert.Equal(t, "Phoenix Suns", NormalizeESPNName("Phoenix Suns Suns"))
	assert.Equal(t, "Boston Celtics", NormalizeESPNName("Boston Celtics"))
	assert.Equal(t, "Boston Celtics", NormalizeESPNName("  Boston Celtics "))
}

func TestNameIndexResolve(t *testing.T) {
	idx := newNameIndex([]teamNames{
		{ID: 1, Name: "Celtics", ESPNName: "Boston Celtics", Tricode: "BOS"},
		{ID: 2, Name: "Clippers", ESPNName: "Los Angeles Clippers", Tricode: "LAC"},
	})

	t.Run("resolves espn labels case-insensitively", func(t *testing.T) {
		id, ok := idx.Resolve("boston celtics")
		assert.True(t, ok)
		assert.Equal(t, 1, id)
	})

	t.Run("resolves tricodes", func(t *testing.T) {
		id, ok := idx.Resolve("BOS")
		assert.True(t, ok)
		assert.Equal(t, 1, id)
	})

	t.Run("applies label normalization", func(t *testing.T) {
		id, ok := idx.Resolve("LA Clippers")
		assert.True(t, ok)
		assert.Equal(t, 2, id)
	})

	t.Run("unknown labels miss", func(t *testing.T) {
		_, ok := idx.Resolve("Seattle SuperSonics")
		assert.False(t, ok)
	})
}
