package insights

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNarrativeSimulatedFallback(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")

	rep := testAnalyzer().Run(testPlayers(), nil, "simulated")
	text, err := Narrative(context.Background(), rep)
	require.NoError(t, err)

	assert.Contains(t, text, "simulated narrative")
	assert.Contains(t, text, "Patrick Mahomes")
	assert.Contains(t, text, "Analyzed 3 players")
}

func TestEntryNames(t *testing.T) {
	entries := []CategoryEntry{
		{Name: "A", Position: "QB", Team: "KC", Score: 150},
		{Name: "B", Position: "RB", Team: "SF", Score: 145},
	}
	s := entryNames(entries, 1)
	assert.Contains(t, s, "A (QB, KC, score 150.0)")
	assert.NotContains(t, s, "B (")

	assert.Equal(t, "none", entryNames(nil, 5))
}
