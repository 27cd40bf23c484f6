package stats_test

import (
	"testing"

	"github.com/mauv0809/courtside/internal/stats"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]any
		expected map[string]any
	}{
		{
			name:     "renames bare lowercase keys",
			input:    map[string]any{"fg": 5, "fga": 10, "pm": -3, "oreb": 2, "points": 12},
			expected: map[string]any{"FG": 5, "FGA": 10, "PM": -3, "OREB": 2, "points": 12},
		},
		{
			name:     "renames prefixed keys",
			input:    map[string]any{"total_fg": 30, "avg_fga3": 2.5, "total_points": 40},
			expected: map[string]any{"total_FG": 30, "avg_FGA3": 2.5, "total_points": 40},
		},
		{
			name:     "keeps existing canonical key",
			input:    map[string]any{"fg": 1, "FG": 7},
			expected: map[string]any{"fg": 1, "FG": 7},
		},
		{
			name:     "leaves unrelated keys alone",
			input:    map[string]any{"games_played": 3, "label": "Home"},
			expected: map[string]any{"games_played": 3, "label": "Home"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, stats.NormalizeKeys(tc.input))
		})
	}

	t.Run("is idempotent", func(t *testing.T) {
		once := stats.NormalizeKeys(map[string]any{"ft": 4, "total_fta": 8, "minutes": 20.5})
		assert.Equal(t, once, stats.NormalizeKeys(once))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, stats.NormalizeKeys(nil))
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		in := map[string]any{"fg3": 1}
		stats.NormalizeKeys(in)
		assert.Equal(t, map[string]any{"fg3": 1}, in)
	})
}

func TestLookup(t *testing.T) {
	for _, key := range []string{"points", "Points", "FG3", "fg3", "oreb", " pm "} {
		_, ok := stats.Lookup(key)
		assert.True(t, ok, key)
	}

	s, ok := stats.Lookup("fga3")
	assert.True(t, ok)
	assert.Equal(t, stats.StatFGA3, s)
	assert.Equal(t, "FGA3", s.Key())

	s, ok = stats.Lookup("avg_oreb")
	assert.True(t, ok)
	assert.Equal(t, stats.StatOREB, s)

	_, ok = stats.Lookup("dunks")
	assert.False(t, ok)
}

func TestTracked(t *testing.T) {
	withOREB := stats.Tracked(true)
	assert.Len(t, withOREB, 16)
	assert.Contains(t, withOREB, stats.StatOREB)

	withoutOREB := stats.Tracked(false)
	assert.Len(t, withoutOREB, 15)
	assert.NotContains(t, withoutOREB, stats.StatOREB)
	assert.Equal(t, stats.StatMinutes, withoutOREB[0])
	assert.Equal(t, stats.StatPM, withoutOREB[len(withoutOREB)-1])
}
