package analytics

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mauv0809/courtside/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordJSON(t *testing.T) {
	points, fg := 12.5, 4.0
	label := "Home"
	r := Record{
		Label:       &label,
		Kind:        KindAverages,
		GamesPlayed: 2,
		Values:      map[string]*float64{"points": &points, "FG": &fg, "PM": nil},
	}

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"label":"Home","games_played":2,"avg_points":12.5,"avg_FG":4,"avg_PM":null}`, string(b))

	t.Run("lowercase keys are accepted", func(t *testing.T) {
		var got Record
		require.NoError(t, json.Unmarshal([]byte(`{"games_played":3,"total_fg":7,"total_points":21,"total_pm":null}`), &got))
		assert.Equal(t, KindTotals, got.Kind)
		assert.Equal(t, 3, got.GamesPlayed)
		assert.Nil(t, got.Label)
		require.NotNil(t, got.Value(stats.StatFG))
		assert.Equal(t, 7.0, *got.Value(stats.StatFG))
		assert.Contains(t, got.Values, "PM")
		assert.Nil(t, got.Value(stats.StatPM))
	})
}

func TestScopeKey(t *testing.T) {
	assert.Equal(t, "team", Team().Key())
	assert.Equal(t, "player:42", Player(42).Key())
	assert.True(t, Team().IsTeam())
	assert.False(t, Player(1).IsTeam())
}

func TestParseKindAndGroup(t *testing.T) {
	k, err := ParseKind("Averages")
	require.NoError(t, err)
	assert.Equal(t, KindAverages, k)

	_, err = ParseKind("sum")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	g, err := ParseGroup("opponents")
	require.NoError(t, err)
	assert.Equal(t, stats.GroupOpponent, g)

	_, err = ParseGroup("month")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestLeaderboardsJSON(t *testing.T) {
	boards := Leaderboards{
		"FG":      {{PlayerID: 2, Name: "Bo", Value: 8}},
		"assists": nil,
		"points":  {{PlayerID: 1, Name: "Ada", Value: 20}},
		"minutes": {{PlayerID: 1, Name: "Ada", Value: 31.5}},
	}

	b, err := json.Marshal(boards)
	require.NoError(t, err)
	out := string(b)

	order := []string{`"minutes"`, `"points"`, `"assists"`, `"FG"`}
	last := -1
	for _, key := range order {
		i := strings.Index(out, key)
		require.GreaterOrEqual(t, i, 0, key)
		assert.Greater(t, i, last, "%s out of canonical order in %s", key, out)
		last = i
	}
	assert.Contains(t, out, `"assists":[]`)

	var decoded Leaderboards
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, 20.0, decoded["points"][0].Value)
}
