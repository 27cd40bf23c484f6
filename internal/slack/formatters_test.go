package slack

import (
	"encoding/json"
	"testing"

	"github.com/mauv0809/courtside/internal/analytics"
	"github.com/mauv0809/courtside/internal/stats"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, msg slack.Message) string {
	t.Helper()
	b, err := json.Marshal(msg)
	require.NoError(t, err)
	return string(b)
}

func ptr(v float64) *float64 { return &v }

func TestFormatLeaderboard(t *testing.T) {
	c := &SlackClient{}
	jersey := 23
	msg := c.FormatLeaderboard(stats.StatPM, []analytics.LeaderEntry{
		{PlayerID: 1, Name: "Ada", JerseyNumber: &jersey, Value: 12},
		{PlayerID: 2, Name: "Bo", Value: -3},
	})
	require.Len(t, msg.Blocks.BlockSet, 2)

	out := render(t, msg)
	assert.Contains(t, out, "PM Leaders")
	assert.Contains(t, out, "1. 🥇 Ada #23: *+12*")
	assert.Contains(t, out, "2. 🥈 Bo: *-3*")

	empty := c.FormatLeaderboard(stats.StatPoints, nil)
	assert.Contains(t, render(t, empty), "No players on the roster yet.")
}

func TestFormatLeaderboards(t *testing.T) {
	c := &SlackClient{}
	msg := c.FormatLeaderboards(analytics.Leaderboards{
		"points":   {{PlayerID: 1, Name: "Ada", Value: 40}},
		"rebounds": {},
		"FG":       {{PlayerID: 1, Name: "Ada", Value: 15}},
	})
	// header + (divider, section) for points and rebounds
	require.Len(t, msg.Blocks.BlockSet, 5)
	out := render(t, msg)
	assert.Contains(t, out, "1. Ada (40)")
	assert.Contains(t, out, "No data yet.")
	assert.NotContains(t, out, "*FG*")
}

func TestFormatPlayerStats(t *testing.T) {
	c := &SlackClient{}
	totals := analytics.Record{Kind: analytics.KindTotals, GamesPlayed: 2, Values: map[string]*float64{
		"points": ptr(30), "minutes": ptr(61.5),
	}}
	averages := analytics.Record{Kind: analytics.KindAverages, GamesPlayed: 2, Values: map[string]*float64{
		"points": ptr(15), "minutes": ptr(30.75),
	}}

	out := render(t, c.FormatPlayerStats("Ada", totals, averages))
	assert.Contains(t, out, "Stats for Ada")
	assert.Contains(t, out, "15 per game (30 total)")
	assert.Contains(t, out, "30:45 per game (61:30 total)")
	assert.Contains(t, out, "2 games played")

	none := c.FormatPlayerStats("Bo", analytics.Record{}, analytics.Record{})
	assert.Contains(t, render(t, none), "No games played yet.")
}

func TestFormatPlayerNotFound(t *testing.T) {
	c := &SlackClient{}
	assert.Contains(t, render(t, c.FormatPlayerNotFound("Zed")), "couldn't find a player matching *Zed*")
}
