package analytics

import (
	"context"
	"testing"

	"github.com/mauv0809/courtside/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(entries []LeaderEntry) []int64 {
	out := make([]int64, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.PlayerID)
	}
	return out
}

func leadersFixture() *fakeRepo {
	repo := newFakeRepo()
	repo.addPlayer(1, "Ada")
	repo.addPlayer(2, "Bo")
	repo.addPlayer(3, "Cy")
	repo.addPlayer(4, "Di")
	repo.addLine(stats.StatLine{PlayerID: 1, GameID: 1, Minutes: 10.1234, Points: 12, Assists: 1, PM: 7})
	repo.addLine(stats.StatLine{PlayerID: 1, GameID: 2, Points: 8, PM: -2})
	repo.addLine(stats.StatLine{PlayerID: 2, GameID: 1, Points: 20, Assists: 5, PM: -3})
	repo.addLine(stats.StatLine{PlayerID: 3, GameID: 2, Points: 25, Assists: 5, PM: 1})
	return repo
}

func TestLeaders(t *testing.T) {
	ctx := context.Background()
	engine := New(leadersFixture())

	t.Run("ranks every tracked metric", func(t *testing.T) {
		boards, err := engine.Leaders(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, boards, len(stats.All()))

		points := boards["points"]
		assert.Equal(t, []int64{3, 1, 2, 4}, ids(points))
		assert.Equal(t, 25.0, points[0].Value)
		assert.Equal(t, "Cy", points[0].Name)
		assert.Equal(t, 0.0, points[3].Value, "players without lines rank with zero")
	})

	t.Run("ties go to the lower id", func(t *testing.T) {
		boards, err := engine.Leaders(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 3, 1, 4}, ids(boards["assists"]))
	})

	t.Run("plus-minus is the raw sum", func(t *testing.T) {
		boards, err := engine.Leaders(ctx, 10)
		require.NoError(t, err)
		pm := boards["PM"]
		assert.Equal(t, []int64{1, 3, 4, 2}, ids(pm))
		assert.Equal(t, 5.0, pm[0].Value)
		assert.Equal(t, -3.0, pm[3].Value)
	})

	t.Run("minutes rounded to three decimals", func(t *testing.T) {
		boards, err := engine.Leaders(ctx, 1)
		require.NoError(t, err)
		require.Len(t, boards["minutes"], 1)
		assert.Equal(t, 10.123, boards["minutes"][0].Value)
	})

	t.Run("limit truncates", func(t *testing.T) {
		boards, err := engine.Leaders(ctx, 2)
		require.NoError(t, err)
		for key, entries := range boards {
			assert.Len(t, entries, 2, key)
		}
	})

	t.Run("limit below one", func(t *testing.T) {
		for _, limit := range []int{0, -1} {
			_, err := engine.Leaders(ctx, limit)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		}
	})

	t.Run("no players", func(t *testing.T) {
		boards, err := New(newFakeRepo()).Leaders(ctx, 5)
		require.NoError(t, err)
		assert.Len(t, boards, len(stats.All()))
		for _, entries := range boards {
			assert.Empty(t, entries)
		}
	})

	t.Run("duplicate line", func(t *testing.T) {
		repo := leadersFixture()
		repo.addLine(stats.StatLine{PlayerID: 3, GameID: 2, Points: 1})
		_, err := New(repo).Leaders(ctx, 5)
		assert.ErrorIs(t, err, ErrDataInconsistency)
	})
}

func TestLeader(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name    string
		metric  string
		opts    []Option
		want    []int64
		wantErr error
	}{
		{name: "canonical key", metric: "points", want: []int64{3, 1}},
		{name: "lowercase variant", metric: "pm", want: []int64{1, 3}},
		{name: "prefixed variant", metric: "total_fga", want: []int64{1, 2}},
		{name: "unknown metric", metric: "dunks", wantErr: ErrInvalidArgument},
		{name: "untracked metric", metric: "OREB", opts: []Option{WithOREB(false)}, wantErr: ErrInvalidArgument},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entries, err := New(leadersFixture(), tc.opts...).Leader(ctx, tc.metric, 2)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids(entries))
		})
	}
}

func TestPlayerSummaries(t *testing.T) {
	ctx := context.Background()
	summaries, err := New(leadersFixture()).PlayerSummaries(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 4)

	order := make([]int64, 0, len(summaries))
	for _, s := range summaries {
		order = append(order, s.PlayerID)
	}
	// Ada and Bo tie on total points; Bo has the higher average.
	assert.Equal(t, []int64{3, 2, 1, 4}, order)

	assert.Equal(t, 25.0, value(t, summaries[0].Averages, stats.StatPoints))
	assert.Equal(t, 10.0, value(t, summaries[2].Averages, stats.StatPoints))
	assert.Equal(t, 0, summaries[3].Totals.GamesPlayed)

	t.Run("carries the roster position", func(t *testing.T) {
		repo := newFakeRepo()
		guard := "G"
		repo.players = append(repo.players, stats.PlayerRef{ID: 9, Name: "Eve", Position: &guard})
		summaries, err := New(repo).PlayerSummaries(ctx)
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		require.NotNil(t, summaries[0].Position)
		assert.Equal(t, "G", *summaries[0].Position)
	})
}
