package analytics

import (
	"context"
	"testing"

	"github.com/mauv0809/courtside/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		if r.Label == nil {
			out = append(out, "")
			continue
		}
		out = append(out, *r.Label)
	}
	return out
}

func splitFixture() *fakeRepo {
	repo := newFakeRepo()
	repo.addPlayer(1, "Ada")
	repo.addPlayer(2, "Bo")
	repo.addGame(1, "Home", "Hawks")
	repo.addGame(2, "Home", "Eagles")
	repo.addGame(3, "", "Owls")
	repo.addGame(4, "Neutral", "Hawks")
	repo.addLine(stats.StatLine{PlayerID: 1, GameID: 1, Points: 10, PM: 5})
	repo.addLine(stats.StatLine{PlayerID: 2, GameID: 1, Points: 6, PM: 5})
	repo.addLine(stats.StatLine{PlayerID: 1, GameID: 2, Points: 20})
	repo.addLine(stats.StatLine{PlayerID: 1, GameID: 3, Points: 7})
	repo.addLine(stats.StatLine{PlayerID: 1, GameID: 4, Points: 4})
	return repo
}

func TestLocationSplit(t *testing.T) {
	ctx := context.Background()
	engine := New(splitFixture(), WithSentinel(SentinelNull))

	t.Run("home and away in fixed order", func(t *testing.T) {
		records, err := engine.Split(ctx, Team(), stats.GroupLocation, KindTotals)
		require.NoError(t, err)
		require.Equal(t, []string{"Home", "Away"}, labels(records))

		home := records[0]
		assert.Equal(t, 3, home.GamesPlayed)
		assert.Equal(t, 36.0, value(t, home, stats.StatPoints))
		assert.Equal(t, 2.0, value(t, home, stats.StatPM))
	})

	t.Run("empty side is zero even with null sentinel", func(t *testing.T) {
		records, err := engine.Split(ctx, Player(1), stats.GroupLocation, KindAverages)
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, 15.0, value(t, records[0], stats.StatPoints))
		away := records[1]
		assert.Equal(t, 0, away.GamesPlayed)
		for key, v := range away.Values {
			require.NotNil(t, v, key)
			assert.Zero(t, *v, key)
		}
	})

	t.Run("team averages per distinct game", func(t *testing.T) {
		records, err := engine.Split(ctx, Team(), stats.GroupLocation, KindAverages)
		require.NoError(t, err)
		assert.Equal(t, 2, records[0].GamesPlayed)
		assert.Equal(t, 18.0, value(t, records[0], stats.StatPoints))
	})
}

func TestOpponentSplit(t *testing.T) {
	ctx := context.Background()
	engine := New(splitFixture())

	records, err := engine.Split(ctx, Player(1), stats.GroupOpponent, KindTotals)
	require.NoError(t, err)
	require.Equal(t, []string{"Eagles", "Hawks", "Owls"}, labels(records))
	assert.Equal(t, 14.0, value(t, records[1], stats.StatPoints))
	assert.Equal(t, 2, records[1].GamesPlayed)

	records, err = engine.Split(ctx, Player(2), stats.GroupOpponent, KindTotals)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hawks"}, labels(records), "only opponents present in the data")

	records, err = New(newFakeRepo()).Split(ctx, Team(), stats.GroupOpponent, KindTotals)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSplits(t *testing.T) {
	ctx := context.Background()
	splits, err := New(splitFixture()).Splits(ctx, Team(), KindTotals)
	require.NoError(t, err)
	assert.Equal(t, []string{"Home", "Away"}, labels(splits.Location))
	assert.Equal(t, []string{"Eagles", "Hawks", "Owls"}, labels(splits.Opponents))
}

func TestSplitErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown grouping", func(t *testing.T) {
		_, err := New(splitFixture()).Split(ctx, Team(), stats.GroupBy("season"), KindTotals)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("duplicate within a group", func(t *testing.T) {
		repo := splitFixture()
		repo.addLine(stats.StatLine{PlayerID: 2, GameID: 1, Points: 1})
		_, err := New(repo).Split(ctx, Team(), stats.GroupLocation, KindTotals)
		assert.ErrorIs(t, err, ErrDataInconsistency)
	})
}
