package boxscore_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/mauv0809/courtside/internal/boxscore"
	"github.com/mauv0809/courtside/internal/database"
	"github.com/mauv0809/courtside/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store   boxscore.Store
	db      *sql.DB
	players []int64
	games   []int64
}

// setupTestDB creates an in-memory database with two players and three
// games (Home vs Eagles, Away at Hawks, and a game with no location).
func setupTestDB(t *testing.T) (fixture, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)

	f := fixture{store: boxscore.New(db), db: db}
	for _, name := range []string{"Ada", "Ben"} {
		res, err := db.Exec("INSERT INTO players (name, jersey_number) VALUES (?, 10)", name)
		require.NoError(t, err)
		id, _ := res.LastInsertId()
		f.players = append(f.players, id)
	}
	for _, g := range []struct {
		date, opponent string
		location       any
	}{
		{"2024-01-05", "Eagles", "Home"},
		{"2024-01-12", "Hawks", "Away"},
		{"2024-01-19", "Owls", nil},
	} {
		res, err := db.Exec("INSERT INTO games (date, opponent, location) VALUES (?, ?, ?)", g.date, g.opponent, g.location)
		require.NoError(t, err)
		id, _ := res.LastInsertId()
		f.games = append(f.games, id)
	}
	return f, teardown
}

func TestCreateAndGet(t *testing.T) {
	f, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	created, err := f.store.Create(ctx, stats.StatLine{
		PlayerID: f.players[0], GameID: f.games[0],
		Minutes: 25.12345, Points: 18, FG: 7, FGA: 12, PM: 5, Starter: true,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, stats.Minutes(25.123), created.Minutes)
	assert.True(t, created.Starter)

	got, err := f.store.Get(ctx, f.players[0], f.games[0])
	require.NoError(t, err)
	assert.Equal(t, created, got)

	t.Run("duplicate player and game is rejected", func(t *testing.T) {
		_, err := f.store.Create(ctx, stats.StatLine{PlayerID: f.players[0], GameID: f.games[0], Points: 1})
		assert.ErrorIs(t, err, boxscore.ErrDuplicateStatLine)

		lines, err := f.store.StatLines(ctx, stats.Filter{})
		require.NoError(t, err)
		assert.Len(t, lines, 1)
	})

	t.Run("unknown player is rejected", func(t *testing.T) {
		_, err := f.store.Create(ctx, stats.StatLine{PlayerID: 999, GameID: f.games[0]})
		assert.ErrorIs(t, err, boxscore.ErrUnknownReference)
	})

	t.Run("missing line", func(t *testing.T) {
		_, err := f.store.Get(ctx, f.players[1], f.games[2])
		assert.ErrorIs(t, err, boxscore.ErrStatLineNotFound)
	})
}

func TestUpsert(t *testing.T) {
	f, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	first, err := f.store.Upsert(ctx, stats.StatLine{PlayerID: f.players[1], GameID: f.games[1], Points: 4, Rebounds: 3})
	require.NoError(t, err)

	second, err := f.store.Upsert(ctx, stats.StatLine{PlayerID: f.players[1], GameID: f.games[1], Points: 9})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 9, second.Points)
	assert.Equal(t, 0, second.Rebounds)

	lines, err := f.store.StatLines(ctx, stats.Filter{})
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestPatch(t *testing.T) {
	f, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	_, err := f.store.Create(ctx, stats.StatLine{PlayerID: f.players[0], GameID: f.games[0], Points: 10, Assists: 2})
	require.NoError(t, err)

	pts := 15
	patched, err := f.store.Patch(ctx, f.players[0], f.games[0], stats.Patch{Points: &pts})
	require.NoError(t, err)
	assert.Equal(t, 15, patched.Points)
	assert.Equal(t, 2, patched.Assists)

	unchanged, err := f.store.Patch(ctx, f.players[0], f.games[0], stats.Patch{})
	require.NoError(t, err)
	assert.Equal(t, patched, unchanged)

	_, err = f.store.Patch(ctx, f.players[1], f.games[0], stats.Patch{Points: &pts})
	assert.ErrorIs(t, err, boxscore.ErrStatLineNotFound)
}

func TestDelete(t *testing.T) {
	f, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	_, err := f.store.Create(ctx, stats.StatLine{PlayerID: f.players[0], GameID: f.games[0]})
	require.NoError(t, err)

	require.NoError(t, f.store.Delete(ctx, f.players[0], f.games[0]))
	assert.ErrorIs(t, f.store.Delete(ctx, f.players[0], f.games[0]), boxscore.ErrStatLineNotFound)
}

func TestReadViews(t *testing.T) {
	f, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	for _, l := range []stats.StatLine{
		{PlayerID: f.players[0], GameID: f.games[0], Points: 10},
		{PlayerID: f.players[0], GameID: f.games[1], Points: 20},
		{PlayerID: f.players[0], GameID: f.games[2], Points: 5},
		{PlayerID: f.players[1], GameID: f.games[0], Points: 7, Starter: true},
	} {
		_, err := f.store.Create(ctx, l)
		require.NoError(t, err)
	}

	t.Run("box score lists starters first", func(t *testing.T) {
		lines, err := f.store.ForGame(ctx, f.games[0])
		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.Equal(t, f.players[1], lines[0].PlayerID)
	})

	t.Run("game log is ordered by date with game context", func(t *testing.T) {
		log, err := f.store.GameLog(ctx, f.players[0])
		require.NoError(t, err)
		require.Len(t, log, 3)
		assert.Equal(t, "Eagles", log[0].Opponent)
		assert.Equal(t, "Home", *log[0].Location)
		assert.Equal(t, 20, log[1].Points)
		assert.Nil(t, log[2].Location)
	})

	t.Run("stat lines filter by player", func(t *testing.T) {
		id := f.players[1]
		lines, err := f.store.StatLines(ctx, stats.Filter{PlayerID: &id})
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 7, lines[0].Points)
	})

	t.Run("grouped lines carry the label", func(t *testing.T) {
		grouped, err := f.store.GroupedStatLines(ctx, stats.Filter{}, stats.GroupLocation)
		require.NoError(t, err)
		require.Len(t, grouped, 4)

		labels := map[string]int{}
		nulls := 0
		for _, g := range grouped {
			if g.Label == nil {
				nulls++
				continue
			}
			labels[*g.Label]++
		}
		assert.Equal(t, map[string]int{"Home": 2, "Away": 1}, labels)
		assert.Equal(t, 1, nulls)

		byOpponent, err := f.store.GroupedStatLines(ctx, stats.Filter{}, stats.GroupOpponent)
		require.NoError(t, err)
		assert.Len(t, byOpponent, 4)

		_, err = f.store.GroupedStatLines(ctx, stats.Filter{}, stats.GroupBy("season"))
		assert.ErrorIs(t, err, boxscore.ErrUnsupportedGroup)
	})

	t.Run("players include those without lines", func(t *testing.T) {
		_, err := f.db.Exec("INSERT INTO players (name, position) VALUES ('Cleo', 'C')")
		require.NoError(t, err)

		players, err := f.store.Players(ctx)
		require.NoError(t, err)
		require.Len(t, players, 3)
		assert.Equal(t, "Cleo", players[2].Name)
		assert.Nil(t, players[2].JerseyNumber)
		require.NotNil(t, players[2].Position)
		assert.Equal(t, "C", *players[2].Position)
		assert.Nil(t, players[0].Position)
		assert.Equal(t, 10, *players[0].JerseyNumber)
	})
}
