package database

import (
	"context"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesTables(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "")
	require.NoError(t, err, "InitDB should not return an error")
	defer teardown()

	for _, table := range []string{"players", "games", "stat_lines", "users", "counters"} {
		var name string
		err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "")
	require.NoError(t, err)
	defer teardown()

	version, err := Migrate(context.Background(), db, goose.DialectSQLite3)
	require.NoError(t, err)
	assert.Equal(t, int64(4), version)
}

func TestConstraints(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "")
	require.NoError(t, err)
	defer teardown()

	t.Run("games are unique on date, opponent and location", func(t *testing.T) {
		_, err := db.Exec(`INSERT INTO games (date, opponent, location) VALUES ('2024-01-05', 'Eagles', 'Home')`)
		require.NoError(t, err)
		_, err = db.Exec(`INSERT INTO games (date, opponent, location) VALUES ('2024-01-05', 'Eagles', 'Home')`)
		assert.True(t, IsUniqueViolation(err))

		_, err = db.Exec(`INSERT INTO games (date, opponent, location) VALUES ('2024-01-05', 'Eagles', 'Away')`)
		assert.NoError(t, err)
	})

	t.Run("null locations collide", func(t *testing.T) {
		_, err := db.Exec(`INSERT INTO games (date, opponent) VALUES ('2024-02-01', 'Hawks')`)
		require.NoError(t, err)
		_, err = db.Exec(`INSERT INTO games (date, opponent) VALUES ('2024-02-01', 'Hawks')`)
		assert.True(t, IsUniqueViolation(err))
	})

	t.Run("stat lines need a known player", func(t *testing.T) {
		_, err := db.Exec(`INSERT INTO stat_lines (player_id, game_id) VALUES (999, 1)`)
		assert.True(t, IsForeignKeyViolation(err))
	})

	t.Run("nil error is no violation", func(t *testing.T) {
		assert.False(t, IsUniqueViolation(nil))
		assert.False(t, IsForeignKeyViolation(nil))
	})
}
