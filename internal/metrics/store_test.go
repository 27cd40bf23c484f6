package metrics

import (
	"os"
	"testing"

	"github.com/mauv0809/courtside/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary SQLite database file for testing.
func setupTestDB(t *testing.T) (CounterStore, func()) {
	t.Helper()

	tmpfile, err := os.CreateTemp("", "testdb_counters_*.db")
	require.NoError(t, err)
	tmpfile.Close()

	db, dbTeardown, err := database.InitDB(tmpfile.Name(), "", "")
	require.NoError(t, err)

	teardown := func() {
		dbTeardown()
		os.Remove(tmpfile.Name())
	}

	return NewCounterStore(db), teardown
}

func TestIncrementAndGetAll(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	counters, err := store.GetAll()
	require.NoError(t, err)
	assert.Empty(t, counters)

	store.Increment("statline.written")
	counters, err = store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"statline.written": 1}, counters)

	store.Increment("statline.written")
	store.Increment("game.deleted")
	counters, err = store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"statline.written": 2,
		"game.deleted":     1,
	}, counters)
}
