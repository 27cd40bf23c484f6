package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/mauv0809/courtside/internal/metrics"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Name   string              `msgpack:"name"`
	Values map[string]*float64 `msgpack:"values"`
}

func setupRedis(t *testing.T) (Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewRedisWithClient(client, time.Minute)
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	c, mr := setupRedis(t)

	t.Run("miss then hit", func(t *testing.T) {
		gen, err := c.Generation(ctx)
		require.NoError(t, err)
		assert.Zero(t, gen)

		var got entry
		ok, err := c.Get(ctx, gen, "team:totals", &got)
		require.NoError(t, err)
		assert.False(t, ok)

		pts := 30.0
		require.NoError(t, c.Set(ctx, gen, "team:totals", entry{Name: "team", Values: map[string]*float64{"points": &pts, "PM": nil}}))

		ok, err = c.Get(ctx, gen, "team:totals", &got)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "team", got.Name)
		require.NotNil(t, got.Values["points"])
		assert.Equal(t, 30.0, *got.Values["points"])
		assert.Contains(t, got.Values, "PM")
		assert.Nil(t, got.Values["PM"])
	})

	t.Run("entries carry a ttl", func(t *testing.T) {
		assert.Equal(t, time.Minute, mr.TTL("courtside:0:team:totals"))
	})

	t.Run("invalidate hides older entries", func(t *testing.T) {
		require.NoError(t, c.Invalidate(ctx))
		gen, err := c.Generation(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), gen)

		var got entry
		ok, err := c.Get(ctx, gen, "team:totals", &got)
		require.NoError(t, err)
		assert.False(t, ok)

		stored, err := mr.Get("courtside:generation")
		require.NoError(t, err)
		assert.Equal(t, "1", stored)
	})

	t.Run("connection failure", func(t *testing.T) {
		mr.SetError("ERR server unavailable")
		defer mr.SetError("")
		_, err := c.Generation(ctx)
		assert.Error(t, err)
		var got entry
		_, err = c.Get(ctx, 1, "team:totals", &got)
		assert.Error(t, err)
	})
}

func TestNewRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	c, err := NewRedis(context.Background(), "redis://"+mr.Addr()+"/0", 0)
	require.NoError(t, err)
	require.NoError(t, c.Close())

	_, err = NewRedis(context.Background(), "not a url", 0)
	assert.Error(t, err)
}

func TestFetch(t *testing.T) {
	ctx := context.Background()
	c := NewMock()
	m := metrics.NewMock()

	calls := 0
	compute := func(context.Context) (int, error) {
		calls++
		return 42, nil
	}

	v, err := Fetch(ctx, c, m, "answer", compute)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = Fetch(ctx, c, m, "answer", compute)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, m.CacheHits())
	assert.Equal(t, 1, m.CacheMisses())

	t.Run("compute errors are not cached", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := Fetch(ctx, c, m, "broken", func(context.Context) (int, error) { return 0, boom })
		assert.ErrorIs(t, err, boom)
		var got int
		ok, _ := c.Get(ctx, 0, "broken", &got)
		assert.False(t, ok)
	})

	t.Run("cache failures fall through", func(t *testing.T) {
		failing := NewMock()
		failing.GetFunc = func(string) (bool, error) { return false, errors.New("down") }
		failing.SetFunc = func(string) error { return errors.New("down") }
		v, err := Fetch(ctx, failing, m, "answer", compute)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})
}

func TestFetchDuringInvalidation(t *testing.T) {
	ctx := context.Background()
	redisCache, _ := setupRedis(t)

	caches := map[string]Cache{
		"redis": redisCache,
		"mock":  NewMock(),
	}
	for name, c := range caches {
		t.Run(name, func(t *testing.T) {
			m := metrics.NewMock()
			points := 10

			// A write commits and invalidates while the first read is
			// still computing from the old data.
			v, err := Fetch(ctx, c, m, "team:totals", func(ctx context.Context) (int, error) {
				seen := points
				points = 30
				require.NoError(t, c.Invalidate(ctx))
				return seen, nil
			})
			require.NoError(t, err)
			assert.Equal(t, 10, v)

			v, err = Fetch(ctx, c, m, "team:totals", func(context.Context) (int, error) {
				return points, nil
			})
			require.NoError(t, err)
			assert.Equal(t, 30, v, "read after an acknowledged write must not see the older result")
			assert.Equal(t, 2, m.CacheMisses())

			v, err = Fetch(ctx, c, m, "team:totals", func(context.Context) (int, error) {
				return -1, nil
			})
			require.NoError(t, err)
			assert.Equal(t, 30, v)
			assert.Equal(t, 1, m.CacheHits())
		})
	}
}

func TestFetchWithoutGeneration(t *testing.T) {
	ctx := context.Background()
	c, mr := setupRedis(t)
	m := metrics.NewMock()

	mr.SetError("ERR server unavailable")
	defer mr.SetError("")

	v, err := Fetch(ctx, c, m, "team:totals", func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, m.CacheMisses())
}
