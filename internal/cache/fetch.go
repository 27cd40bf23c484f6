package cache

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtside/internal/metrics"
)

// Fetch returns the cached value for key, or computes and stores it.
// Cache failures are logged and fall through to compute; they never fail
// the read.
func Fetch[T any](ctx context.Context, c Cache, m metrics.Metrics, key string, compute func(context.Context) (T, error)) (T, error) {
	gen, err := c.Generation(ctx)
	if err != nil {
		log.Warn("Cache generation unavailable", "error", err, "key", key)
		m.IncCacheMiss()
		return compute(ctx)
	}

	var cached T
	ok, err := c.Get(ctx, gen, key, &cached)
	if err != nil {
		log.Warn("Cache read failed", "error", err, "key", key)
	}
	if ok {
		m.IncCacheHit()
		return cached, nil
	}
	m.IncCacheMiss()

	value, err := compute(ctx)
	if err != nil {
		return value, err
	}
	if err := c.Set(ctx, gen, key, value); err != nil {
		log.Warn("Cache write failed", "error", err, "key", key)
	}
	return value, nil
}
