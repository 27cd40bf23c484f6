package cache

import "context"

// Cache stores computed aggregates under a generation. Invalidate starts a
// new generation; entries written under an older one are never served.
//
// A reader resolves the generation once, before it reads the database, and
// passes it to both Get and Set. A result computed before an invalidation
// is then stored under the old generation and stays unreachable.
type Cache interface {
	Generation(ctx context.Context) (int64, error)
	Get(ctx context.Context, gen int64, key string, dest any) (bool, error)
	Set(ctx context.Context, gen int64, key string, value any) error
	Invalidate(ctx context.Context) error
	Close() error
}
