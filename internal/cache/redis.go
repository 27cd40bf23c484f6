package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	// DefaultTTL bounds how long an aggregate may be served without a write.
	DefaultTTL = 10 * time.Minute

	keyPrefix     = "courtside"
	generationKey = keyPrefix + ":generation"
)

// redisCache namespaces every key with a generation counter. Bumping the
// counter orphans all older entries, which then expire through their TTL.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to the Redis server at url and verifies the connection.
func NewRedis(ctx context.Context, url string, ttl time.Duration) (Cache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Info("Connected to Redis", "addr", opts.Addr, "ttl", ttl)
	return NewRedisWithClient(client, ttl), nil
}

// NewRedisWithClient wraps an existing client. Used for testing.
func NewRedisWithClient(client *redis.Client, ttl time.Duration) Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &redisCache{client: client, ttl: ttl}
}

// Generation reads the current generation. A missing counter is
// generation zero.
func (c *redisCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("failed to read cache generation: %w", err)
	}
	return gen, nil
}

func entryKey(gen int64, name string) string {
	return fmt.Sprintf("%s:%d:%s", keyPrefix, gen, name)
}

func (c *redisCache) Get(ctx context.Context, gen int64, name string, dest any) (bool, error) {
	k := entryKey(gen, name)
	data, err := c.client.Get(ctx, k).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", k, err)
	}
	if err := msgpack.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", k, err)
	}
	return true, nil
}

// Set stores value under gen. When gen is already stale the entry lands in
// a namespace no reader resolves and simply expires.
func (c *redisCache) Set(ctx context.Context, gen int64, name string, value any) error {
	k := entryKey(gen, name)
	data, err := msgpack.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", k, err)
	}
	return c.client.Set(ctx, k, data, c.ttl).Err()
}

func (c *redisCache) Invalidate(ctx context.Context) error {
	gen, err := c.client.Incr(ctx, generationKey).Result()
	if err != nil {
		return fmt.Errorf("failed to bump cache generation: %w", err)
	}
	log.Debug("Cache invalidated", "generation", gen)
	return nil
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
