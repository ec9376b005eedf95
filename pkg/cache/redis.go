package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache keeps entries in Redis under prefix with a fixed TTL. Backend
// failures degrade to cache misses.
type RedisCache struct {
	client *redis.Client
	logger *slog.Logger
	prefix string
	ttl    time.Duration
}

func NewRedisCache(logger *slog.Logger, client *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		logger: logger.With(slog.String("cache", "redis")),
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *RedisCache) key(k string) string {
	return c.prefix + k
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		observeLookup(backendRedis, false)
		return nil, false
	}
	if err != nil {
		c.logger.WarnContext(ctx, "failed to get key", slog.String("key", key), slog.Any("error", err))
		observeLookup(backendRedis, false)
		return nil, false
	}
	observeLookup(backendRedis, true)
	return data, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte) {
	if err := c.client.Set(ctx, c.key(key), value, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "failed to set key", slog.String("key", key), slog.Any("error", err))
	}
}

func (c *RedisCache) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = c.key(k)
	}
	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		c.logger.ErrorContext(ctx, "failed to delete keys", slog.Any("keys", keys), slog.Any("error", err))
	}
}

// Start checks the connection.
func (c *RedisCache) Start(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
