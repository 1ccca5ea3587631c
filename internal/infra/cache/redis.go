// Package cache provides the Redis connection used by the pattern cache.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wealth-tracker/backend/config"
)

// NewRedisClient creates a Redis client and verifies connectivity. A failed
// ping is logged but not fatal: the pattern cache treats every Redis failure
// as a miss, so the API works without Redis, just slower.
func NewRedisClient(cfg *config.RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis unreachable, pattern caching disabled", "addr", cfg.Addr, "error", err)
	} else {
		slog.Info("Redis connection established", "addr", cfg.Addr)
	}

	return client
}
