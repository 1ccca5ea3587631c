package adapters

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/wealth-tracker/backend/internal/application/adapter"
	"github.com/wealth-tracker/backend/internal/domain/valueobject"
)

const patternCacheKeyPrefix = "patterns:"

// redisPatternCache implements adapter.PatternCache on Redis. Every failure is
// treated as a cache miss; detection recomputes and the request proceeds.
type redisPatternCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPatternCache creates a new Redis-backed pattern cache instance.
func NewRedisPatternCache(client *redis.Client, ttl time.Duration) adapter.PatternCache {
	return &redisPatternCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached patterns for a user, with ok=false on a miss.
func (c *redisPatternCache) Get(ctx context.Context, userID uuid.UUID) ([]valueobject.Pattern, bool) {
	payload, err := c.client.Get(ctx, patternCacheKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Debug("Pattern cache read failed", "userID", userID, "error", err)
		}
		return nil, false
	}

	var patterns []valueobject.Pattern
	if err := json.Unmarshal(payload, &patterns); err != nil {
		slog.Debug("Pattern cache entry corrupt, discarding", "userID", userID, "error", err)
		c.client.Del(ctx, patternCacheKey(userID))
		return nil, false
	}

	return patterns, true
}

// Set stores the patterns for a user.
func (c *redisPatternCache) Set(ctx context.Context, userID uuid.UUID, patterns []valueobject.Pattern) {
	payload, err := json.Marshal(patterns)
	if err != nil {
		slog.Debug("Pattern cache marshal failed", "userID", userID, "error", err)
		return
	}

	if err := c.client.Set(ctx, patternCacheKey(userID), payload, c.ttl).Err(); err != nil {
		slog.Debug("Pattern cache write failed", "userID", userID, "error", err)
	}
}

// Invalidate drops the cached patterns for a user.
func (c *redisPatternCache) Invalidate(ctx context.Context, userID uuid.UUID) {
	if err := c.client.Del(ctx, patternCacheKey(userID)).Err(); err != nil {
		slog.Debug("Pattern cache invalidation failed", "userID", userID, "error", err)
	}
}

func patternCacheKey(userID uuid.UUID) string {
	return patternCacheKeyPrefix + userID.String()
}
