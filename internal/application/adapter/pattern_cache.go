package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/wealth-tracker/backend/internal/domain/valueobject"
)

// PatternCache caches detection output per user. Detection is a full scan of
// the ledger, so callers consult the cache before recomputing. Implementations
// must treat every failure as a miss; a cache outage never surfaces to users.
type PatternCache interface {
	// Get returns the cached patterns for a user, with ok=false on a miss.
	Get(ctx context.Context, userID uuid.UUID) (patterns []valueobject.Pattern, ok bool)

	// Set stores the patterns for a user.
	Set(ctx context.Context, userID uuid.UUID, patterns []valueobject.Pattern)

	// Invalidate drops the cached patterns for a user.
	Invalidate(ctx context.Context, userID uuid.UUID)
}
