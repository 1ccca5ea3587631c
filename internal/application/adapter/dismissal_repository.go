package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wealth-tracker/backend/internal/domain/entity"
)

// DismissalRepository defines the interface for prediction dismissal persistence.
type DismissalRepository interface {
	// Upsert inserts a dismissal or, when the user already dismissed the same
	// prediction key, refreshes its dismissed-at and expiry timestamps.
	Upsert(ctx context.Context, dismissal *entity.PredictionDismissal) error

	// FindActiveKeys returns the prediction keys whose dismissals still apply
	// at the reference date (expiry missing or not yet passed).
	FindActiveKeys(ctx context.Context, userID uuid.UUID, reference time.Time) ([]string, error)
}
