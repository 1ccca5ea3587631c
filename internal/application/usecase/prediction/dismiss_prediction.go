package prediction

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wealth-tracker/backend/internal/application/adapter"
	"github.com/wealth-tracker/backend/internal/domain/entity"
	domainerror "github.com/wealth-tracker/backend/internal/domain/error"
	"github.com/wealth-tracker/backend/internal/domain/valueobject"
)

// DismissPredictionInput represents the input for dismissing a prediction.
type DismissPredictionInput struct {
	UserID        uuid.UUID
	PredictionKey string
	Recurrence    string // Drives the expiry horizon; unknown values fall back to monthly
}

// DismissPredictionOutput represents the output of dismissing a prediction.
type DismissPredictionOutput struct {
	PredictionKey string
	ExpiresAt     time.Time
}

// DismissPredictionUseCase records that a user silenced a predicted payment.
type DismissPredictionUseCase struct {
	dismissalRepo adapter.DismissalRepository
	patternCache  adapter.PatternCache
	clock         adapter.Clock
}

// NewDismissPredictionUseCase creates a new DismissPredictionUseCase instance.
func NewDismissPredictionUseCase(
	dismissalRepo adapter.DismissalRepository,
	patternCache adapter.PatternCache,
	clock adapter.Clock,
) *DismissPredictionUseCase {
	return &DismissPredictionUseCase{
		dismissalRepo: dismissalRepo,
		patternCache:  patternCache,
		clock:         clock,
	}
}

// Execute persists the dismissal with the cadence-specific expiry horizon.
func (uc *DismissPredictionUseCase) Execute(ctx context.Context, input DismissPredictionInput) (*DismissPredictionOutput, error) {
	key := strings.TrimSpace(input.PredictionKey)
	if key == "" {
		return nil, domainerror.NewPredictionError(
			domainerror.ErrCodeMissingPredictionKey,
			"prediction_key is required",
			domainerror.ErrMissingPredictionKey,
		)
	}

	ttl := valueobject.DismissalTTL(valueobject.RecurrenceType(input.Recurrence))
	expiresAt := uc.clock.Now().Add(ttl)

	dismissal := entity.NewPredictionDismissal(input.UserID, key, &expiresAt)
	if err := uc.dismissalRepo.Upsert(ctx, dismissal); err != nil {
		return nil, domainerror.NewPredictionError(
			domainerror.ErrCodeDismissalPersistence,
			"failed to store prediction dismissal",
			err,
		)
	}

	uc.patternCache.Invalidate(ctx, input.UserID)

	return &DismissPredictionOutput{
		PredictionKey: key,
		ExpiresAt:     expiresAt,
	}, nil
}
