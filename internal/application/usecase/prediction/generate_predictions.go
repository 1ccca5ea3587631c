package prediction

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wealth-tracker/backend/internal/application/adapter"
	"github.com/wealth-tracker/backend/internal/domain/valueobject"
)

// GeneratePredictionsInput represents the input for prediction generation.
type GeneratePredictionsInput struct {
	UserID      uuid.UUID
	TargetMonth string // YYYY-MM
}

// GeneratePredictionsOutput represents the output of prediction generation.
type GeneratePredictionsOutput struct {
	Predictions []valueobject.Prediction
}

// GeneratePredictionsUseCase produces the predicted transactions for a target
// month: detect patterns, drop dismissed and lapsed ones, then discard
// predictions the month's real transactions already fulfill.
type GeneratePredictionsUseCase struct {
	detectPatterns  *DetectPatternsUseCase
	transactionRepo adapter.TransactionRepository
	dismissalRepo   adapter.DismissalRepository
	clock           adapter.Clock
}

// NewGeneratePredictionsUseCase creates a new GeneratePredictionsUseCase instance.
func NewGeneratePredictionsUseCase(
	detectPatterns *DetectPatternsUseCase,
	transactionRepo adapter.TransactionRepository,
	dismissalRepo adapter.DismissalRepository,
	clock adapter.Clock,
) *GeneratePredictionsUseCase {
	return &GeneratePredictionsUseCase{
		detectPatterns:  detectPatterns,
		transactionRepo: transactionRepo,
		dismissalRepo:   dismissalRepo,
		clock:           clock,
	}
}

// Execute generates the predictions for the target month.
func (uc *GeneratePredictionsUseCase) Execute(ctx context.Context, input GeneratePredictionsInput) (*GeneratePredictionsOutput, error) {
	targetYear, targetMonth, err := parseTargetMonth(input.TargetMonth)
	if err != nil {
		return nil, err
	}

	detected, err := uc.detectPatterns.Execute(ctx, DetectPatternsInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(targetYear, targetMonth, 1, 0, 0, 0, 0, time.UTC)

	// A failed dismissal lookup degrades to "nothing dismissed": the user may
	// see a prediction they silenced, but the summary still renders.
	dismissed := make(map[string]struct{})
	keys, err := uc.dismissalRepo.FindActiveKeys(ctx, input.UserID, monthStart)
	if err != nil {
		slog.Debug("Failed to fetch prediction dismissals, proceeding without",
			"userID", input.UserID,
			"error", err,
		)
	} else {
		for _, key := range keys {
			dismissed[key] = struct{}{}
		}
	}

	predictions := generateForMonth(detected.Patterns, targetYear, targetMonth, dismissed, uc.clock.Now())

	// Duplicate suppression against the month's real transactions. A lookup
	// failure skips suppression rather than failing the request.
	monthEnd := time.Date(targetYear, targetMonth+1, 0, 0, 0, 0, 0, time.UTC)
	monthTransactions, err := uc.transactionRepo.FindByUserAndRange(ctx, input.UserID, monthStart, monthEnd)
	if err != nil {
		slog.Debug("Failed to fetch target month transactions, skipping duplicate suppression",
			"userID", input.UserID,
			"month", input.TargetMonth,
			"error", err,
		)
	} else {
		predictions = suppressDuplicates(predictions, monthTransactions)
	}

	return &GeneratePredictionsOutput{Predictions: predictions}, nil
}
