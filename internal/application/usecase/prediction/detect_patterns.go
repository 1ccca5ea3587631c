package prediction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wealth-tracker/backend/internal/application/adapter"
	"github.com/wealth-tracker/backend/internal/domain/valueobject"
)

// DetectPatternsInput represents the input for recurring pattern detection.
type DetectPatternsInput struct {
	UserID uuid.UUID
}

// DetectPatternsOutput represents the output of recurring pattern detection.
type DetectPatternsOutput struct {
	Patterns []valueobject.Pattern
}

// DetectPatternsUseCase analyzes a user's full transaction history for
// recurring payment patterns.
type DetectPatternsUseCase struct {
	transactionRepo adapter.TransactionRepository
	patternCache    adapter.PatternCache
}

// NewDetectPatternsUseCase creates a new DetectPatternsUseCase instance.
func NewDetectPatternsUseCase(
	transactionRepo adapter.TransactionRepository,
	patternCache adapter.PatternCache,
) *DetectPatternsUseCase {
	return &DetectPatternsUseCase{
		transactionRepo: transactionRepo,
		patternCache:    patternCache,
	}
}

// Execute performs pattern detection, serving from the cache when possible.
func (uc *DetectPatternsUseCase) Execute(ctx context.Context, input DetectPatternsInput) (*DetectPatternsOutput, error) {
	if patterns, ok := uc.patternCache.Get(ctx, input.UserID); ok {
		return &DetectPatternsOutput{Patterns: patterns}, nil
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for detection: %w", err)
	}

	records := make([]Record, len(transactions))
	for i, txn := range transactions {
		records[i] = RecordFromTransaction(txn)
	}

	patterns := detectPatterns(records)

	slog.Debug("Recurring pattern detection completed",
		"userID", input.UserID,
		"transactions", len(records),
		"patterns", len(patterns),
	)

	uc.patternCache.Set(ctx, input.UserID, patterns)

	return &DetectPatternsOutput{Patterns: patterns}, nil
}
