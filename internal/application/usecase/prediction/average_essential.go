package prediction

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealth-tracker/backend/internal/application/adapter"
	"github.com/wealth-tracker/backend/internal/domain/entity"
)

// essentialFallbackMonths is how many months preceding the target month feed
// the average when the target month itself has essential spending on record.
const essentialFallbackMonths = 3

// AverageEssentialInput represents the input for the essential spending average.
type AverageEssentialInput struct {
	UserID      uuid.UUID
	TargetMonth string // YYYY-MM
}

// AverageEssentialOutput represents the output of the essential spending average.
type AverageEssentialOutput struct {
	Average    decimal.Decimal
	MonthsUsed []string
	MonthCount int
}

// AverageEssentialUseCase computes the average monthly spend across essential
// categories over the months preceding the target month, used by the summary
// view to project a baseline for months without full data.
type AverageEssentialUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewAverageEssentialUseCase creates a new AverageEssentialUseCase instance.
func NewAverageEssentialUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *AverageEssentialUseCase {
	return &AverageEssentialUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute computes the average essential spending for the target month.
func (uc *AverageEssentialUseCase) Execute(ctx context.Context, input AverageEssentialInput) (*AverageEssentialOutput, error) {
	if _, _, err := parseTargetMonth(input.TargetMonth); err != nil {
		return nil, err
	}

	essentialNames, err := uc.categoryRepo.FindEssentialNamesByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	essential := make(map[string]struct{}, len(essentialNames))
	for _, name := range essentialNames {
		essential[strings.ToLower(name)] = struct{}{}
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	// Sum essential expenses per month. Loan payments always count as
	// essential regardless of category flags.
	monthlyTotals := make(map[string]decimal.Decimal)
	for _, txn := range transactions {
		if txn.Type == entity.TransactionTypeIncome {
			continue
		}

		category := strings.ToLower(txn.Category)
		if _, ok := essential[category]; !ok && !strings.Contains(category, "loan") {
			continue
		}

		monthKey := txn.Date.Format("2006-01")
		monthlyTotals[monthKey] = monthlyTotals[monthKey].Add(txn.Magnitude())
	}

	months := make([]string, 0, len(monthlyTotals))
	for month := range monthlyTotals {
		months = append(months, month)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	monthsUsed := precedingMonths(months, input.TargetMonth)
	if len(monthsUsed) == 0 {
		return &AverageEssentialOutput{Average: decimal.Zero, MonthsUsed: []string{}}, nil
	}

	total := decimal.Zero
	for _, month := range monthsUsed {
		total = total.Add(monthlyTotals[month])
	}

	return &AverageEssentialOutput{
		Average:    total.Div(decimal.NewFromInt(int64(len(monthsUsed)))).Round(2),
		MonthsUsed: monthsUsed,
		MonthCount: len(monthsUsed),
	}, nil
}

// precedingMonths picks the months whose totals feed the average: the three
// months immediately before the target when the target has data of its own,
// otherwise every recorded month earlier than the target. Input is sorted
// newest first.
func precedingMonths(sortedDesc []string, target string) []string {
	for i, month := range sortedDesc {
		if month == target {
			end := i + 1 + essentialFallbackMonths
			if end > len(sortedDesc) {
				end = len(sortedDesc)
			}
			return sortedDesc[i+1 : end]
		}
	}

	var earlier []string
	for _, month := range sortedDesc {
		if month < target {
			earlier = append(earlier, month)
		}
	}
	return earlier
}
