package prediction

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealth-tracker/backend/internal/domain/entity"
	"github.com/wealth-tracker/backend/internal/domain/valueobject"
)

// overdueGraceDays is how far past its expected date a pattern may run before
// it is considered lapsed. A lapsed pattern produces no predictions until a
// new real occurrence moves its last date forward.
const overdueGraceDays = 7

// duplicateTolerance is the relative amount window inside which a real
// transaction in the target month counts as the predicted payment already
// having happened.
var duplicateTolerance = decimal.NewFromFloat(0.10)

// generateForMonth synthesizes predictions for the target month from the
// detected patterns, skipping dismissed keys and lapsed patterns. The now
// argument anchors the overdue check.
func generateForMonth(
	patterns []valueobject.Pattern,
	targetYear int,
	targetMonth time.Month,
	dismissed map[string]struct{},
	now time.Time,
) []valueobject.Prediction {
	var predictions []valueobject.Prediction

	for i := range patterns {
		pattern := &patterns[i]

		if _, ok := dismissed[pattern.PredictionKey]; ok {
			continue
		}

		if !isDue(pattern, targetYear, targetMonth, now) {
			continue
		}

		predictions = append(predictions, newPrediction(pattern, targetYear, targetMonth))
	}

	return predictions
}

// isDue applies the cadence-specific due rules, including the shared
// seven-day lapse rule against the expected next payment date.
func isDue(pattern *valueobject.Pattern, targetYear int, targetMonth time.Month, now time.Time) bool {
	switch pattern.Recurrence {
	case valueobject.RecurrenceMonthly:
		expected := addMonthsClamped(pattern.LastDate, 1)
		return daysBetween(now, expected) <= overdueGraceDays

	case valueobject.RecurrenceQuarterly:
		expected := addMonthsClamped(pattern.LastDate, 3)
		if daysBetween(now, expected) > overdueGraceDays {
			return false
		}
		// Tolerate the caller asking slightly early or late across month
		// boundaries.
		monthsSince := (targetYear-pattern.LastDate.Year())*12 + int(targetMonth) - int(pattern.LastDate.Month())
		return monthsSince >= 2 && monthsSince <= 4

	case valueobject.RecurrenceYearly:
		expected := expectedYearly(pattern.LastDate)
		if daysBetween(now, expected) > overdueGraceDays {
			return false
		}
		return targetMonth == pattern.LastDate.Month() && targetYear-pattern.LastDate.Year() >= 1

	default:
		return false
	}
}

// expectedYearly returns the expected date one year after the last
// occurrence. When the day does not exist in the target year (Feb 29 on a
// non-leap year) the 28th is used.
func expectedYearly(lastDate time.Time) time.Time {
	year := lastDate.Year() + 1
	month := lastDate.Month()
	day := lastDate.Day()
	if day > lastDayOfMonth(year, month) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// newPrediction materializes a due pattern into a synthetic transaction for
// the target month.
func newPrediction(pattern *valueobject.Pattern, targetYear int, targetMonth time.Month) valueobject.Prediction {
	day := pattern.TypicalDay
	if last := lastDayOfMonth(targetYear, targetMonth); day > last {
		day = last
	}

	amount := pattern.AverageAmount.Abs()
	if pattern.Type == entity.TransactionTypeExpense {
		amount = amount.Neg()
	}

	var description string
	if pattern.Recurrence == valueobject.RecurrenceMonthly && pattern.OccurrenceCount >= recentAverageWindow {
		description = fmt.Sprintf("Predicted based on last 3 months (of %d total payments)", pattern.OccurrenceCount)
	} else {
		description = fmt.Sprintf("Predicted based on %d past payments", pattern.OccurrenceCount)
	}

	return valueobject.Prediction{
		Date:          time.Date(targetYear, targetMonth, day, 0, 0, 0, 0, time.UTC),
		Amount:        amount,
		Currency:      pattern.Currency,
		Type:          pattern.Type,
		Recipient:     pattern.Recipient,
		Description:   description,
		Category:      pattern.Category,
		Account:       valueobject.PredictedAccount,
		IsPredicted:   true,
		PredictionKey: pattern.PredictionKey,
		Confidence:    pattern.Confidence,
		Recurrence:    pattern.Recurrence,
		BasedOn:       pattern.History,
	}
}

// suppressDuplicates drops predictions the target month has already fulfilled:
// a real transaction with the same category and recipient whose magnitude is
// within the tolerance of the predicted amount.
func suppressDuplicates(predictions []valueobject.Prediction, monthTransactions []*entity.Transaction) []valueobject.Prediction {
	if len(predictions) == 0 || len(monthTransactions) == 0 {
		return predictions
	}

	kept := make([]valueobject.Prediction, 0, len(predictions))
	for _, prediction := range predictions {
		if !fulfilledByReal(prediction, monthTransactions) {
			kept = append(kept, prediction)
		}
	}
	return kept
}

// fulfilledByReal reports whether a real transaction already covers the
// prediction.
func fulfilledByReal(prediction valueobject.Prediction, transactions []*entity.Transaction) bool {
	predicted := prediction.Amount.Abs()
	tolerance := predicted.Mul(duplicateTolerance)

	for _, txn := range transactions {
		if txn.Category != prediction.Category || txn.Recipient != prediction.Recipient {
			continue
		}
		if txn.Magnitude().Sub(predicted).Abs().LessThanOrEqual(tolerance) {
			return true
		}
	}
	return false
}
