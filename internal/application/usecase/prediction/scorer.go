package prediction

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/wealth-tracker/backend/internal/domain/valueobject"
)

// maxVariability is the coefficient-of-variation ceiling above which a
// matched run is rejected as too irregular to predict.
const maxVariability = 0.30

// recentAverageWindow is how many trailing occurrences feed the monthly
// representative amount, so a recent price change shows up quickly.
const recentAverageWindow = 3

// buildPattern scores a matched run and assembles the Pattern, or returns nil
// when the run's amount variability exceeds the ceiling. The representative
// amount and the variability gate deliberately look at different slices of
// the run: the average reacts fast to recent changes, the rejection stays
// conservative over the full history.
func buildPattern(run []valueobject.Occurrence, key valueobject.GroupKey, recurrence valueobject.RecurrenceType) *valueobject.Pattern {
	magnitudes := make([]float64, len(run))
	for i, occ := range run {
		magnitudes[i] = occ.Amount.Abs().InexactFloat64()
	}

	variability := coefficientOfVariation(magnitudes)
	if variability > maxVariability {
		return nil
	}

	averaged := magnitudes
	if recurrence == valueobject.RecurrenceMonthly && len(magnitudes) >= recentAverageWindow {
		averaged = magnitudes[len(magnitudes)-recentAverageWindow:]
	}

	days := make([]int, len(run))
	for i, occ := range run {
		days[i] = occ.Date.Day()
	}

	history := make([]valueobject.Occurrence, len(run))
	copy(history, run)

	return &valueobject.Pattern{
		Recipient:       key.Recipient,
		Category:        key.Category,
		Type:            key.Type,
		Recurrence:      recurrence,
		AverageAmount:   decimal.NewFromFloat(mean(averaged)).Round(2),
		TypicalDay:      medianDay(days),
		Currency:        run[0].Currency,
		Confidence:      confidenceScore(len(run), variability),
		OccurrenceCount: len(run),
		LastDate:        run[len(run)-1].Date,
		History:         history,
		PredictionKey:   valueobject.NewPredictionKey(key.Recipient, key.Category, recurrence),
	}
}

// confidenceScore rewards sample size (capped at six occurrences) and amount
// consistency, rounded to two decimals.
func confidenceScore(occurrences int, variability float64) float64 {
	occurrenceScore := math.Min(float64(occurrences)/6.0, 1.0)
	consistencyScore := math.Max(0, 1.0-variability)
	return math.Round((occurrenceScore*0.6+consistencyScore*0.4)*100) / 100
}

// coefficientOfVariation is the population standard deviation divided by the
// mean. A zero mean reads as perfectly consistent rather than dividing by
// zero; it only arises for zero-amount runs.
func coefficientOfVariation(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	m := mean(values)
	if m <= 0 {
		return 0
	}

	var sumSq float64
	for _, v := range values {
		d := v - m
		sumSq += d * d
	}
	return math.Sqrt(sumSq/float64(len(values))) / m
}

// mean returns the arithmetic mean of values.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// medianDay returns the median of the day-of-month values, rounded to the
// nearest integer when the count is even.
func medianDay(days []int) int {
	sorted := make([]int, len(days))
	copy(sorted, days)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return int(math.Round(float64(sorted[mid-1]+sorted[mid]) / 2))
}
