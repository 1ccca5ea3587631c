package prediction

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealth-tracker/backend/internal/domain/entity"
	"github.com/wealth-tracker/backend/internal/domain/valueobject"
)

func TestBuildPattern(t *testing.T) {
	gymKey := valueobject.GroupKey{
		Recipient: "FitLife Gym",
		Category:  "Sports",
		Type:      entity.TransactionTypeExpense,
	}

	t.Run("scores a steady monthly run", func(t *testing.T) {
		run := []valueobject.Occurrence{
			{Date: date(2024, time.January, 5), Amount: decimal.NewFromInt(-50), Currency: "EUR"},
			{Date: date(2024, time.February, 5), Amount: decimal.NewFromInt(-50), Currency: "EUR"},
			{Date: date(2024, time.March, 6), Amount: decimal.NewFromInt(-52), Currency: "EUR"},
		}

		pattern := buildPattern(run, gymKey, valueobject.RecurrenceMonthly)
		if pattern == nil {
			t.Fatal("expected a pattern, got nil")
		}

		if !pattern.AverageAmount.Equal(decimal.NewFromFloat(50.67)) {
			t.Errorf("expected average 50.67, got %s", pattern.AverageAmount)
		}
		if pattern.TypicalDay != 5 {
			t.Errorf("expected typical day 5, got %d", pattern.TypicalDay)
		}
		if pattern.OccurrenceCount != 3 {
			t.Errorf("expected occurrence count 3, got %d", pattern.OccurrenceCount)
		}
		if pattern.Confidence != 0.69 {
			t.Errorf("expected confidence 0.69, got %v", pattern.Confidence)
		}
		if !pattern.LastDate.Equal(date(2024, time.March, 6)) {
			t.Errorf("expected last date 2024-03-06, got %s", pattern.LastDate)
		}
		if pattern.Currency != "EUR" {
			t.Errorf("expected currency EUR, got %q", pattern.Currency)
		}
	})

	t.Run("rejects runs with volatile amounts", func(t *testing.T) {
		run := []valueobject.Occurrence{
			{Date: date(2024, time.January, 5), Amount: decimal.NewFromInt(-20), Currency: "EUR"},
			{Date: date(2024, time.February, 5), Amount: decimal.NewFromInt(-80), Currency: "EUR"},
			{Date: date(2024, time.March, 5), Amount: decimal.NewFromInt(-20), Currency: "EUR"},
		}

		if pattern := buildPattern(run, gymKey, valueobject.RecurrenceMonthly); pattern != nil {
			t.Errorf("expected nil for volatile amounts, got pattern with CoV-passing average %s", pattern.AverageAmount)
		}
	})

	t.Run("monthly average uses only the last three occurrences", func(t *testing.T) {
		run := []valueobject.Occurrence{
			{Date: date(2024, time.January, 1), Amount: decimal.NewFromInt(-45), Currency: "EUR"},
			{Date: date(2024, time.February, 1), Amount: decimal.NewFromInt(-45), Currency: "EUR"},
			{Date: date(2024, time.March, 1), Amount: decimal.NewFromInt(-55), Currency: "EUR"},
			{Date: date(2024, time.April, 1), Amount: decimal.NewFromInt(-55), Currency: "EUR"},
			{Date: date(2024, time.May, 1), Amount: decimal.NewFromInt(-55), Currency: "EUR"},
		}

		pattern := buildPattern(run, gymKey, valueobject.RecurrenceMonthly)
		if pattern == nil {
			t.Fatal("expected a pattern, got nil")
		}
		if !pattern.AverageAmount.Equal(decimal.NewFromInt(55)) {
			t.Errorf("expected average 55 from the trailing window, got %s", pattern.AverageAmount)
		}
	})

	t.Run("quarterly average uses the full run", func(t *testing.T) {
		run := []valueobject.Occurrence{
			{Date: date(2024, time.January, 1), Amount: decimal.NewFromInt(-90), Currency: "EUR"},
			{Date: date(2024, time.April, 1), Amount: decimal.NewFromInt(-100), Currency: "EUR"},
			{Date: date(2024, time.July, 1), Amount: decimal.NewFromInt(-100), Currency: "EUR"},
			{Date: date(2024, time.October, 1), Amount: decimal.NewFromInt(-110), Currency: "EUR"},
		}

		pattern := buildPattern(run, gymKey, valueobject.RecurrenceQuarterly)
		if pattern == nil {
			t.Fatal("expected a pattern, got nil")
		}
		if !pattern.AverageAmount.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected average 100 over the full run, got %s", pattern.AverageAmount)
		}
	})

	t.Run("zero amounts score as perfectly consistent", func(t *testing.T) {
		run := []valueobject.Occurrence{
			{Date: date(2024, time.January, 5), Amount: decimal.Zero, Currency: "EUR"},
			{Date: date(2024, time.February, 5), Amount: decimal.Zero, Currency: "EUR"},
		}

		pattern := buildPattern(run, gymKey, valueobject.RecurrenceMonthly)
		if pattern == nil {
			t.Fatal("expected a pattern for zero-amount run, got nil")
		}
		// occurrence score 2/6, consistency score 1.0
		if pattern.Confidence != 0.60 {
			t.Errorf("expected confidence 0.60, got %v", pattern.Confidence)
		}
	})
}

func TestCoefficientOfVariation(t *testing.T) {
	t.Run("uses the population standard deviation", func(t *testing.T) {
		got := coefficientOfVariation([]float64{50, 50, 52})
		want := math.Sqrt(8.0/9.0) / (152.0 / 3.0)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("single value has no variability", func(t *testing.T) {
		if got := coefficientOfVariation([]float64{42}); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})

	t.Run("zero mean reads as zero variability", func(t *testing.T) {
		if got := coefficientOfVariation([]float64{0, 0, 0}); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})
}

func TestMedianDay(t *testing.T) {
	cases := []struct {
		name string
		days []int
		want int
	}{
		{"odd count takes the middle", []int{5, 5, 6}, 5},
		{"even count rounds the midpoint", []int{1, 2}, 2},
		{"unsorted input", []int{31, 29, 31}, 31},
		{"single day", []int{15}, 15},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := medianDay(tc.days); got != tc.want {
				t.Errorf("medianDay(%v) = %d, want %d", tc.days, got, tc.want)
			}
		})
	}
}

func TestPredictionKey(t *testing.T) {
	t.Run("depends only on recipient category and cadence", func(t *testing.T) {
		a := valueobject.NewPredictionKey("FitLife Gym", "Sports", valueobject.RecurrenceMonthly)
		b := valueobject.NewPredictionKey("FitLife Gym", "Sports", valueobject.RecurrenceMonthly)
		if a != b {
			t.Errorf("expected identical keys, got %q and %q", a, b)
		}
		if len(a) != 16 {
			t.Errorf("expected 16-character key, got %d characters", len(a))
		}
	})

	t.Run("differs across cadences", func(t *testing.T) {
		monthly := valueobject.NewPredictionKey("FitLife Gym", "Sports", valueobject.RecurrenceMonthly)
		yearly := valueobject.NewPredictionKey("FitLife Gym", "Sports", valueobject.RecurrenceYearly)
		if monthly == yearly {
			t.Error("expected distinct keys per cadence")
		}
	})
}
