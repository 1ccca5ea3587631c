package prediction

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/wealth-tracker/backend/internal/domain/entity"
	"github.com/wealth-tracker/backend/internal/domain/valueobject"
)

func expenseRecord(dateStr, recipient, category string, amount float64) Record {
	return Record{
		Date:      dateStr,
		Amount:    decimal.NewFromFloat(amount),
		Currency:  "EUR",
		Type:      entity.TransactionTypeExpense,
		Recipient: recipient,
		Category:  category,
	}
}

func TestGroupRecords(t *testing.T) {
	t.Run("groups by recipient category and type", func(t *testing.T) {
		groups := groupRecords([]Record{
			expenseRecord("2024-01-05", "FitLife Gym", "Sports", -50),
			expenseRecord("2024-02-05", "FitLife Gym", "Sports", -50),
			expenseRecord("2024-01-10", "Landlord GmbH", "Rent", -1200),
		})

		if len(groups) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(groups))
		}

		gym := valueobject.GroupKey{Recipient: "FitLife Gym", Category: "Sports", Type: entity.TransactionTypeExpense}
		if len(groups[gym]) != 2 {
			t.Errorf("expected 2 gym occurrences, got %d", len(groups[gym]))
		}
	})

	t.Run("excludes internal transfers", func(t *testing.T) {
		groups := groupRecords([]Record{
			expenseRecord("2024-01-05", "Own Savings", entity.CategoryInternalTransfer, -500),
		})

		if len(groups) != 0 {
			t.Errorf("expected internal transfers to be dropped, got %d groups", len(groups))
		}
	})

	t.Run("excludes rows without a recipient", func(t *testing.T) {
		groups := groupRecords([]Record{
			expenseRecord("2024-01-05", "   ", "Sports", -50),
			expenseRecord("2024-01-06", "", "Sports", -50),
		})

		if len(groups) != 0 {
			t.Errorf("expected recipient-less rows to be dropped, got %d groups", len(groups))
		}
	})

	t.Run("excludes rows with unparseable dates", func(t *testing.T) {
		groups := groupRecords([]Record{
			expenseRecord("05.01.2024", "FitLife Gym", "Sports", -50),
		})

		if len(groups) != 0 {
			t.Errorf("expected unparseable dates to be dropped, got %d groups", len(groups))
		}
	})

	t.Run("defaults empty category and type", func(t *testing.T) {
		groups := groupRecords([]Record{
			{Date: "2024-01-05", Amount: decimal.NewFromInt(-50), Currency: "EUR", Recipient: "FitLife Gym"},
		})

		key := valueobject.GroupKey{
			Recipient: "FitLife Gym",
			Category:  entity.CategoryUncategorized,
			Type:      entity.TransactionTypeExpense,
		}
		if len(groups[key]) != 1 {
			t.Fatalf("expected defaulted group key, got groups %v", groups)
		}
	})

	t.Run("recipient matching is case sensitive", func(t *testing.T) {
		groups := groupRecords([]Record{
			expenseRecord("2024-01-05", "FitLife Gym", "Sports", -50),
			expenseRecord("2024-02-05", "fitlife gym", "Sports", -50),
		})

		if len(groups) != 2 {
			t.Errorf("expected differently-cased recipients to stay apart, got %d groups", len(groups))
		}
	})

	t.Run("sorts occurrences by date within each group", func(t *testing.T) {
		groups := groupRecords([]Record{
			expenseRecord("2024-03-05", "FitLife Gym", "Sports", -50),
			expenseRecord("2024-01-05", "FitLife Gym", "Sports", -50),
			expenseRecord("2024-02-05", "FitLife Gym", "Sports", -50),
		})

		key := valueobject.GroupKey{Recipient: "FitLife Gym", Category: "Sports", Type: entity.TransactionTypeExpense}
		occurrences := groups[key]
		for i := 1; i < len(occurrences); i++ {
			if occurrences[i].Date.Before(occurrences[i-1].Date) {
				t.Fatalf("occurrences out of order: %v", occurrences)
			}
		}
	})

	t.Run("accepts multiple date formats", func(t *testing.T) {
		groups := groupRecords([]Record{
			expenseRecord("2024-01-05", "FitLife Gym", "Sports", -50),
			expenseRecord("2024-02-05T09:30:00", "FitLife Gym", "Sports", -50),
			expenseRecord("2024-03-05T09:30:00Z", "FitLife Gym", "Sports", -50),
		})

		key := valueobject.GroupKey{Recipient: "FitLife Gym", Category: "Sports", Type: entity.TransactionTypeExpense}
		if len(groups[key]) != 3 {
			t.Fatalf("expected 3 occurrences across formats, got %d", len(groups[key]))
		}
		for _, occ := range groups[key] {
			if occ.Date.Hour() != 0 || occ.Date.Minute() != 0 {
				t.Errorf("expected dates normalized to midnight, got %s", occ.Date)
			}
		}
	})
}

func TestDetectPatterns(t *testing.T) {
	t.Run("detects the monthly gym membership", func(t *testing.T) {
		patterns := detectPatterns([]Record{
			expenseRecord("2024-01-05", "FitLife Gym", "Sports", -50),
			expenseRecord("2024-02-05", "FitLife Gym", "Sports", -50),
			expenseRecord("2024-03-06", "FitLife Gym", "Sports", -52),
		})

		if len(patterns) != 1 {
			t.Fatalf("expected 1 pattern, got %d", len(patterns))
		}

		p := patterns[0]
		if p.Recurrence != valueobject.RecurrenceMonthly {
			t.Errorf("expected monthly, got %s", p.Recurrence)
		}
		if p.OccurrenceCount != 3 {
			t.Errorf("expected 3 occurrences, got %d", p.OccurrenceCount)
		}
		if p.TypicalDay != 5 {
			t.Errorf("expected typical day 5, got %d", p.TypicalDay)
		}
		if !p.AverageAmount.Equal(decimal.NewFromFloat(50.67)) {
			t.Errorf("expected average 50.67, got %s", p.AverageAmount)
		}
	})

	t.Run("never emits a pattern from a single occurrence", func(t *testing.T) {
		patterns := detectPatterns([]Record{
			expenseRecord("2024-01-05", "One-off Shop", "Shopping", -99),
		})

		if len(patterns) != 0 {
			t.Errorf("expected no patterns, got %d", len(patterns))
		}
	})

	t.Run("monthly outranks quarterly and yearly", func(t *testing.T) {
		patterns := detectPatterns([]Record{
			expenseRecord("2024-01-05", "FitLife Gym", "Sports", -50),
			expenseRecord("2024-02-05", "FitLife Gym", "Sports", -50),
			expenseRecord("2024-03-05", "FitLife Gym", "Sports", -50),
			expenseRecord("2024-04-05", "FitLife Gym", "Sports", -50),
		})

		if len(patterns) != 1 || patterns[0].Recurrence != valueobject.RecurrenceMonthly {
			t.Fatalf("expected a single monthly pattern, got %+v", patterns)
		}
	})

	t.Run("falls back to quarterly when monthly does not fit", func(t *testing.T) {
		patterns := detectPatterns([]Record{
			expenseRecord("2024-01-15", "City Waterworks", "Utilities", -120),
			expenseRecord("2024-04-15", "City Waterworks", "Utilities", -120),
			expenseRecord("2024-07-15", "City Waterworks", "Utilities", -120),
		})

		if len(patterns) != 1 || patterns[0].Recurrence != valueobject.RecurrenceQuarterly {
			t.Fatalf("expected a single quarterly pattern, got %+v", patterns)
		}
	})

	t.Run("falls back to yearly when neither monthly nor quarterly fit", func(t *testing.T) {
		patterns := detectPatterns([]Record{
			expenseRecord("2023-01-10", "InsureCo", "Insurance", -300),
			expenseRecord("2024-01-12", "InsureCo", "Insurance", -305),
		})

		if len(patterns) != 1 || patterns[0].Recurrence != valueobject.RecurrenceYearly {
			t.Fatalf("expected a single yearly pattern, got %+v", patterns)
		}
	})

	t.Run("volatile amounts produce no pattern at all", func(t *testing.T) {
		patterns := detectPatterns([]Record{
			expenseRecord("2024-01-05", "Corner Cafe", "Dining", -5),
			expenseRecord("2024-02-05", "Corner Cafe", "Dining", -80),
			expenseRecord("2024-03-05", "Corner Cafe", "Dining", -12),
		})

		if len(patterns) != 0 {
			t.Errorf("expected variability gate to reject, got %+v", patterns)
		}
	})

	t.Run("output order is deterministic", func(t *testing.T) {
		records := []Record{
			expenseRecord("2024-01-10", "Landlord GmbH", "Rent", -1200),
			expenseRecord("2024-02-10", "Landlord GmbH", "Rent", -1200),
			expenseRecord("2024-01-05", "FitLife Gym", "Sports", -50),
			expenseRecord("2024-02-05", "FitLife Gym", "Sports", -50),
		}

		first := detectPatterns(records)
		for i := 0; i < 10; i++ {
			again := detectPatterns(records)
			if len(again) != len(first) {
				t.Fatalf("pattern count changed between runs: %d vs %d", len(again), len(first))
			}
			for j := range again {
				if again[j].PredictionKey != first[j].PredictionKey {
					t.Fatalf("pattern order changed between runs")
				}
			}
		}
	})

	t.Run("same recipient with different categories stays apart", func(t *testing.T) {
		patterns := detectPatterns([]Record{
			expenseRecord("2024-01-05", "MegaCorp", "Insurance", -30),
			expenseRecord("2024-02-05", "MegaCorp", "Insurance", -30),
			expenseRecord("2024-01-20", "MegaCorp", "Software", -10),
			expenseRecord("2024-02-20", "MegaCorp", "Software", -10),
		})

		if len(patterns) != 2 {
			t.Fatalf("expected 2 independent patterns, got %d", len(patterns))
		}
		if patterns[0].PredictionKey == patterns[1].PredictionKey {
			t.Error("expected distinct prediction keys per category")
		}
	})
}
