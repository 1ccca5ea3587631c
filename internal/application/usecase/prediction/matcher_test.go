package prediction

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealth-tracker/backend/internal/domain/valueobject"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func occurrencesOn(amount float64, dates ...time.Time) []valueobject.Occurrence {
	occs := make([]valueobject.Occurrence, len(dates))
	for i, d := range dates {
		occs[i] = valueobject.Occurrence{
			Date:     d,
			Amount:   decimal.NewFromFloat(amount),
			Currency: "EUR",
		}
	}
	return occs
}

func TestMatchMonthly(t *testing.T) {
	t.Run("consecutive months within window match", func(t *testing.T) {
		run := matchMonthly(occurrencesOn(-50,
			date(2024, time.January, 5),
			date(2024, time.February, 5),
			date(2024, time.March, 6),
		))

		if len(run) != 3 {
			t.Fatalf("expected run of 3, got %d", len(run))
		}
	})

	t.Run("month end rollover stays in one run", func(t *testing.T) {
		// Jan 31 -> expected Feb 31 clamps to Feb 29 (leap year) -> Mar 31.
		run := matchMonthly(occurrencesOn(-99,
			date(2024, time.January, 31),
			date(2024, time.February, 29),
			date(2024, time.March, 31),
		))

		if len(run) != 3 {
			t.Fatalf("expected run of 3 across month-end clamps, got %d", len(run))
		}
	})

	t.Run("next month outside window restarts the run", func(t *testing.T) {
		run := matchMonthly(occurrencesOn(-50,
			date(2024, time.January, 5),
			date(2024, time.February, 20),
			date(2024, time.March, 20),
		))

		if len(run) != 2 {
			t.Fatalf("expected restarted run of 2, got %d", len(run))
		}
		if !run[0].Date.Equal(date(2024, time.February, 20)) {
			t.Errorf("expected run to restart at Feb 20, got %s", run[0].Date)
		}
	})

	t.Run("gap after sufficient run accepts the run as-is", func(t *testing.T) {
		run := matchMonthly(occurrencesOn(-50,
			date(2024, time.January, 5),
			date(2024, time.February, 5),
			date(2024, time.June, 10),
		))

		if len(run) != 2 {
			t.Fatalf("expected early-accepted run of 2, got %d", len(run))
		}
		if !run[1].Date.Equal(date(2024, time.February, 5)) {
			t.Errorf("expected run to end at Feb 5, got %s", run[1].Date)
		}
	})

	t.Run("gap before sufficient run restarts", func(t *testing.T) {
		run := matchMonthly(occurrencesOn(-50,
			date(2024, time.January, 5),
			date(2024, time.June, 5),
			date(2024, time.July, 5),
		))

		if len(run) != 2 {
			t.Fatalf("expected run of 2 after restart, got %d", len(run))
		}
		if !run[0].Date.Equal(date(2024, time.June, 5)) {
			t.Errorf("expected run to restart at Jun 5, got %s", run[0].Date)
		}
	})

	t.Run("single occurrence yields no run", func(t *testing.T) {
		if run := matchMonthly(occurrencesOn(-50, date(2024, time.January, 5))); run != nil {
			t.Errorf("expected nil run, got %d occurrences", len(run))
		}
	})
}

func TestMatchQuarterly(t *testing.T) {
	t.Run("exact three month spacing matches", func(t *testing.T) {
		run := matchQuarterly(occurrencesOn(-120,
			date(2024, time.January, 15),
			date(2024, time.April, 15),
			date(2024, time.July, 15),
		))

		if len(run) != 3 {
			t.Fatalf("expected run of 3, got %d", len(run))
		}
	})

	t.Run("day of month may drift freely", func(t *testing.T) {
		// Quarterly matching is month-based only; day tolerance is handled
		// later by the typical-day median.
		run := matchQuarterly(occurrencesOn(-120,
			date(2024, time.January, 2),
			date(2024, time.April, 28),
			date(2024, time.July, 10),
		))

		if len(run) != 3 {
			t.Fatalf("expected run of 3 despite day drift, got %d", len(run))
		}
	})

	t.Run("two month spacing does not match", func(t *testing.T) {
		run := matchQuarterly(occurrencesOn(-120,
			date(2024, time.January, 15),
			date(2024, time.March, 15),
			date(2024, time.May, 15),
		))

		if run != nil {
			t.Errorf("expected nil run for 2-month spacing, got %d occurrences", len(run))
		}
	})

	t.Run("broken spacing after sufficient run accepts early", func(t *testing.T) {
		run := matchQuarterly(occurrencesOn(-120,
			date(2023, time.October, 15),
			date(2024, time.January, 15),
			date(2024, time.April, 15),
			date(2024, time.June, 1),
		))

		if len(run) != 3 {
			t.Fatalf("expected early-accepted run of 3, got %d", len(run))
		}
	})

	t.Run("two occurrences are not enough", func(t *testing.T) {
		run := matchQuarterly(occurrencesOn(-120,
			date(2024, time.January, 15),
			date(2024, time.April, 15),
		))

		if run != nil {
			t.Errorf("expected nil run below quarterly minimum, got %d occurrences", len(run))
		}
	})
}

func TestMatchYearly(t *testing.T) {
	t.Run("twelve month spacing with close day matches", func(t *testing.T) {
		run := matchYearly(occurrencesOn(-300,
			date(2023, time.January, 10),
			date(2024, time.January, 12),
		))

		if len(run) != 2 {
			t.Fatalf("expected run of 2, got %d", len(run))
		}
	})

	t.Run("eleven and thirteen month spacings are tolerated", func(t *testing.T) {
		run := matchYearly(occurrencesOn(-300,
			date(2022, time.February, 10),
			date(2023, time.January, 10),
			date(2024, time.February, 10),
		))

		if len(run) != 3 {
			t.Fatalf("expected run of 3 across 11 and 13 month gaps, got %d", len(run))
		}
	})

	t.Run("day of month beyond window does not match", func(t *testing.T) {
		run := matchYearly(occurrencesOn(-300,
			date(2023, time.January, 2),
			date(2024, time.January, 20),
		))

		if run != nil {
			t.Errorf("expected nil run for 18-day day drift, got %d occurrences", len(run))
		}
	})

	t.Run("six month spacing does not match", func(t *testing.T) {
		run := matchYearly(occurrencesOn(-300,
			date(2023, time.January, 10),
			date(2023, time.July, 10),
		))

		if run != nil {
			t.Errorf("expected nil run for 6-month spacing, got %d occurrences", len(run))
		}
	})
}

func TestCalendarHelpers(t *testing.T) {
	t.Run("addMonthsClamped clamps into shorter months", func(t *testing.T) {
		got := addMonthsClamped(date(2024, time.January, 31), 1)
		if !got.Equal(date(2024, time.February, 29)) {
			t.Errorf("expected 2024-02-29, got %s", got.Format("2006-01-02"))
		}

		got = addMonthsClamped(date(2023, time.January, 31), 1)
		if !got.Equal(date(2023, time.February, 28)) {
			t.Errorf("expected 2023-02-28, got %s", got.Format("2006-01-02"))
		}
	})

	t.Run("addMonthsClamped wraps the year", func(t *testing.T) {
		got := addMonthsClamped(date(2024, time.November, 30), 3)
		if !got.Equal(date(2025, time.February, 28)) {
			t.Errorf("expected 2025-02-28, got %s", got.Format("2006-01-02"))
		}
	})

	t.Run("monthsBetween ignores days", func(t *testing.T) {
		if got := monthsBetween(date(2024, time.January, 31), date(2024, time.February, 1)); got != 1 {
			t.Errorf("expected 1 month, got %d", got)
		}
		if got := monthsBetween(date(2023, time.December, 15), date(2024, time.March, 15)); got != 3 {
			t.Errorf("expected 3 months, got %d", got)
		}
	})
}
