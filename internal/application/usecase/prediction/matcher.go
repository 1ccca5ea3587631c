package prediction

import (
	"github.com/wealth-tracker/backend/internal/domain/valueobject"
)

// Detection windows and minimum run lengths per cadence. Monthly obligations
// drift by a few days and need the calendar-length tolerance; quarterly
// patterns are rare enough that exact 3-month spacing avoids false positives
// from unrelated ~90-day gaps; yearly billing dates shift the most across
// weekends and holidays, hence the widest day window.
const (
	monthlyWindowDays = 3
	yearlyWindowDays  = 7

	minOccurrencesMonthly   = 2
	minOccurrencesQuarterly = 3
	minOccurrencesYearly    = 2
)

// matchMonthly finds the longest trailing run of occurrences spaced one
// calendar month apart within a ±3 day window. The run restarts when an
// occurrence lands in the next month but outside the window (slow
// day-of-month drift), and is accepted early when a multi-month gap follows
// an already sufficient run.
//
// Input must be sorted ascending by date. Returns the matched run, or nil.
func matchMonthly(occurrences []valueobject.Occurrence) []valueobject.Occurrence {
	if len(occurrences) < minOccurrencesMonthly {
		return nil
	}

	var run []valueobject.Occurrence
	var lastAccepted valueobject.Occurrence

	for _, occ := range occurrences {
		if len(run) == 0 {
			run = []valueobject.Occurrence{occ}
			lastAccepted = occ
			continue
		}

		expected := addMonthsClamped(lastAccepted.Date, 1)
		if absInt(daysBetween(occ.Date, expected)) <= monthlyWindowDays {
			run = append(run, occ)
			lastAccepted = occ
			continue
		}

		switch monthsDrifted := monthsBetween(lastAccepted.Date, occ.Date); {
		case monthsDrifted == 1:
			// Next month but outside the window: the day-of-month moved.
			// Restart here so slow drift does not permanently break the run.
			run = []valueobject.Occurrence{occ}
			lastAccepted = occ
		case monthsDrifted > 1:
			if len(run) >= minOccurrencesMonthly {
				// Gap after a sufficient run: accept what we have.
				return run
			}
			run = []valueobject.Occurrence{occ}
			lastAccepted = occ
		default:
			// Same month as the last accepted occurrence; ignore it.
		}
	}

	if len(run) >= minOccurrencesMonthly {
		return run
	}
	return nil
}

// matchQuarterly finds a run of occurrences spaced exactly three calendar
// months apart. No day-level tolerance is applied here; day variance is
// absorbed by the typical-day median and the prediction-time overdue check.
func matchQuarterly(occurrences []valueobject.Occurrence) []valueobject.Occurrence {
	if len(occurrences) < minOccurrencesQuarterly {
		return nil
	}

	var run []valueobject.Occurrence

	for i := 0; i < len(occurrences)-1; i++ {
		if monthsBetween(occurrences[i].Date, occurrences[i+1].Date) == 3 {
			if len(run) == 0 {
				run = append(run, occurrences[i])
			}
			run = append(run, occurrences[i+1])
		} else if len(run) >= minOccurrencesQuarterly {
			break
		} else {
			run = nil
		}
	}

	if len(run) >= minOccurrencesQuarterly {
		return run
	}
	return nil
}

// matchYearly finds a run of occurrences spaced eleven to thirteen calendar
// months apart with day-of-month within ±7 days. The wide month range covers
// leap-year and month-length effects on annual billing.
func matchYearly(occurrences []valueobject.Occurrence) []valueobject.Occurrence {
	if len(occurrences) < minOccurrencesYearly {
		return nil
	}

	var run []valueobject.Occurrence

	for i := 0; i < len(occurrences)-1; i++ {
		monthsApart := monthsBetween(occurrences[i].Date, occurrences[i+1].Date)
		if monthsApart >= 11 && monthsApart <= 13 {
			if absInt(occurrences[i+1].Date.Day()-occurrences[i].Date.Day()) <= yearlyWindowDays {
				if len(run) == 0 {
					run = append(run, occurrences[i])
				}
				run = append(run, occurrences[i+1])
			}
		} else if len(run) >= minOccurrencesYearly {
			break
		} else {
			run = nil
		}
	}

	if len(run) >= minOccurrencesYearly {
		return run
	}
	return nil
}
