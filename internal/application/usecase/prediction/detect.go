package prediction

import (
	"sort"

	"github.com/wealth-tracker/backend/internal/domain/valueobject"
)

// detectPatterns runs the full detection pipeline over a flat record list:
// group, then try each cadence matcher in priority order. Monthly wins over
// quarterly wins over yearly; a group yields at most one pattern.
func detectPatterns(records []Record) []valueobject.Pattern {
	groups := groupRecords(records)

	var patterns []valueobject.Pattern
	for key, occurrences := range groups {
		if len(occurrences) < minOccurrencesMonthly {
			continue
		}

		if pattern := matchGroup(occurrences, key); pattern != nil {
			patterns = append(patterns, *pattern)
		}
	}

	// Map iteration order is random; keep output stable for callers and cache.
	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].Recipient != patterns[j].Recipient {
			return patterns[i].Recipient < patterns[j].Recipient
		}
		if patterns[i].Category != patterns[j].Category {
			return patterns[i].Category < patterns[j].Category
		}
		return patterns[i].Recurrence < patterns[j].Recurrence
	})

	return patterns
}

// matchGroup classifies one candidate group. Cadences are tried in priority
// order and the first to produce a pattern wins. A run that matched a cadence
// but failed the variability gate does not claim the group; the next cadence
// still gets its chance at a steadier subset of the occurrences.
func matchGroup(occurrences []valueobject.Occurrence, key valueobject.GroupKey) *valueobject.Pattern {
	if run := matchMonthly(occurrences); run != nil {
		if pattern := buildPattern(run, key, valueobject.RecurrenceMonthly); pattern != nil {
			return pattern
		}
	}

	if run := matchQuarterly(occurrences); run != nil {
		if pattern := buildPattern(run, key, valueobject.RecurrenceQuarterly); pattern != nil {
			return pattern
		}
	}

	if run := matchYearly(occurrences); run != nil {
		return buildPattern(run, key, valueobject.RecurrenceYearly)
	}

	return nil
}
