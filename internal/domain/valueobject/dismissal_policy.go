package valueobject

import "time"

// Dismissal expiry horizons per cadence. A dismissed monthly prediction
// resurfaces after two missed cycles, quarterly after one extra cycle,
// yearly after fourteen months.
const (
	DismissalTTLMonthly   = 60 * 24 * time.Hour
	DismissalTTLQuarterly = 120 * 24 * time.Hour
	DismissalTTLYearly    = 420 * 24 * time.Hour
)

// DismissalTTL maps a recurrence type to its dismissal expiry horizon.
// Unknown cadences fall back to the monthly horizon. The persistence layer
// reuses this mapping verbatim when storing dismissals.
func DismissalTTL(recurrence RecurrenceType) time.Duration {
	switch recurrence {
	case RecurrenceQuarterly:
		return DismissalTTLQuarterly
	case RecurrenceYearly:
		return DismissalTTLYearly
	default:
		return DismissalTTLMonthly
	}
}
