package prediction

import "time"

// lastDayOfMonth returns the number of days in the given month.
func lastDayOfMonth(year int, month time.Month) int {
	// Day zero of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// addMonthsClamped moves a date forward by n calendar months, keeping the
// day-of-month and clamping to the end of the target month when the day does
// not exist there (Jan 31 + 1 month = Feb 28/29).
func addMonthsClamped(date time.Time, n int) time.Time {
	year := date.Year()
	month := int(date.Month()) + n
	for month > 12 {
		month -= 12
		year++
	}

	day := date.Day()
	if last := lastDayOfMonth(year, time.Month(month)); day > last {
		day = last
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// monthsBetween returns the calendar month distance from a to b, ignoring
// days: Jan 31 to Feb 1 is one month.
func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

// daysBetween returns the whole days from b to a, negative when a precedes b.
func daysBetween(a, b time.Time) int {
	return int(a.Sub(b).Hours() / 24)
}

// absInt returns the absolute value of an int.
func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
