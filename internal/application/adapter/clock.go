package adapter

import "time"

// Clock abstracts the current time. The prediction generator's overdue check
// compares expected payment dates against "today", so tests inject a fixed
// clock instead of reading time.Now.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
