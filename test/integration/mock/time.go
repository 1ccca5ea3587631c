package mock

import (
	"sync"
	"time"
)

// Time is a settable clock for tests. It satisfies the application layer's
// Clock interface so prediction due-date logic can run against a fixed date.
type Time struct {
	mu      sync.RWMutex
	current time.Time
}

func NewTime() *Time {
	return &Time{current: time.Now().UTC()}
}

// SetCurrentTime freezes the clock at the given instant.
func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = currentTime
}

// Now returns the frozen instant.
func (t *Time) Now() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}
