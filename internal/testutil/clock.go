package testutil

import (
	"sync"

	"github.com/roach88/events/internal/event"
)

// FixedClock is a settable clock for tests. It satisfies engine.Clock.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type FixedClock struct {
	mu    sync.Mutex
	today event.Date
}

// NewFixedClock creates a clock frozen at the given YYYY-MM-DD date.
// It panics on a malformed date.
func NewFixedClock(date string) *FixedClock {
	return &FixedClock{today: event.MustParseDate(date)}
}

// Today returns the frozen date.
func (c *FixedClock) Today() event.Date {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.today
}

// Set moves the clock to d.
func (c *FixedClock) Set(d event.Date) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.today = d
}

// AdvanceDays moves the clock forward by n days (backward when negative).
func (c *FixedClock) AdvanceDays(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.today = event.DateOf(c.today.Time().AddDate(0, 0, n))
}
