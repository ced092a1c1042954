package engine

import (
	"time"

	"github.com/roach88/events/internal/event"
)

// Clock supplies the reference date for "today" criteria, default add dates
// and relative-time phrases.
type Clock interface {
	Today() event.Date
}

// SystemClock reads the wall clock. A nil Location means time.Local.
type SystemClock struct {
	Location *time.Location
}

// Today returns the current calendar date in the clock's location.
func (c SystemClock) Today() event.Date {
	now := time.Now()
	if c.Location != nil {
		now = now.In(c.Location)
	}
	return event.DateOf(now)
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() event.Date

// Today calls f.
func (f ClockFunc) Today() event.Date {
	return f()
}
