// Package export renders events in formats other tools can import.
package export

import (
	"fmt"
	"io"
	"strconv"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/roach88/events/internal/event"
)

// ProductID identifies this tool in exported calendars.
const ProductID = "-//roach88//events//EN"

// uidNamespace scopes the name-based UUIDs used as VEVENT UIDs.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/roach88/events"))

// EventUID returns a stable UID for the n-th occurrence (0-based) of an
// event with identical date, category and description. Re-exporting the
// same store yields the same UIDs, so calendar apps update instead of
// duplicating.
func EventUID(e event.Event, n int) string {
	name := e.Date.String() + "\x00" + e.Category + "\x00" + e.Description
	if n > 0 {
		name += "\x00" + strconv.Itoa(n)
	}
	return uuid.NewSHA1(uidNamespace, []byte(name)).String()
}

// ICS writes events as an iCalendar with one all-day VEVENT each. now is
// used as DTSTAMP.
func ICS(w io.Writer, events []event.Event, now time.Time) error {
	cal := ical.NewCalendarFor("events")
	cal.SetProductId(ProductID)
	cal.SetMethod(ical.MethodPublish)

	seen := make(map[string]int, len(events))
	for _, e := range events {
		uid := EventUID(e, 0)
		n := seen[uid]
		seen[uid] = n + 1
		if n > 0 {
			uid = EventUID(e, n)
		}

		start := e.Date.Time()
		ve := cal.AddEvent(uid)
		ve.SetDtStampTime(now.UTC())
		ve.SetAllDayStartAt(start)
		ve.SetAllDayEndAt(start.AddDate(0, 0, 1))
		ve.SetSummary(e.Description)
		if e.HasCategory() {
			ve.SetProperty(ical.ComponentPropertyCategories, e.Category)
		}
	}

	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("write calendar: %w", err)
	}
	return nil
}
