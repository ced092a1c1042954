package event

import (
	"golang.org/x/text/unicode/norm"
)

// Event is one dated note. Category is optional; "" means uncategorized.
type Event struct {
	Date        Date   `json:"date" yaml:"date"`
	Category    string `json:"category" yaml:"category"`
	Description string `json:"description" yaml:"description"`
}

// New returns an Event with category and description in NFC form.
func New(date Date, category, description string) Event {
	return Event{
		Date:        date,
		Category:    Normalize(category),
		Description: Normalize(description),
	}
}

// Normalize returns s in Unicode NFC form. Criteria compared against event
// text should be normalized the same way.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// HasCategory reports whether the event is categorized.
func (e Event) HasCategory() bool {
	return e.Category != ""
}

// CompareToDate orders the event's date against d.
func (e Event) CompareToDate(d Date) int {
	return e.Date.Compare(d)
}

// Compare orders two events by date only.
func (e Event) Compare(other Event) int {
	return e.Date.Compare(other.Date)
}

// DifferenceString describes the distance from the event to ref, e.g.
// "today", "1 years 2 days ago" or "in 3 months ".
func (e Event) DifferenceString(ref Date) string {
	return Between(e.Date, ref).Phrase()
}

// String renders "YYYY-MM-DD: description (category)", omitting the
// parenthesized part for uncategorized events.
func (e Event) String() string {
	if !e.HasCategory() {
		return e.Date.String() + ": " + e.Description
	}
	return e.Date.String() + ": " + e.Description + " (" + e.Category + ")"
}
