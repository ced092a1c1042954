package engine

import (
	"github.com/roach88/events/internal/event"
	"github.com/roach88/events/internal/store"
)

// Row pairs an event with its relative-time phrase against a reference date.
type Row struct {
	Event      event.Event `json:"event" yaml:"event"`
	Difference string      `json:"difference" yaml:"difference"`
}

// String renders the row the way the text output prints it.
func (r Row) String() string {
	return r.Event.String() + " -- " + r.Difference
}

// Annotate builds one Row per event, in order.
func Annotate(events []event.Event, today event.Date) []Row {
	rows := make([]Row, len(events))
	for i, e := range events {
		rows[i] = Row{Event: e, Difference: e.DifferenceString(today)}
	}
	return rows
}

// ListResult is the outcome of a list.
type ListResult struct {
	Today  event.Date    `json:"today" yaml:"today"`
	Filter string        `json:"filter" yaml:"filter"`
	Events []event.Event `json:"events" yaml:"events"`
}

// AddResult is the outcome of an add. Events is the full collection after
// the insert, in store order.
type AddResult struct {
	Today  event.Date    `json:"today" yaml:"today"`
	Added  event.Event   `json:"added" yaml:"added"`
	Events []event.Event `json:"events" yaml:"events"`
}

// DeleteResult is the outcome of a delete.
//
// For a dry run Events is the set that would be retained and Replace is the
// zero value. Otherwise Events is the store collection after the write.
type DeleteResult struct {
	Today   event.Date          `json:"today" yaml:"today"`
	Filter  string              `json:"filter" yaml:"filter"`
	DryRun  bool                `json:"dry_run" yaml:"dry_run"`
	Replace store.ReplaceResult `json:"replace" yaml:"replace"`
	Events  []event.Event       `json:"events" yaml:"events"`
}

// Removed reports whether a non-dry-run delete changed the collection size.
func (r *DeleteResult) Removed() bool {
	return !r.DryRun && r.Replace.Removed()
}
