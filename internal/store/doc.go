// Package store provides the file-backed event store.
//
// The store owns the authoritative in-memory event collection and keeps it
// in sync with a single CSV file:
//   - Load: decode the whole file, replacing the collection wholesale
//   - Save: sort by date and rewrite the whole file
//   - Insert: append one event, then Save
//   - Replace: swap the collection for a new one, then Save
//
// # File Format
//
//	date,category,description
//	2024-01-01,work,Kickoff meeting
//	2024-06-15,,"Dentist, 3pm"
//
// Columns are located by header name. Dates are ISO calendar dates
// (YYYY-MM-DD). Rows whose date does not parse are dropped with a warning;
// they never fail the load.
//
// # Consistency
//
//   - Every save writes the rows sorted ascending by date (stable for ties)
//   - Saves go through a temporary file in the same directory followed by a
//     rename, so a failed save never leaves a half-written file
//   - An empty collection is saved as a header-only file
//   - A failed Insert or Replace leaves memory and disk diverged; callers
//     must treat ErrPersist as fatal
//
// # Location
//
// The default store lives at $HOME/.events/events.csv. The store never
// creates the directory or the file; ResolvePath reports a PathError with
// a remediation message instead.
//
// There is no locking. One process is expected to own the file at a time.
package store
