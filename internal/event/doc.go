// Package event provides the Event value type and the calendar Date it is
// keyed on.
//
// This package imports nothing internal. Every other internal package builds
// on it, so it stays a leaf with no I/O and no logging.
//
// Key constraints:
//   - Event ordering is by Date only; ties have no secondary key
//   - Dates carry no time zone or time of day
//   - Text fields are NFC-normalized on construction so that category and
//     prefix matching do not depend on how the input was composed
//   - Values are never mutated after construction
package event
