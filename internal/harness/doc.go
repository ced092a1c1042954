// Package harness runs end-to-end scenarios against the events CLI.
//
// A scenario seeds a temporary home directory with a store file, freezes
// "today", runs a sequence of command lines through the real CLI and then
// checks both the output of each step and the final store file.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: delete_before_date
//	description: "Events before the bound are removed"
//	today: "2024-06-15"
//	store: |
//	  date,category,description
//	  2024-01-01,work,Kickoff
//	steps:
//	  - args: [delete, --before-date, "2024-06-15"]
//	    expect:
//	      exit: 0
//	      stdout_contains: ["Successfully removed event(s)!"]
//	assertions:
//	  - type: event_count
//	    count: 0
//
// A step may move the frozen date first with today: "YYYY-MM-DD" or
// advance_days: N.
//
// Omitting store leaves the home directory without a .events directory,
// for exercising path errors.
//
// # Assertion Types
//
//   - store_equals: the store file content equals content exactly
//   - store_unchanged: the store file content equals the seeded store
//   - event_count: the store holds exactly count events
//   - contains_event: the store holds an event equal to event
//   - lacks_event: the store holds no event equal to event
//
// # Deterministic Testing
//
// Every step runs with testutil.FixedClock set to the scenario's today (as
// moved by earlier steps) and export timestamps pinned to midnight UTC of
// that day, so transcripts can be compared against golden files with
// RunWithGolden.
package harness
