// Package engine turns parsed command requests into filters over the event
// store and applies them.
//
// ARCHITECTURE:
//
// Each command follows the same path:
//  1. Validate the request (ValidationError on bad flag combinations)
//  2. Read the current collection from the Repository
//  3. Build a criteria.Filter for the request
//  4. Apply it in memory
//  5. For delete only, write the survivors back through Repository.Replace
//
// List never touches the store file. Add goes straight to Repository.Insert.
//
// COMBINATION POLICIES:
//
// Selection (list) narrows: every criterion is an AND step, so each one can
// only shrink the result.
//
// Retention (delete) keeps the events for which the filter is true. Its
// steps are built in a fixed order with mixed modes:
//
//	--date D          OR  date != D
//	--before-date B   AND date >= B
//	--after-date A    AND date <= A
//	--category C      OR  category != C
//	--description P   OR  description does not start with P
//
// Because the fold is left to right, the net effect depends on which
// criteria are present. This is the established behavior of the tool and
// is pinned by tests; it is not "delete if any criterion matches".
//
// --all empties the working set before the filter is applied.
package engine
