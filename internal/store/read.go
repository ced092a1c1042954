package store

import (
	"fmt"
	"os"
	"slices"

	"github.com/roach88/events/internal/event"
)

// Load reads the store file and replaces the in-memory collection.
// On any read or decode failure the collection is left untouched and the
// error wraps ErrLoad. Rows with bad dates are skipped, not failures.
func (s *Store) Load() error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()

	events, err := DecodeEvents(f, s.logger)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLoad, s.path, err)
	}

	s.events = events
	s.logger.Debug("events loaded", "path", s.path, "count", len(events))
	return nil
}

// Events returns a copy of the in-memory collection in its current order.
// After a Load that is file order; after a save it is date order.
func (s *Store) Events() []event.Event {
	return slices.Clone(s.events)
}

// Categories returns every distinct category, sorted by byte order.
// The empty category is included when an uncategorized event exists.
func (s *Store) Categories() []string {
	seen := make(map[string]struct{}, len(s.events))
	categories := make([]string, 0, len(s.events))
	for _, e := range s.events {
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		categories = append(categories, e.Category)
	}
	slices.Sort(categories)
	return categories
}
