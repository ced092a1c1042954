package store

import (
	"log/slog"

	"github.com/roach88/events/internal/event"
)

// Store holds the event collection and the path of the file backing it.
// A Store is process-local and not safe for concurrent use.
type Store struct {
	path   string
	events []event.Event
	logger *slog.Logger
}

// New returns an empty store bound to path. Nothing is read until Load.
// A nil logger falls back to slog.Default().
func New(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		path:   path,
		events: []event.Event{},
		logger: logger,
	}
}

// Open returns a store bound to path with its events loaded.
func Open(path string, logger *slog.Logger) (*Store, error) {
	s := New(path, logger)
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of events in memory.
func (s *Store) Len() int {
	return len(s.events)
}
