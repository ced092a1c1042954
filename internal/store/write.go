package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/roach88/events/internal/event"
)

// ReplaceResult reports how a Replace changed the collection size.
type ReplaceResult struct {
	Previous int `json:"previous" yaml:"previous"`
	Current  int `json:"current" yaml:"current"`
}

// Removed reports whether the collection size changed.
//
// This is informational only: a same-size replacement with different events
// is indistinguishable from one that had no effect.
func (r ReplaceResult) Removed() bool {
	return r.Previous != r.Current
}

// Save sorts the collection ascending by date and rewrites the store file
// from scratch. Events on the same date keep their relative order.
//
// An empty collection is written as a header-only file. The write goes to a
// temporary file in the same directory which is then renamed over the store
// file, so on failure the previous file is left intact. Errors wrap
// ErrPersist.
func (s *Store) Save() error {
	slices.SortStableFunc(s.events, func(a, b event.Event) int {
		return a.Compare(b)
	})

	if err := writeAtomic(s.path, s.events); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}

	s.logger.Debug("events saved", "path", s.path, "count", len(s.events))
	return nil
}

// Insert appends e and saves. A non-nil error means memory and disk have
// diverged and the caller must stop.
func (s *Store) Insert(e event.Event) error {
	s.events = append(s.events, e)
	if err := s.Save(); err != nil {
		return err
	}
	s.logger.Debug("event inserted", "date", e.Date, "category", e.Category)
	return nil
}

// Replace swaps the collection for a copy of events and saves. The result
// compares the sizes before and after. A non-nil error means memory and disk
// have diverged and the caller must stop.
func (s *Store) Replace(events []event.Event) (ReplaceResult, error) {
	result := ReplaceResult{Previous: len(s.events), Current: len(events)}

	s.events = slices.Clone(events)
	if s.events == nil {
		s.events = []event.Event{}
	}
	if err := s.Save(); err != nil {
		return result, err
	}

	s.logger.Debug("events replaced", "previous", result.Previous, "current", result.Current)
	return result, nil
}

// writeAtomic writes events to a temporary sibling of path, syncs it and
// renames it into place. The temporary file is removed on any failure.
func writeAtomic(path string, events []event.Event) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = EncodeEvents(bw, events); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("flush temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	// Keep the permissions of the file being replaced.
	if info, statErr := os.Stat(path); statErr == nil {
		if err = os.Chmod(tmpPath, info.Mode().Perm()); err != nil {
			return fmt.Errorf("chmod temp file: %w", err)
		}
	} else if !os.IsNotExist(statErr) {
		return fmt.Errorf("stat %s: %w", path, statErr)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
