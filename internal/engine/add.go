package engine

import (
	"fmt"

	"github.com/roach88/events/internal/event"
)

// Add builds an event from req and inserts it. The date defaults to today.
// Duplicates are allowed.
func (e *Engine) Add(req AddRequest) (*AddResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	today := e.clock.Today()
	date := today
	if req.Date != nil {
		date = *req.Date
	}

	ev := event.New(date, req.Category, req.Description)
	if err := e.repo.Insert(ev); err != nil {
		return nil, fmt.Errorf("add event: %w", err)
	}

	e.logger.Debug("event added", "date", ev.Date, "category", ev.Category)
	return &AddResult{Today: today, Added: ev, Events: e.repo.Events()}, nil
}
