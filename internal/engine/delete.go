package engine

import (
	"fmt"

	"github.com/roach88/events/internal/criteria"
	"github.com/roach88/events/internal/event"
)

// BuildRetentionFilter builds the filter whose true result keeps an event.
// Steps are appended in a fixed order: date (OR), before (AND), after (AND),
// category (OR), description (OR). See the package documentation.
// Category and description are normalized like event text.
func BuildRetentionFilter(req DeleteRequest) criteria.Filter {
	var f criteria.Filter
	if req.Date != nil {
		f = f.Or(criteria.Not{Criterion: criteria.DateEquals{Date: *req.Date}})
	}
	if req.BeforeDate != nil {
		f = f.And(criteria.Not{Criterion: criteria.DateBefore{Date: *req.BeforeDate}})
	}
	if req.AfterDate != nil {
		f = f.And(criteria.Not{Criterion: criteria.DateAfter{Date: *req.AfterDate}})
	}
	if req.Category != nil {
		f = f.Or(criteria.Not{Criterion: criteria.CategoryIn{Categories: []string{event.Normalize(*req.Category)}}})
	}
	if req.Description != nil {
		f = f.Or(criteria.Not{Criterion: criteria.DescriptionPrefix{Prefix: event.Normalize(*req.Description)}})
	}
	return f
}

// Delete removes the events not retained by req's filter.
//
// With All the working set is emptied before the filter runs. With DryRun
// the retained set is returned and the repository is not touched.
func (e *Engine) Delete(req DeleteRequest) (*DeleteResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	working := e.repo.Events()
	if req.All {
		working = []event.Event{}
	}

	f := BuildRetentionFilter(req)
	retained := f.Apply(working)
	result := &DeleteResult{
		Today:  e.clock.Today(),
		Filter: f.String(),
		DryRun: req.DryRun,
	}

	if req.DryRun {
		e.logger.Debug("delete dry run", "filter", result.Filter, "retained", len(retained))
		result.Events = retained
		return result, nil
	}

	replaced, err := e.repo.Replace(retained)
	if err != nil {
		return nil, fmt.Errorf("delete events: %w", err)
	}
	result.Replace = replaced
	result.Events = e.repo.Events()

	e.logger.Debug("events deleted",
		"filter", result.Filter,
		"previous", replaced.Previous,
		"current", replaced.Current)
	return result, nil
}
