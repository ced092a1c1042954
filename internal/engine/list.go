package engine

import (
	"github.com/roach88/events/internal/criteria"
	"github.com/roach88/events/internal/event"
)

// BuildListFilter AND-composes the request's criteria in a fixed order:
// today, date, before, after, categories (negated with Exclude), no
// category. Every step narrows. Categories are normalized like event text.
func BuildListFilter(req ListRequest, today event.Date) criteria.Filter {
	var f criteria.Filter
	if req.Today {
		f = f.And(criteria.DateEquals{Date: today})
	}
	if req.Date != nil {
		f = f.And(criteria.DateEquals{Date: *req.Date})
	}
	if req.BeforeDate != nil {
		f = f.And(criteria.DateBefore{Date: *req.BeforeDate})
	}
	if req.AfterDate != nil {
		f = f.And(criteria.DateAfter{Date: *req.AfterDate})
	}
	if len(req.Categories) > 0 {
		categories := make([]string, len(req.Categories))
		for i, c := range req.Categories {
			categories[i] = event.Normalize(c)
		}
		var c criteria.Criterion = criteria.CategoryIn{Categories: categories}
		if req.Exclude {
			c = criteria.Not{Criterion: c}
		}
		f = f.And(c)
	}
	if req.NoCategory {
		f = f.And(criteria.NoCategory{})
	}
	return f
}

// List returns the events matching req, in store order. It never writes.
func (e *Engine) List(req ListRequest) (*ListResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	today := e.clock.Today()
	f := BuildListFilter(req, today)
	events := f.Apply(e.repo.Events())

	e.logger.Debug("list", "filter", f.String(), "matched", len(events))
	return &ListResult{Today: today, Filter: f.String(), Events: events}, nil
}
