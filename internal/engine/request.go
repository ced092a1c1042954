package engine

import (
	"github.com/roach88/events/internal/event"
)

// ListRequest selects events for display. Nil and zero fields are absent
// criteria; an empty request lists everything.
type ListRequest struct {
	Today      bool
	Date       *event.Date
	BeforeDate *event.Date
	AfterDate  *event.Date
	Categories []string
	Exclude    bool
	NoCategory bool
}

// Validate rejects --exclude without a category set.
func (r ListRequest) Validate() error {
	if r.Exclude && len(r.Categories) == 0 {
		return newValidationError(ErrCodeExcludeWithoutCategories,
			`cannot use "--exclude" without "--categories"`)
	}
	return nil
}

// AddRequest describes a new event. A nil Date means today.
type AddRequest struct {
	Date        *event.Date
	Category    string
	Description string
}

// Validate requires a non-empty description. Whitespace is kept as given.
func (r AddRequest) Validate() error {
	if r.Description == "" {
		return newValidationError(ErrCodeMissingDescription,
			`"--description" is required`)
	}
	return nil
}

// DeleteRequest selects events for removal.
//
// Category and Description are pointers because an explicitly empty value
// is a real criterion: --category "" matches uncategorized events and
// --description "" matches every event.
type DeleteRequest struct {
	Date        *event.Date
	BeforeDate  *event.Date
	AfterDate   *event.Date
	Category    *string
	Description *string
	All         bool
	DryRun      bool
}

func (r DeleteRequest) hasCriteria() bool {
	return r.Date != nil || r.BeforeDate != nil || r.AfterDate != nil ||
		r.Category != nil || r.Description != nil
}

// Validate requires at least one criterion and keeps --all on its own.
func (r DeleteRequest) Validate() error {
	if !r.All && !r.hasCriteria() {
		if r.DryRun {
			return newValidationError(ErrCodeDryRunAlone,
				`"--dry-run" requires at least one other option`)
		}
		return newValidationError(ErrCodeMissingCriteria, "at least one option is required")
	}
	if r.All && r.hasCriteria() {
		return newValidationError(ErrCodeAllWithOthers, `cannot have other options with "--all"`)
	}
	return nil
}
