package cli

import (
	"fmt"
	"io"

	"github.com/roach88/events/internal/engine"
	"github.com/roach88/events/internal/event"
)

// Status lines printed by the text output.
const (
	msgNoEvents     = "No events found!"
	msgAdded        = "Successfully added new event!"
	msgRemoved      = "Successfully removed event(s)!"
	msgNoneRemoved  = "No events affected!"
	msgDryRun       = "Performing dry run...\nResult:"
	msgNoCategories = "No categories found!"
	labelNoCategory = "(no category)"
)

// writeRows prints one "<event> -- <difference>" line per row, or
// msgNoEvents when there are none.
func writeRows(w io.Writer, rows []engine.Row) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, msgNoEvents)
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return err
		}
	}
	return nil
}

type listView struct {
	Today  event.Date   `json:"today" yaml:"today"`
	Filter string       `json:"filter" yaml:"filter"`
	Count  int          `json:"count" yaml:"count"`
	Events []engine.Row `json:"events" yaml:"events"`
}

func (v listView) RenderText(w io.Writer) error {
	return writeRows(w, v.Events)
}

type addView struct {
	Added  event.Event  `json:"added" yaml:"added"`
	Count  int          `json:"count" yaml:"count"`
	Events []engine.Row `json:"events" yaml:"events"`
}

func (v addView) RenderText(w io.Writer) error {
	if _, err := fmt.Fprintln(w, msgAdded); err != nil {
		return err
	}
	return writeRows(w, v.Events)
}

type deleteView struct {
	DryRun   bool         `json:"dry_run" yaml:"dry_run"`
	Filter   string       `json:"filter" yaml:"filter"`
	Removed  bool         `json:"removed" yaml:"removed"`
	Previous int          `json:"previous" yaml:"previous"`
	Current  int          `json:"current" yaml:"current"`
	Events   []engine.Row `json:"events" yaml:"events"`
}

func (v deleteView) RenderText(w io.Writer) error {
	status := msgNoneRemoved
	switch {
	case v.DryRun:
		status = msgDryRun
	case v.Removed:
		status = msgRemoved
	}
	if _, err := fmt.Fprintln(w, status); err != nil {
		return err
	}
	return writeRows(w, v.Events)
}

type categoriesView struct {
	Categories []string `json:"categories" yaml:"categories"`
}

func (v categoriesView) RenderText(w io.Writer) error {
	if len(v.Categories) == 0 {
		_, err := fmt.Fprintln(w, msgNoCategories)
		return err
	}
	for _, c := range v.Categories {
		if c == "" {
			c = labelNoCategory
		}
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
	}
	return nil
}

type exportView struct {
	Path  string `json:"path" yaml:"path"`
	Count int    `json:"count" yaml:"count"`
}

func (v exportView) RenderText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Exported %d event(s) to %s\n", v.Count, v.Path)
	return err
}
