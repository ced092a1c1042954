package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/events/internal/engine"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Request engine.ListRequest
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		Long: `List events, optionally narrowed by date and category.

Every option narrows the result further. The store file is never modified.

Example:
  events list --today
  events list --after-date 2024-01-01 --categories work,home
  events list --categories work --exclude`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	addListFlags(cmd, &opts.Request)
	return cmd
}

// addListFlags registers the selection flags shared by list and export.
func addListFlags(cmd *cobra.Command, req *engine.ListRequest) {
	cmd.Flags().BoolVar(&req.Today, "today", false, "only events dated today")
	dateFlag(cmd.Flags(), &req.Date, "date", "only events on this date")
	dateFlag(cmd.Flags(), &req.BeforeDate, "before-date", "only events before this date")
	dateFlag(cmd.Flags(), &req.AfterDate, "after-date", "only events after this date")
	cmd.Flags().StringSliceVar(&req.Categories, "categories", nil, "only events in these categories (comma-separated)")
	cmd.Flags().BoolVar(&req.Exclude, "exclude", false, "invert --categories")
	cmd.Flags().BoolVar(&req.NoCategory, "no-category", false, "only uncategorized events")
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	// Validate before touching the store.
	if err := opts.Request.Validate(); err != nil {
		return commandError(err)
	}

	eng, err := opts.openEngine()
	if err != nil {
		return err
	}

	result, err := eng.List(opts.Request)
	if err != nil {
		return commandError(err)
	}

	formatter.VerboseLog("filter: %s", result.Filter)
	return formatter.Success(listView{
		Today:  result.Today,
		Filter: result.Filter,
		Count:  len(result.Events),
		Events: engine.Annotate(result.Events, result.Today),
	})
}
