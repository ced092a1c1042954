package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/events/internal/engine"
)

// DeleteOptions holds flags for the delete command.
type DeleteOptions struct {
	*RootOptions
	Request engine.DeleteRequest
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeleteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete events",
		Long: `Delete events and print the ones that remain.

--date, --category and --description keep every event that does not match
them; --before-date and --after-date additionally require survivors to lie
inside the given bounds. Options are applied in that fixed order.

--all deletes everything and cannot be combined with other options.
--dry-run prints the result without changing the store file.

Example:
  events delete --before-date 2024-01-01
  events delete --category work --dry-run
  events delete --all`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Request.Category = changedString(cmd.Flags(), "category")
			opts.Request.Description = changedString(cmd.Flags(), "description")
			return runDelete(opts, cmd)
		},
	}

	dateFlag(cmd.Flags(), &opts.Request.Date, "date", "delete events on this date")
	dateFlag(cmd.Flags(), &opts.Request.BeforeDate, "before-date", "delete events before this date")
	dateFlag(cmd.Flags(), &opts.Request.AfterDate, "after-date", "delete events after this date")
	cmd.Flags().String("category", "", "delete events in this category")
	cmd.Flags().String("description", "", "delete events whose description starts with this")
	cmd.Flags().BoolVar(&opts.Request.All, "all", false, "delete all events")
	cmd.Flags().BoolVar(&opts.Request.DryRun, "dry-run", false, "show the result without saving")

	return cmd
}

func runDelete(opts *DeleteOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if err := opts.Request.Validate(); err != nil {
		return commandError(err)
	}

	eng, err := opts.openEngine()
	if err != nil {
		return err
	}

	result, err := eng.Delete(opts.Request)
	if err != nil {
		return commandError(err)
	}

	formatter.VerboseLog("retention filter: %s", result.Filter)
	return formatter.Success(deleteView{
		DryRun:   result.DryRun,
		Filter:   result.Filter,
		Removed:  result.Removed(),
		Previous: result.Replace.Previous,
		Current:  result.Replace.Current,
		Events:   engine.Annotate(result.Events, result.Today),
	})
}
