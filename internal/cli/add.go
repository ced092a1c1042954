package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/events/internal/engine"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Request engine.AddRequest
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an event",
		Long: `Add an event and print the full list.

The date defaults to today. Identical events may be added more than once.

Example:
  events add --description "Dentist"
  events add --date 2024-06-15 --category work --description "Planning"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, cmd)
		},
	}

	dateFlag(cmd.Flags(), &opts.Request.Date, "date", "date of the event (default today)")
	cmd.Flags().StringVar(&opts.Request.Category, "category", "", "category of the event")
	cmd.Flags().StringVar(&opts.Request.Description, "description", "", "description of the event (required)")

	return cmd
}

func runAdd(opts *AddOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if err := opts.Request.Validate(); err != nil {
		return commandError(err)
	}

	eng, err := opts.openEngine()
	if err != nil {
		return err
	}

	result, err := eng.Add(opts.Request)
	if err != nil {
		return commandError(err)
	}

	formatter.VerboseLog("added: %s", result.Added)
	return formatter.Success(addView{
		Added:  result.Added,
		Count:  len(result.Events),
		Events: engine.Annotate(result.Events, result.Today),
	})
}
