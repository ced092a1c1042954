package cli

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/events/internal/engine"
	"github.com/roach88/events/internal/event"
	"github.com/roach88/events/internal/export"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Request engine.ListRequest
	Output  string
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export events as an iCalendar file",
		Long: `Export events as all-day iCalendar (.ics) entries.

Takes the same selection flags as list. Without --output the calendar is
written to standard output.

Example:
  events export --output events.ics
  events export --categories work > work.ics`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, cmd)
		},
	}

	addListFlags(cmd, &opts.Request)
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write to this file instead of standard output")

	return cmd
}

func runExport(opts *ExportOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

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

	if opts.Output == "" {
		w := bufio.NewWriter(cmd.OutOrStdout())
		if err := export.ICS(w, result.Events, opts.now()); err != nil {
			return WrapExitError(ExitFailure, ErrCodeGeneric, "export failed", err)
		}
		return w.Flush()
	}

	if err := writeICSFile(opts.Output, result.Events, opts.now()); err != nil {
		return WrapExitError(ExitFailure, ErrCodeGeneric, "export failed", err)
	}
	opts.log().Debug("calendar exported", "path", opts.Output, "events", len(result.Events))

	return formatter.Success(exportView{Path: opts.Output, Count: len(result.Events)})
}

func writeICSFile(path string, events []event.Event, now time.Time) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := export.ICS(w, events, now); err != nil {
		return err
	}
	return w.Flush()
}
