package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/roach88/events/internal/config"
	"github.com/roach88/events/internal/engine"
)

// RootOptions holds global flags for all commands, plus the settings they
// resolve to once configuration is loaded.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "yaml"
	Store   string

	// Home overrides the user's home directory (for testing).
	// If empty, os.UserHomeDir is used.
	Home string

	// Clock overrides the source of "today" (for testing).
	// If nil, defaults to engine.SystemClock.
	Clock engine.Clock

	// Now overrides the wall clock used for export timestamps (for testing).
	// If nil, defaults to time.Now.
	Now func() time.Time

	config *config.Config
	logger *slog.Logger
	home   string
}

// NewRootCommand creates the root command for the events CLI.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithOptions(&RootOptions{})
}

// NewRootCommandWithOptions creates the root command around opts, so tests
// can inject a home directory and clock.
func NewRootCommandWithOptions(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Track dated, categorized notes",
		Long: `Record dated notes and list or delete them later.

Events are kept in a CSV file, by default ~/.events/events.csv. The
directory and file must exist; they are never created automatically.

Settings may also come from ~/.events/config.yaml or EVENTS_STORE,
EVENTS_FORMAT and EVENTS_VERBOSE. Flags take precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", config.FormatText, "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.Store, "store", "", "path to the events file (default ~/.events/events.csv)")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return WrapExitError(ExitUsage, ErrCodeUsage, "", err)
	})

	// Add subcommands
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewCategoriesCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))

	return cmd
}

// resolve loads configuration and sets up logging for the invoked command.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	o.home = o.Home
	if o.home == "" {
		// A missing home only matters when the default store is needed.
		o.home, _ = os.UserHomeDir()
	}

	cfg, err := config.Load(config.Options{Home: o.home, Flags: cmd.Flags()})
	if err != nil {
		return WrapExitError(ExitUsage, ErrCodeUsage, "", err)
	}
	o.config = cfg
	o.Format = cfg.Format
	o.Verbose = cfg.Verbose
	o.Store = cfg.Store

	// Configure logging based on verbose flag
	logLevel := slog.LevelInfo
	if o.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	o.logger = slog.New(handler)
	o.logger.Debug("configuration loaded", "format", o.Format, "store", o.Store, "home", o.home)
	return nil
}

// formatter builds the output formatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

func (o *RootOptions) clock() engine.Clock {
	if o.Clock != nil {
		return o.Clock
	}
	return engine.SystemClock{}
}

func (o *RootOptions) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o *RootOptions) log() *slog.Logger {
	if o.logger == nil {
		return slog.Default()
	}
	return o.logger
}

// changedString returns a pointer to the flag's value when the user set it,
// so an explicitly empty value can be told apart from an absent one.
func changedString(flags *pflag.FlagSet, name string) *string {
	f := flags.Lookup(name)
	if f == nil || !f.Changed {
		return nil
	}
	v := f.Value.String()
	return &v
}

func usageHint(cmd *cobra.Command) string {
	return fmt.Sprintf("Run '%s --help' for usage.", cmd.CommandPath())
}
