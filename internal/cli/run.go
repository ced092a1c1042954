package cli

import (
	"errors"
	"fmt"
	"io"
)

// Execute runs the CLI with args and returns the process exit code.
//
// Errors are reported through the OutputFormatter in the resolved output
// format. Usage errors in text mode are followed by the command's usage and
// a hint pointing at its help.
func Execute(args []string, stdout, stderr io.Writer, opts *RootOptions) int {
	if opts == nil {
		opts = &RootOptions{}
	}

	cmd := NewRootCommandWithOptions(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	executed, err := cmd.ExecuteC()
	if err == nil {
		return ExitSuccess
	}
	if executed == nil {
		executed = cmd
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		// Every RunE returns an ExitError, so anything else comes from cobra
		// itself: unknown commands and unexpected arguments.
		exitErr = WrapExitError(ExitUsage, ErrCodeUsage, "", err)
	}
	kind := exitErr.Kind
	if kind == "" {
		kind = ErrCodeGeneric
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    stdout,
		ErrWriter: stderr,
		Verbose:   opts.Verbose,
	}
	if fmtErr := formatter.Error(kind, exitErr.Error(), nil); fmtErr != nil {
		fmt.Fprintln(stderr, exitErr.Error())
	}
	if exitErr.Code == ExitUsage && formatter.Format != "json" && formatter.Format != "yaml" {
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, executed.UsageString())
		fmt.Fprintln(stderr, usageHint(executed))
	}

	return exitErr.Code
}
