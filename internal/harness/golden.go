package harness

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Transcript renders the stdout side of a run as a shell session:
//
//	$ events list --today
//	2024-06-15: Dentist -- today
//	exit 0
//
// Steps are separated by a blank line. Stderr is left out because log lines
// carry timestamps.
func Transcript(result *Result) []byte {
	var buf strings.Builder
	for i, step := range result.Trace {
		if i > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(&buf, "$ %s\n", commandLine(step.Args))
		buf.WriteString(step.Stdout)
		fmt.Fprintf(&buf, "exit %d\n", step.ExitCode)
	}
	return []byte(buf.String())
}

// commandLine joins args into a readable command line, quoting arguments
// that are empty or contain whitespace.
func commandLine(args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, "events")
	for _, arg := range args {
		if arg == "" || strings.ContainsAny(arg, " \t\n") {
			arg = strconv.Quote(arg)
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}

// RunWithGolden executes a scenario and compares its transcript against a
// golden file stored in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if the transcript doesn't match.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	AssertGolden(t, scenario.Name, result)
	return result, nil
}

// AssertGolden compares the given result's transcript against a golden file
// without re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, Transcript(result))
}
