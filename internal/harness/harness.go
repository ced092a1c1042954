package harness

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/roach88/events/internal/cli"
	"github.com/roach88/events/internal/event"
	"github.com/roach88/events/internal/store"
	"github.com/roach88/events/internal/testutil"
)

// Harness is the test execution engine.
// It runs scenario steps against one temporary home directory.
type Harness struct {
	home  string
	path  string
	clock *testutil.FixedClock
}

// Run executes a test scenario and returns the result.
//
// Each scenario runs in a fresh temporary home directory which is removed
// afterwards.
//
// Execution flow:
// 1. Create the home directory and seed the store file
// 2. Run each step through cli.Execute and check its expect clause
// 3. Read the final store file and evaluate assertions
func Run(scenario *Scenario) (*Result, error) {
	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	home, err := os.MkdirTemp("", "events-scenario-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create home directory: %w", err)
	}
	defer os.RemoveAll(home)

	h, err := newHarness(home, scenario)
	if err != nil {
		return nil, err
	}

	result := NewResult()
	for i, step := range scenario.Steps {
		h.moveClock(step)
		trace := h.execute(step.Args)
		result.AddStep(trace)
		checkExpect(i, step, trace, result)
	}

	final, err := h.readStore()
	if err != nil {
		return nil, err
	}
	result.FinalStore = final

	for i, assertion := range scenario.Assertions {
		if err := evaluateAssertion(assertion, scenario, final); err != nil {
			result.AddError(fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}

	return result, nil
}

func newHarness(home string, scenario *Scenario) (*Harness, error) {
	h := &Harness{
		home:  home,
		path:  store.DefaultPath(home),
		clock: testutil.NewFixedClock(scenario.Today),
	}

	if scenario.Store == nil {
		return h, nil
	}
	if err := os.Mkdir(filepath.Dir(h.path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	if err := os.WriteFile(h.path, []byte(*scenario.Store), 0o644); err != nil {
		return nil, fmt.Errorf("failed to seed store: %w", err)
	}
	return h, nil
}

// moveClock applies the step's date changes to the frozen clock.
func (h *Harness) moveClock(step Step) {
	if step.Today != "" {
		h.clock.Set(event.MustParseDate(step.Today))
	}
	if step.AdvanceDays != 0 {
		h.clock.AdvanceDays(step.AdvanceDays)
	}
}

func (h *Harness) execute(args []string) StepTrace {
	var stdout, stderr bytes.Buffer
	opts := &cli.RootOptions{
		Home:  h.home,
		Clock: h.clock,
		Now:   func() time.Time { return h.clock.Today().Time() },
	}
	code := cli.Execute(args, &stdout, &stderr, opts)

	return StepTrace{
		Args:     args,
		ExitCode: code,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
}

func (h *Harness) readStore() (string, error) {
	data, err := os.ReadFile(h.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read final store: %w", err)
	}
	return string(data), nil
}

// checkExpect records a result error for every way trace misses step's
// expect clause.
func checkExpect(index int, step Step, trace StepTrace, result *Result) {
	expect := step.Expect
	if expect == nil {
		expect = &ExpectClause{Exit: cli.ExitSuccess}
	}
	prefix := fmt.Sprintf("steps[%d] %s", index, commandLine(step.Args))

	if trace.ExitCode != expect.Exit {
		result.AddError(fmt.Sprintf("%s: exit code %d, want %d (stderr: %s)",
			prefix, trace.ExitCode, expect.Exit, strings.TrimSpace(trace.Stderr)))
	}
	if expect.Stdout != nil && trace.Stdout != *expect.Stdout {
		result.AddError(fmt.Sprintf("%s: stdout %q, want %q", prefix, trace.Stdout, *expect.Stdout))
	}
	for _, want := range expect.StdoutContains {
		if !strings.Contains(trace.Stdout, want) {
			result.AddError(fmt.Sprintf("%s: stdout %q does not contain %q", prefix, trace.Stdout, want))
		}
	}
	for _, want := range expect.StderrContains {
		if !strings.Contains(trace.Stderr, want) {
			result.AddError(fmt.Sprintf("%s: stderr %q does not contain %q", prefix, trace.Stderr, want))
		}
	}
}
