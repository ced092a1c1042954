package harness

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/events/internal/event"
	"github.com/roach88/events/internal/store"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
	Store    string // Final store content for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFinal store:\n")
	if e.Store == "" {
		fmt.Fprintf(&buf, "  (no store file)\n")
	}
	for _, line := range strings.SplitAfter(e.Store, "\n") {
		if line != "" {
			fmt.Fprintf(&buf, "  %s", line)
		}
	}

	return buf.String()
}

// evaluateAssertion dispatches a single assertion against the final store
// content.
func evaluateAssertion(a Assertion, s *Scenario, final string) error {
	switch a.Type {
	case AssertStoreEquals:
		return assertStoreEquals(final, a.Content)
	case AssertStoreUnchanged:
		return assertStoreEquals(final, *s.Store)
	case AssertEventCount:
		return assertEventCount(final, a.Count)
	case AssertContainsEvent:
		return assertEventPresence(final, a, true)
	case AssertLacksEvent:
		return assertEventPresence(final, a, false)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

func assertStoreEquals(final, want string) error {
	if final == want {
		return nil
	}
	return &AssertionError{
		Type:     AssertStoreEquals,
		Expected: fmt.Sprintf("%q", want),
		Actual:   fmt.Sprintf("%q", final),
		Store:    final,
	}
}

func assertEventCount(final string, want int) error {
	events, err := decodeStore(final)
	if err != nil {
		return err
	}
	if len(events) == want {
		return nil
	}
	return &AssertionError{
		Type:     AssertEventCount,
		Expected: fmt.Sprintf("%d event(s)", want),
		Actual:   fmt.Sprintf("%d event(s)", len(events)),
		Store:    final,
	}
}

// assertEventPresence checks whether the store holds an event equal to
// a.Event. present selects contains_event over lacks_event.
func assertEventPresence(final string, a Assertion, present bool) error {
	want, err := a.Event.Event()
	if err != nil {
		return err
	}
	events, err := decodeStore(final)
	if err != nil {
		return err
	}

	found := false
	for _, e := range events {
		if e == want {
			found = true
			break
		}
	}
	if found == present {
		return nil
	}

	expected, actual := "event "+want.String(), "not found in store"
	if !present {
		expected, actual = "no event "+want.String(), "found in store"
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: expected,
		Actual:   actual,
		Store:    final,
	}
}

// decodeStore parses store content. Dropped rows are not logged: a scenario
// that needs them asserts on stderr instead.
func decodeStore(content string) ([]event.Event, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	events, err := store.DecodeEvents(strings.NewReader(content), logger)
	if err != nil {
		return nil, fmt.Errorf("decode final store: %w", err)
	}
	return events, nil
}
