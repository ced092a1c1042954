package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/events/internal/event"
)

// Scenario defines an end-to-end test of the CLI.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Today is the frozen current date, YYYY-MM-DD.
	Today string `yaml:"today"`

	// Store is the initial content of ~/.events/events.csv.
	// If nil, the .events directory is not created at all.
	Store *string `yaml:"store,omitempty"`

	// Steps are command lines run in order against the same home.
	Steps []Step `yaml:"steps"`

	// Assertions validate the store file after the last step.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step runs one command line. Args exclude the program name.
type Step struct {
	Args []string `yaml:"args"`

	// Today, if set, moves the frozen date before the step runs.
	Today string `yaml:"today,omitempty"`

	// AdvanceDays moves the frozen date by this many days (after Today).
	AdvanceDays int `yaml:"advance_days,omitempty"`

	// Expect validates the step's outcome. If nil, the step must exit 0.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies the expected outcome of a step.
type ExpectClause struct {
	// Exit is the expected exit code.
	Exit int `yaml:"exit"`

	// Stdout, if set, must equal standard output exactly.
	Stdout *string `yaml:"stdout,omitempty"`

	// StdoutContains lists substrings that must appear on standard output.
	StdoutContains []string `yaml:"stdout_contains,omitempty"`

	// StderrContains lists substrings that must appear on standard error.
	StderrContains []string `yaml:"stderr_contains,omitempty"`
}

// Assertion validates the final store.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Content is the expected file content (store_equals).
	Content string `yaml:"content,omitempty"`

	// Count is the expected number of events (event_count).
	Count int `yaml:"count,omitempty"`

	// Event is the event looked for (contains_event, lacks_event).
	Event *EventEntry `yaml:"event,omitempty"`
}

// EventEntry describes an event in a scenario file.
type EventEntry struct {
	Date        string `yaml:"date"`
	Category    string `yaml:"category,omitempty"`
	Description string `yaml:"description"`
}

// Event converts s into an event.Event.
func (s EventEntry) Event() (event.Event, error) {
	d, err := event.ParseDate(s.Date)
	if err != nil {
		return event.Event{}, err
	}
	return event.New(d, s.Category, s.Description), nil
}

// Assertion type constants.
const (
	AssertStoreEquals    = "store_equals"
	AssertStoreUnchanged = "store_unchanged"
	AssertEventCount     = "event_count"
	AssertContainsEvent  = "contains_event"
	AssertLacksEvent     = "lacks_event"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Parse YAML with strict field validation (catches typos like "assertion:" vs "assertions:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if _, err := event.ParseDate(s.Today); err != nil {
		return fmt.Errorf("today: %w", err)
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if len(step.Args) == 0 {
			return fmt.Errorf("steps[%d]: args is required", i)
		}
		if step.Today != "" {
			if _, err := event.ParseDate(step.Today); err != nil {
				return fmt.Errorf("steps[%d]: today: %w", i, err)
			}
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion, s); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion, s *Scenario) error {
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertStoreEquals:
	case AssertStoreUnchanged:
		if s.Store == nil {
			return fmt.Errorf("assertions[%d]: store_unchanged requires a seeded store", index)
		}
	case AssertEventCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for event_count", index)
		}
	case AssertContainsEvent, AssertLacksEvent:
		if a.Event == nil {
			return fmt.Errorf("assertions[%d]: event is required for %s", index, a.Type)
		}
		if _, err := a.Event.Event(); err != nil {
			return fmt.Errorf("assertions[%d]: %w", index, err)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
