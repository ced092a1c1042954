package criteria

import (
	"strings"

	"github.com/roach88/events/internal/event"
	"github.com/roach88/events/internal/predicate"
)

// Mode selects how a step is folded into the steps before it.
type Mode int

const (
	// ModeAnd narrows: both the previous result and the step must hold.
	ModeAnd Mode = iota

	// ModeOr widens: either the previous result or the step may hold.
	ModeOr
)

func (m Mode) String() string {
	if m == ModeOr {
		return "OR"
	}
	return "AND"
}

// Step is one criterion and the mode it is combined with.
type Step struct {
	Mode      Mode
	Criterion Criterion
}

// Filter is an ordered, left-folded combination of criteria.
// The zero Filter has no steps and matches every event.
type Filter struct {
	Steps []Step
}

// And returns f extended with an AND step. f itself is not modified.
func (f Filter) And(c Criterion) Filter {
	return f.with(Step{Mode: ModeAnd, Criterion: c})
}

// Or returns f extended with an OR step. f itself is not modified.
func (f Filter) Or(c Criterion) Filter {
	return f.with(Step{Mode: ModeOr, Criterion: c})
}

func (f Filter) with(s Step) Filter {
	steps := make([]Step, len(f.Steps), len(f.Steps)+1)
	copy(steps, f.Steps)
	return Filter{Steps: append(steps, s)}
}

// Empty reports whether f has no steps.
func (f Filter) Empty() bool {
	return len(f.Steps) == 0
}

// Predicate compiles f. An empty filter compiles to the nil (absent)
// predicate.
func (f Filter) Predicate() predicate.Predicate[event.Event] {
	var p predicate.Predicate[event.Event]
	for _, step := range f.Steps {
		next := matcher(step.Criterion)
		switch step.Mode {
		case ModeOr:
			p = predicate.Or(p, next)
		default:
			p = predicate.And(p, next)
		}
	}
	return p
}

// Apply returns the events f selects, preserving order. An empty filter
// returns events unchanged.
func (f Filter) Apply(events []event.Event) []event.Event {
	return predicate.Apply(f.Predicate(), events)
}

// Matches evaluates f against a single event.
func (f Filter) Matches(e event.Event) bool {
	p := f.Predicate()
	return p == nil || p(e)
}

// String renders f as a boolean expression, parenthesized where the mode
// changes so the left fold is explicit:
//
//	(date != 2024-01-01 OR category != "work") AND date >= 2024-06-15
//
// An empty filter renders as "true".
func (f Filter) String() string {
	if f.Empty() {
		return "true"
	}

	var sb strings.Builder
	sb.WriteString(Describe(f.Steps[0].Criterion))
	var last Mode
	for i, step := range f.Steps[1:] {
		if i > 0 && step.Mode != last {
			expr := sb.String()
			sb.Reset()
			sb.WriteString("(" + expr + ")")
		}
		sb.WriteString(" " + step.Mode.String() + " ")
		sb.WriteString(Describe(step.Criterion))
		last = step.Mode
	}
	return sb.String()
}

func matcher(c Criterion) predicate.Predicate[event.Event] {
	return func(e event.Event) bool {
		return Match(c, e)
	}
}
