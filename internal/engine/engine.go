package engine

import (
	"log/slog"

	"github.com/roach88/events/internal/event"
	"github.com/roach88/events/internal/store"
)

// Repository is what the engine needs from the event store.
// *store.Store implements it.
type Repository interface {
	Events() []event.Event
	Insert(e event.Event) error
	Replace(events []event.Event) (store.ReplaceResult, error)
	Categories() []string
}

var _ Repository = (*store.Store)(nil)

// Engine executes list, add, delete and categories requests against a
// Repository.
//
// An Engine is meant for one command invocation. It holds no state of its
// own beyond its collaborators.
type Engine struct {
	repo   Repository
	clock  Clock
	logger *slog.Logger
}

// New creates an engine. A nil clock means SystemClock{}; a nil logger
// means slog.Default().
func New(repo Repository, clock Clock, logger *slog.Logger) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{repo: repo, clock: clock, logger: logger}
}

// Today returns the engine clock's current date.
func (e *Engine) Today() event.Date {
	return e.clock.Today()
}

// Categories returns the distinct categories in the store, sorted.
func (e *Engine) Categories() []string {
	return e.repo.Categories()
}
