// Package search defines the run state machine, step/result types, options
// and errors shared by the bfs and dfs strategies.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/logging"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrInvalidInvocation is returned when a run is requested without a
	// usable start and end (unset, on an obstacle, or no strategy).
	ErrInvalidInvocation = errors.New("search: invalid invocation")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrStepLimit is returned when a run reaches its MaxSteps budget.
	ErrStepLimit = errors.New("search: step limit reached")
)

// State is the lifecycle position of a Run.
type State int

const (
	// Ready: created, nothing explored yet.
	Ready State = iota
	// Exploring: at least one step has been requested.
	Exploring
	// Found: the end cell was reached.
	Found
	// Exhausted: the frontier emptied without reaching the end.
	Exhausted
	// Canceled: the run context was done before the next step.
	Canceled
	// Aborted: a hook failed or the step limit was hit.
	Aborted
)

var stateNames = [...]string{"ready", "exploring", "found", "exhausted", "canceled", "aborted"}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Terminal reports whether s ends a run.
func (s State) Terminal() bool {
	return s >= Found
}

// Step is one exploration event: a cell visited for the first time.
type Step struct {
	// Cell is the visited cell.
	Cell grid.Cell
	// Index is the 0-based visit order within the run.
	Index int
	// Depth is the number of edges from start along the discovered tree.
	Depth int
}

// Result is the terminal outcome of a run.
type Result struct {
	// Algorithm is the strategy name ("bfs", "dfs").
	Algorithm string
	// Found reports whether the end cell was reached.
	Found bool
	// Path lists the cells from start to end inclusive; empty if not found.
	Path []grid.Cell
	// Steps is the number of Step events emitted.
	Steps int
}

// Length returns the path length in edges (start excluded).
func (r Result) Length() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Observer is notified once when a run reaches a terminal state.
type Observer interface {
	ObserveRun(res Result, final State, elapsed time.Duration)
}

// Option configures a Run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// the run is created.
type Option func(*Options)

// Options holds parameters and callbacks for a run.
type Options struct {
	// Ctx is checked before every emitted step.
	Ctx context.Context

	// OnStep is called after each step is emitted. Returning an error
	// aborts the run and the error is surfaced by Run.Err.
	OnStep func(Step) error

	// MaxSteps, if > 0, aborts the run with ErrStepLimit once that many
	// steps were emitted and another one is due. 0 means no limit.
	MaxSteps int

	// Logger receives run lifecycle records.
	Logger *slog.Logger

	// RunID tags log records; a random UUID when empty.
	RunID string

	// Observer, if non-nil, receives the terminal outcome.
	Observer Observer

	err error
}

// DefaultOptions returns Options with a background context, a no-op hook,
// no step limit and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnStep: func(Step) error { return nil },
		Logger: logging.Discard(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers a callback run after every emitted step.
func WithOnStep(fn func(Step) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithMaxSteps bounds the number of emitted steps.
//
//	n > 0: limit to n steps
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithLogger sets the logger for run lifecycle records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRunID overrides the generated run identifier.
func WithRunID(id string) Option {
	return func(o *Options) {
		o.RunID = id
	}
}

// WithObserver registers an Observer for the terminal outcome.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}
