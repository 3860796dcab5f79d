package search

import (
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/grid"
)

// Run is one lazy, finite, non-restartable search over a grid.
//
// Use it like a scanner:
//
//	for run.Next() {
//		step := run.Step()
//		// redraw
//	}
//	if err := run.Err(); err != nil { ... }
//	res := run.Result()
//
// Each call to Next pops entries until a cell is visited for the first time,
// marks it Visited on the grid and exposes it as the current Step. Entries
// whose cell was already visited are skipped without producing a step.
type Run struct {
	g        *grid.Grid
	strategy Strategy
	opts     Options
	log      *slog.Logger

	start, end grid.Cell
	frontier   Frontier
	seen       []bool
	parent     []int // row-major index of the discovering cell, -1 for none

	state  State
	step   Step
	steps  int
	result Result
	err    error
	began  time.Time
}

// New prepares a run of strategy over g from start to end.
//
// The grid's previous Visited/Path markings are cleared first, so a run
// never depends on leftovers from an earlier one.
//
// Returns ErrGridNil, ErrOptionViolation, grid.ErrOutOfBounds for
// coordinates outside the grid, or ErrInvalidInvocation when the strategy
// is nil or start/end sits on an obstacle.
func New(g *grid.Grid, strategy Strategy, start, end grid.Cell, opts ...Option) (*Run, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if strategy == nil {
		return nil, fmt.Errorf("%w: nil strategy", ErrInvalidInvocation)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, c := range []grid.Cell{start, end} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("search: endpoint %v: %w", c, grid.ErrOutOfBounds)
		}
		if !g.Traversable(c) {
			return nil, fmt.Errorf("%w: endpoint %v is an obstacle", ErrInvalidInvocation, c)
		}
	}
	if o.RunID == "" {
		o.RunID = uuid.NewString()
	}

	g.ClearSearch()

	n := g.Size() * g.Size()
	r := &Run{
		g:        g,
		strategy: strategy,
		opts:     o,
		log:      o.Logger.With(slog.String("run_id", o.RunID), slog.String("algorithm", strategy.Name())),
		start:    start,
		end:      end,
		frontier: strategy.NewFrontier(n),
		seen:     make([]bool, n),
		parent:   make([]int, n),
		state:    Ready,
		result:   Result{Algorithm: strategy.Name()},
	}
	for i := range r.parent {
		r.parent[i] = -1
	}
	r.frontier.Push(Entry{Cell: start})

	return r, nil
}

// FromGrid prepares a run between the grid's own Start and End cells.
// Returns ErrInvalidInvocation if either is unset.
func FromGrid(g *grid.Grid, strategy Strategy, opts ...Option) (*Run, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	start, ok := g.Start()
	if !ok {
		return nil, fmt.Errorf("%w: start cell not set", ErrInvalidInvocation)
	}
	end, ok := g.End()
	if !ok {
		return nil, fmt.Errorf("%w: end cell not set", ErrInvalidInvocation)
	}
	return New(g, strategy, start, end, opts...)
}

// ID returns the run identifier used in log records.
func (r *Run) ID() string { return r.opts.RunID }

// Algorithm returns the strategy name.
func (r *Run) Algorithm() string { return r.strategy.Name() }

// Grid returns the grid the run explores and marks.
func (r *Run) Grid() *grid.Grid { return r.g }

// State returns the current lifecycle state.
func (r *Run) State() State { return r.state }

// Step returns the step produced by the last successful Next.
func (r *Run) Step() Step { return r.step }

// Err returns the error that ended the run, if any. Exhausted is not an error.
func (r *Run) Err() error { return r.err }

// Result returns the outcome. Before the run is terminal it reports the
// steps taken so far with Found == false.
func (r *Run) Result() Result {
	res := r.result
	res.Steps = r.steps
	return res
}

// Next advances to the next visited cell. It returns false once the run is
// terminal; check Err and Result afterwards.
func (r *Run) Next() bool {
	switch r.state {
	case Ready:
		r.state = Exploring
		r.began = time.Now()
		r.log.Debug("search started",
			slog.String("start", r.start.String()),
			slog.String("end", r.end.String()))
	case Exploring:
	default:
		return false
	}

	for {
		e, ok := r.frontier.Pop()
		if !ok {
			r.finish(Exhausted, nil)
			return false
		}
		idx := r.index(e.Cell)
		if r.seen[idx] {
			continue
		}

		// cancellation check before emitting
		if err := r.opts.Ctx.Err(); err != nil {
			r.finish(Canceled, err)
			return false
		}
		if r.opts.MaxSteps > 0 && r.steps >= r.opts.MaxSteps {
			r.finish(Aborted, fmt.Errorf("%w: %d", ErrStepLimit, r.opts.MaxSteps))
			return false
		}

		r.visit(idx, e)
		if err := r.opts.OnStep(r.step); err != nil {
			r.finish(Aborted, fmt.Errorf("search: OnStep error at %v: %w", e.Cell, err))
			return false
		}

		if e.Cell == r.end {
			r.result.Found = true
			r.result.Path = r.pathTo(idx)
			for _, c := range r.result.Path {
				r.g.Mark(c, grid.Path)
			}
			r.finish(Found, nil)
			return true
		}

		r.strategy.Expand(r.g, e, r.isSeen, r.frontier.Push)
		return true
	}
}

// Steps returns the remaining steps as an iterator. Breaking out of the
// loop leaves the run where it stopped.
func (r *Run) Steps() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for r.Next() {
			if !yield(r.step) {
				return
			}
		}
	}
}

// Complete drains r and returns its result and terminal error.
func Complete(r *Run) (Result, error) {
	for r.Next() {
	}
	return r.Result(), r.Err()
}

// visit marks the cell seen and Visited, records its parent and sets the
// current step.
func (r *Run) visit(idx int, e Entry) {
	r.seen[idx] = true
	if e.HasParent {
		r.parent[idx] = r.index(e.Parent)
	}
	r.g.Mark(e.Cell, grid.Visited)
	r.step = Step{Cell: e.Cell, Index: r.steps, Depth: e.Depth}
	r.steps++
}

// pathTo walks parent links from idx back to the start.
func (r *Run) pathTo(idx int) []grid.Cell {
	var rev []grid.Cell
	for at := idx; at >= 0; at = r.parent[at] {
		rev = append(rev, r.g.Coordinate(at))
	}
	path := make([]grid.Cell, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}

func (r *Run) finish(s State, err error) {
	r.state = s
	r.err = err
	res := r.Result()
	elapsed := time.Since(r.began)

	attrs := []any{
		slog.String("state", s.String()),
		slog.Int("steps", res.Steps),
		slog.Bool("found", res.Found),
		slog.Duration("elapsed", elapsed),
	}
	if res.Found {
		attrs = append(attrs, slog.Int("path_length", res.Length()))
	}
	if err != nil {
		r.log.Warn("search stopped", append(attrs, slog.Any("error", err))...)
	} else {
		r.log.Info("search finished", attrs...)
	}

	if r.opts.Observer != nil {
		r.opts.Observer.ObserveRun(res, s, elapsed)
	}
}

func (r *Run) isSeen(c grid.Cell) bool {
	return r.seen[r.index(c)]
}

func (r *Run) index(c grid.Cell) int {
	return c.Row*r.g.Size() + c.Col
}
