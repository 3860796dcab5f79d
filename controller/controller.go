// Package controller turns user input into grid edits and search runs.
//
// A Session owns one grid and at most one run. Painting follows the
// visualizer's click rules: the first painted cell becomes Start, the
// second End, every later one an Obstacle. Erasing returns a cell to Empty
// and releases its role. The grid is never edited while a run is still
// exploring it; such edits fail with ErrBusy.
package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode"

	"github.com/katalvlaran/gridpath/algorithms"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/logging"
	"github.com/katalvlaran/gridpath/search"
)

// ErrBusy is returned when the grid is edited while a run is exploring it.
var ErrBusy = errors.New("controller: search in progress")

// Action tells the host what a key press did.
type Action int

const (
	// None: the key is not bound.
	None Action = iota
	// Started: a new run was created and awaits stepping.
	Started
	// Cleared: the grid was reset.
	Cleared
)

// Default pointer geometry: a 600px window over 30 cells.
const (
	DefaultCellWidth  = 20
	DefaultCellHeight = 20
)

// Session is a single-user editing and search session.
// It is not safe for concurrent use.
type Session struct {
	g      *grid.Grid
	run    *search.Run
	cancel context.CancelFunc

	cellW, cellH int
	log          *slog.Logger
	runOpts      []search.Option
}

// Option configures a Session.
type Option func(*Session)

// WithCellSize sets the pointer geometry used by CellAt.
func WithCellSize(w, h int) Option {
	return func(s *Session) {
		if w > 0 && h > 0 {
			s.cellW, s.cellH = w, h
		}
	}
}

// WithLogger sets the session logger; runs inherit it.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRunOptions appends options passed to every run the session starts.
func WithRunOptions(opts ...search.Option) Option {
	return func(s *Session) { s.runOpts = append(s.runOpts, opts...) }
}

// New creates a session over an empty size×size grid.
func New(size int, opts ...Option) (*Session, error) {
	g, err := grid.New(size)
	if err != nil {
		return nil, err
	}
	return Attach(g, opts...), nil
}

// Attach creates a session over an existing grid, e.g. a parsed layout.
func Attach(g *grid.Grid, opts ...Option) *Session {
	s := &Session{
		g:     g,
		cellW: DefaultCellWidth,
		cellH: DefaultCellHeight,
		log:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Grid returns the session grid for rendering.
func (s *Session) Grid() *grid.Grid { return s.g }

// Active returns the current run, or nil.
func (s *Session) Active() *search.Run { return s.run }

// Busy reports whether a run is still exploring.
func (s *Session) Busy() bool {
	return s.run != nil && !s.run.State().Terminal()
}

// Paint applies a left click at c and returns the state it received.
// Cells holding the Start or End role are left alone.
func (s *Session) Paint(c grid.Cell) (grid.State, error) {
	if err := s.edit(); err != nil {
		return grid.Empty, err
	}
	cur, err := s.g.At(c)
	if err != nil {
		return grid.Empty, err
	}
	if cur == grid.Start || cur == grid.End {
		return cur, nil
	}

	next := grid.Obstacle
	if _, ok := s.g.Start(); !ok {
		next = grid.Start
	} else if _, ok := s.g.End(); !ok {
		next = grid.End
	}
	if err := s.g.Set(c, next); err != nil {
		return grid.Empty, err
	}
	return next, nil
}

// Erase applies a right click at c: the cell becomes Empty.
func (s *Session) Erase(c grid.Cell) error {
	if err := s.edit(); err != nil {
		return err
	}
	return s.g.Set(c, grid.Empty)
}

// Reset cancels any active run and empties the grid.
func (s *Session) Reset() {
	s.stop()
	s.g.Reset()
	s.log.Debug("grid reset")
}

// Run starts the named algorithm between the grid's Start and End.
// The returned run is stepped by the caller (a driver or UI tick).
//
// Returns ErrBusy, algorithms.ErrUnknownAlgorithm, or
// search.ErrInvalidInvocation when Start or End is missing.
func (s *Session) Run(name string) (*search.Run, error) {
	strategy, err := algorithms.Lookup(name)
	if err != nil {
		return nil, err
	}
	return s.start(strategy)
}

// HandleKey applies a key binding: an algorithm key ('b', 'd') starts a
// run, 'r' resets. Unbound keys return None.
func (s *Session) HandleKey(key rune) (Action, error) {
	if key == 'r' || key == 'R' {
		s.Reset()
		return Cleared, nil
	}
	strategy, ok := algorithms.ForKey(unicode.ToLower(key))
	if !ok {
		return None, nil
	}
	if _, err := s.start(strategy); err != nil {
		return None, err
	}
	return Started, nil
}

// CellAt maps pointer coordinates to a cell using the session geometry.
func (s *Session) CellAt(x, y int) (grid.Cell, bool) {
	if x < 0 || y < 0 {
		return grid.Cell{}, false
	}
	c := grid.Cell{Row: y / s.cellH, Col: x / s.cellW}
	return c, s.g.InBounds(c)
}

func (s *Session) start(strategy search.Strategy) (*search.Run, error) {
	if s.Busy() {
		return nil, ErrBusy
	}
	s.stop()

	ctx, cancel := context.WithCancel(context.Background())
	opts := append([]search.Option{
		search.WithContext(ctx),
		search.WithLogger(s.log),
	}, s.runOpts...)
	run, err := search.FromGrid(s.g, strategy, opts...)
	if err != nil {
		cancel()
		return nil, err
	}
	s.run, s.cancel = run, cancel
	s.log.Debug("run started", slog.String("run_id", run.ID()), slog.String("algorithm", run.Algorithm()))
	return run, nil
}

// edit guards grid mutations. Markings of a finished run are cleared so
// the user edits a clean grid.
func (s *Session) edit() error {
	if s.Busy() {
		return fmt.Errorf("%w: %s run %s", ErrBusy, s.run.Algorithm(), s.run.ID())
	}
	if s.run != nil {
		s.stop()
		s.g.ClearSearch()
	}
	return nil
}

func (s *Session) stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.run, s.cancel = nil, nil
}
