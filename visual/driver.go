package visual

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/gridpath/logging"
	"github.com/katalvlaran/gridpath/search"
)

// ErrNilRun is returned when Play is called without a run.
var ErrNilRun = errors.New("visual: run is nil")

// DefaultDelay is the pause between two rendered steps.
const DefaultDelay = 50 * time.Millisecond

// Driver paces a run through a Renderer.
type Driver struct {
	r         Renderer
	delay     time.Duration
	finalOnly bool
	log       *slog.Logger
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithDelay sets the pause after each non-final frame. Negative values are
// treated as zero.
func WithDelay(d time.Duration) DriverOption {
	return func(dr *Driver) { dr.delay = max(d, 0) }
}

// WithFinalOnly skips per-step frames and renders only the outcome.
func WithFinalOnly() DriverOption {
	return func(dr *Driver) { dr.finalOnly = true }
}

// WithDriverLogger sets the logger for renderer failures.
func WithDriverLogger(l *slog.Logger) DriverOption {
	return func(dr *Driver) {
		if l != nil {
			dr.log = l
		}
	}
}

// NewDriver returns a Driver rendering through r with DefaultDelay.
func NewDriver(r Renderer, opts ...DriverOption) *Driver {
	d := &Driver{r: r, delay: DefaultDelay, log: logging.Discard()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Play drains run, rendering a frame after every step and a final frame
// for the outcome. It returns the run's result and the first error among
// rendering, pacing (ctx) and the run itself.
func (d *Driver) Play(ctx context.Context, run *search.Run) (res search.Result, err error) {
	if run == nil {
		return search.Result{}, ErrNilRun
	}
	g := run.Grid()
	if err := d.r.Init(g.Size()); err != nil {
		return run.Result(), err
	}
	defer func() {
		if serr := d.r.Shutdown(); serr != nil {
			err = errors.Join(err, serr)
		}
	}()

	drawnTerminal := false
	for run.Next() {
		if d.finalOnly {
			continue
		}
		f := Snapshot(g, run)
		if err := d.r.RenderFrame(f); err != nil {
			d.log.Error("render failed", slog.String("run_id", run.ID()), slog.Any("error", err))
			return run.Result(), err
		}
		if drawnTerminal = f.State.Terminal(); drawnTerminal {
			break
		}
		if err := pause(ctx, d.delay); err != nil {
			return run.Result(), err
		}
	}

	if !drawnTerminal {
		if err := d.r.RenderFrame(Snapshot(g, run)); err != nil {
			return run.Result(), err
		}
	}
	return run.Result(), run.Err()
}

// pause waits for d or until ctx is done.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
