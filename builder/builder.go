// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// builder.go — Build entry point, options and sentinel errors.

package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors. Callers branch with errors.Is.
var (
	// ErrTooSmall indicates a size or spacing parameter below its minimum.
	ErrTooSmall = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a density outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrNilConstructor indicates a nil Constructor passed to Build.
	ErrNilConstructor = errors.New("builder: nil constructor")
)

// config is the resolved set of knobs handed to every Constructor.
type config struct {
	rng *rand.Rand // nil: no randomness available
}

// Constructor applies one layout step to g.
type Constructor func(g *grid.Grid, cfg config) error

// Option customizes Build.
type Option func(*config)

// WithSeed uses a new RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses r for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// Build creates an empty size×size grid and applies cons in order.
func Build(size int, opts []Option, cons ...Constructor) (*grid.Grid, error) {
	g, err := grid.New(size)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	return g, nil
}

// wall sets c to Obstacle unless it holds the Start or End role.
func wall(g *grid.Grid, c grid.Cell) error {
	s, err := g.At(c)
	if err != nil {
		return err
	}
	if s == grid.Start || s == grid.End {
		return nil
	}
	return g.Set(c, grid.Obstacle)
}
