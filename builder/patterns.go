// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// patterns.go — endpoint placement and wall patterns.
//
// Complexity: every constructor is O(N²) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

const (
	probMin = 0.0
	probMax = 1.0
	minGap  = 1
)

// Endpoints places Start and End at the given cells.
func Endpoints(start, end grid.Cell) Constructor {
	return func(g *grid.Grid, _ config) error {
		if err := g.Set(start, grid.Start); err != nil {
			return fmt.Errorf("Endpoints: start %v: %w", start, err)
		}
		if err := g.Set(end, grid.End); err != nil {
			return fmt.Errorf("Endpoints: end %v: %w", end, err)
		}
		return nil
	}
}

// Corners places Start top-left and End bottom-right.
func Corners() Constructor {
	return func(g *grid.Grid, cfg config) error {
		n := g.Size()
		return Endpoints(grid.Cell{}, grid.Cell{Row: n - 1, Col: n - 1})(g, cfg)
	}
}

// RandomWalls turns each free cell into a wall with probability p.
// Requires WithSeed or WithRand even for p ∈ {0,1}.
func RandomWalls(p float64) Constructor {
	return func(g *grid.Grid, cfg config) error {
		if p < probMin || p > probMax {
			return fmt.Errorf("RandomWalls: p=%.3f not in [%.0f,%.0f]: %w", p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("RandomWalls: %w", ErrNeedRandSource)
		}
		n := g.Size()
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				// draw for every cell so the sequence does not depend on roles
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := wall(g, grid.Cell{Row: r, Col: c}); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Serpentine draws a full-width wall on every gap-th row (starting at row
// gap), leaving one opening that alternates between the right and left
// edges. The only route zig-zags through every corridor.
func Serpentine(gap int) Constructor {
	return func(g *grid.Grid, _ config) error {
		if gap < minGap {
			return fmt.Errorf("Serpentine: gap=%d < %d: %w", gap, minGap, ErrTooSmall)
		}
		n := g.Size()
		right := true
		for r := gap; r < n; r += gap + 1 {
			open := n - 1
			if !right {
				open = 0
			}
			for c := 0; c < n; c++ {
				if c == open {
					continue
				}
				if err := wall(g, grid.Cell{Row: r, Col: c}); err != nil {
					return err
				}
			}
			right = !right
		}
		return nil
	}
}

// Enclose walls the four orthogonal neighbors of c.
func Enclose(c grid.Cell) Constructor {
	return func(g *grid.Grid, _ config) error {
		if !g.InBounds(c) {
			return fmt.Errorf("Enclose: %v: %w", c, grid.ErrOutOfBounds)
		}
		for _, nb := range g.Neighbors(c) {
			if err := wall(g, nb); err != nil {
				return err
			}
		}
		return nil
	}
}

// Border walls the outer ring of the grid.
func Border() Constructor {
	return func(g *grid.Grid, _ config) error {
		n := g.Size()
		for i := 0; i < n; i++ {
			for _, c := range []grid.Cell{{Row: 0, Col: i}, {Row: n - 1, Col: i}, {Row: i, Col: 0}, {Row: i, Col: n - 1}} {
				if err := wall(g, c); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
