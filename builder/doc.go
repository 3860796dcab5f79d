// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// Package builder generates grid layouts: start/end placement, random walls
// and deterministic wall patterns. Layouts feed demos, the solve command and
// benchmarks.
//
// Model:
//   - A Constructor mutates a fresh *grid.Grid given a resolved config.
//   - Build(size, opts, cons...) creates the grid and applies constructors in order,
//     so later constructors see (and may overwrite) earlier cells.
//   - Constructors never overwrite the Start or End cells with walls.
//
// Determinism:
//   - Patterns are pure functions of their parameters.
//   - RandomWalls draws from the configured RNG in row-major order; WithSeed
//     makes a layout reproducible.
//
// Errors:
//   - ErrTooSmall for sizes/gaps below the minimum.
//   - ErrInvalidProbability for densities outside [0,1].
//   - ErrNeedRandSource for RandomWalls without WithSeed/WithRand.
//   - ErrNilConstructor for a nil constructor.
//   - grid errors (ErrInvalidSize, ErrOutOfBounds) pass through wrapped.
//
// Example:
//
//	g, err := builder.Build(30,
//		[]builder.Option{builder.WithSeed(7)},
//		builder.Corners(),
//		builder.RandomWalls(0.3))
package builder
