// Package grid holds the mutable square board that searches run on.
//
// What:
//
//   - Grid wraps an N×N row-major slice of cell States (Empty, Start, End,
//     Obstacle, Visited, Path) plus the cached Start and End cells.
//   - Set enforces the single-Start / single-End invariant: painting a new
//     Start clears the previous one, and a cell loses its role as soon as it
//     is painted with anything else.
//   - Neighbors yields the in-bounds orthogonal neighbors in the fixed order
//     up, down, left, right. Searches rely on this order for tie-breaking.
//   - Mark and ClearSearch let a search write Visited/Path markings without
//     disturbing the Start/End roles, and wipe them before the next run.
//   - Parse and String read and write a plain text layout.
//
// Layout format:
//
//	S..#
//	.#..
//	.#.E
//	....
//
//	'.' empty, '#' obstacle, 'S' start, 'E' end, 'v' visited, '*' path.
//
// Complexity:
//
//   - Set, At, Traversable, Neighbors: O(1).
//   - Reset, ClearSearch, Count:       O(N²).
//
// Errors:
//
//   - ErrInvalidSize:   size < 1.
//   - ErrOutOfBounds:   coordinate outside [0,N)×[0,N).
//   - ErrInvalidState:  unknown State value.
//   - ErrEmptyLayout, ErrNonSquare, ErrLayoutRune, ErrDuplicateRole: Parse failures.
//
// A Grid is owned by a single session and is not safe for concurrent use.
package grid
