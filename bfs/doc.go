// Package bfs provides breadth-first search over a grid.Grid, producing
// a lazily stepped search.Run that ends with an unweighted shortest path.
//
// What
//
//   - Explore cells in non-decreasing distance (edge count) from the start.
//   - Every first visit is exposed as a search.Step and marked Visited on
//     the grid; on success the path cells are marked Path.
//   - The FIFO frontier holds (cell, parent) entries. A cell may be queued
//     more than once before it is visited; later copies are skipped on
//     dequeue without producing a step.
//
// Why
//
//   - Shortest paths in edge count on an unweighted 4-connected grid.
//   - Step-by-step exposure lets a renderer animate the wavefront.
//
// Determinism
//
//	Neighbors are enqueued in the grid's fixed order up, down, left, right.
//	Among equal-length paths the discovered one is therefore always the
//	same, though not necessarily the only shortest path.
//
// Complexity (N = grid dimension)
//
//   - Time:   O(N²)   (each cell visited once, at most four pushes per visit)
//   - Memory: O(N²)   (queue, seen flags, parent links)
//
// Usage
//
//	run, err := bfs.New(g, start, end, search.WithContext(ctx))
//	if err != nil {
//		// search.ErrGridNil, search.ErrInvalidInvocation,
//		// search.ErrOptionViolation or grid.ErrOutOfBounds
//	}
//	for run.Next() {
//		draw(run.Step())
//	}
//	res := run.Result() // res.Found, res.Path, res.Steps
//
//	// Or all at once:
//	res, err := bfs.Search(g, start, end)
package bfs
