// Package dfs implements depth-first search over a grid.Grid as a lazily
// stepped search.Run.
//
// The search uses an explicit stack instead of recursion, so large grids
// cannot overflow the call stack. Exploration order is the same as the
// recursive formulation:
//
//	visit(cell):
//	    if cell already visited: return false
//	    mark visited, emit step
//	    if cell == end: return true
//	    for each traversable neighbor in order up, down, left, right:
//	        if visit(neighbor): return true
//	    return false
//
// To reproduce it, every traversable neighbor is pushed in reverse order so
// the first neighbor is popped first, and the visited check happens on pop,
// exactly where the recursive call would make it.
//
// Key properties:
//   - First-found-wins: the returned path is deterministic but generally not
//     the shortest.
//   - Every first visit is exposed as a search.Step and marked Visited; on
//     success the path cells are marked Path.
//
// Complexity (N = grid dimension):
//
//   - Time:   O(N²) visits, at most four pushes per visit.
//   - Memory: O(N²) for the stack, seen flags and parent links.
//
// Errors:
//
//   - search.ErrGridNil, search.ErrInvalidInvocation, search.ErrOptionViolation,
//     grid.ErrOutOfBounds on creation.
//   - context errors, search.ErrStepLimit or OnStep errors from Run.Err.
package dfs
