package dfs

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Name is the algorithm identifier reported in results.
const Name = "dfs"

// Strategy is the depth-first search.Strategy.
type Strategy struct{}

var _ search.Strategy = Strategy{}

// Name implements search.Strategy.
func (Strategy) Name() string { return Name }

// NewFrontier implements search.Strategy with a LIFO stack.
func (Strategy) NewFrontier(capacity int) search.Frontier {
	return newStack(capacity)
}

// Expand pushes every traversable neighbor in reverse fixed order. Visited
// neighbors are not filtered here; the run skips them when popped.
func (Strategy) Expand(g *grid.Grid, from search.Entry, _ func(grid.Cell) bool, push func(search.Entry)) {
	nbrs := g.Neighbors(from.Cell)
	for i := len(nbrs) - 1; i >= 0; i-- {
		if g.Traversable(nbrs[i]) {
			push(from.Child(nbrs[i]))
		}
	}
}

// New prepares a depth-first run from start to end on g.
func New(g *grid.Grid, start, end grid.Cell, opts ...search.Option) (*search.Run, error) {
	return search.New(g, Strategy{}, start, end, opts...)
}

// Search runs depth-first search to completion and returns its result.
func Search(g *grid.Grid, start, end grid.Cell, opts ...search.Option) (search.Result, error) {
	run, err := New(g, start, end, opts...)
	if err != nil {
		return search.Result{}, err
	}
	return search.Complete(run)
}
