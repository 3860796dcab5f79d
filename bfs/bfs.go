package bfs

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Name is the algorithm identifier reported in results.
const Name = "bfs"

// Strategy is the breadth-first search.Strategy.
type Strategy struct{}

var _ search.Strategy = Strategy{}

// Name implements search.Strategy.
func (Strategy) Name() string { return Name }

// NewFrontier implements search.Strategy with a FIFO queue.
func (Strategy) NewFrontier(capacity int) search.Frontier {
	return newQueue(capacity)
}

// Expand enqueues each traversable, not yet visited neighbor in the fixed
// neighbor order.
func (Strategy) Expand(g *grid.Grid, from search.Entry, seen func(grid.Cell) bool, push func(search.Entry)) {
	for _, nbr := range g.Neighbors(from.Cell) {
		if g.Traversable(nbr) && !seen(nbr) {
			push(from.Child(nbr))
		}
	}
}

// New prepares a breadth-first run from start to end on g.
func New(g *grid.Grid, start, end grid.Cell, opts ...search.Option) (*search.Run, error) {
	return search.New(g, Strategy{}, start, end, opts...)
}

// Search runs breadth-first search to completion and returns its result.
func Search(g *grid.Grid, start, end grid.Cell, opts ...search.Option) (search.Result, error) {
	run, err := New(g, start, end, opts...)
	if err != nil {
		return search.Result{}, err
	}
	return search.Complete(run)
}
