package search

import "github.com/katalvlaran/gridpath/grid"

// Entry is a frontier item: a cell waiting to be visited together with the
// cell it was discovered from.
type Entry struct {
	Cell      grid.Cell
	Parent    grid.Cell
	HasParent bool // false only for the start entry
	Depth     int
}

// Child returns the entry for c discovered from e.
func (e Entry) Child(c grid.Cell) Entry {
	return Entry{Cell: c, Parent: e.Cell, HasParent: true, Depth: e.Depth + 1}
}

// Frontier holds entries pending exploration. Its pop order is the only
// thing that separates breadth-first from depth-first exploration.
type Frontier interface {
	Push(Entry)
	Pop() (Entry, bool)
	Len() int
}

// Strategy is a search algorithm: a frontier discipline plus a rule for
// which neighbors to push after a cell is visited.
type Strategy interface {
	// Name identifies the algorithm in results, logs and metrics.
	Name() string
	// NewFrontier returns an empty frontier sized for capacity cells.
	NewFrontier(capacity int) Frontier
	// Expand pushes the successors of the just-visited entry. seen reports
	// whether a cell was already visited in this run.
	Expand(g *grid.Grid, from Entry, seen func(grid.Cell) bool, push func(Entry))
}
