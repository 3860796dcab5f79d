package grid

import "fmt"

// Grid is an N×N board of cell states with cached Start and End cells.
// Cells are stored row-major: cells[row*size+col].
type Grid struct {
	size     int
	cells    []State
	start    Cell
	end      Cell
	hasStart bool
	hasEnd   bool
}

// New returns an empty size×size grid.
// Returns ErrInvalidSize if size < 1.
// Complexity: O(N²) time and memory.
func New(size int) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	return &Grid{
		size:  size,
		cells: make([]State, size*size),
	}, nil
}

// Size returns the board dimension N.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether c lies within [0,N)×[0,N).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// index maps c to its row-major offset. Callers check bounds first.
func (g *Grid) index(c Cell) int {
	return c.Row*g.size + c.Col
}

// Coordinate converts a row-major index back to a Cell.
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.size, Col: idx % g.size}
}

func (g *Grid) checkBounds(c Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v on %dx%d grid", ErrOutOfBounds, c, g.size, g.size)
	}
	return nil
}

// At returns the state of c.
// Returns ErrOutOfBounds if c is outside the grid.
func (g *Grid) At(c Cell) (State, error) {
	if err := g.checkBounds(c); err != nil {
		return Empty, err
	}
	return g.cells[g.index(c)], nil
}

// Set paints c with state s.
//
// Setting Start or End moves that role: the previous holder is cleared to
// Empty. A cell that held the Start or End role loses it when painted with
// any other state, so a cell is never both Obstacle and Start/End.
//
// Returns ErrOutOfBounds or ErrInvalidState.
func (g *Grid) Set(c Cell, s State) error {
	if err := g.checkBounds(c); err != nil {
		return err
	}
	if !s.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidState, uint8(s))
	}

	// drop roles held by c unless they are being re-applied
	if g.hasStart && g.start == c && s != Start {
		g.hasStart = false
	}
	if g.hasEnd && g.end == c && s != End {
		g.hasEnd = false
	}

	switch s {
	case Start:
		if g.hasStart && g.start != c {
			g.cells[g.index(g.start)] = Empty
		}
		g.start, g.hasStart = c, true
	case End:
		if g.hasEnd && g.end != c {
			g.cells[g.index(g.end)] = Empty
		}
		g.end, g.hasEnd = c, true
	}
	g.cells[g.index(c)] = s

	return nil
}

// Start returns the Start cell and whether one is set.
func (g *Grid) Start() (Cell, bool) {
	return g.start, g.hasStart
}

// End returns the End cell and whether one is set.
func (g *Grid) End() (Cell, bool) {
	return g.end, g.hasEnd
}

// Traversable reports whether c is in bounds and not an Obstacle.
func (g *Grid) Traversable(c Cell) bool {
	return g.InBounds(c) && g.cells[g.index(c)] != Obstacle
}

// Neighbors returns the in-bounds orthogonal neighbors of c in the fixed
// order up, down, left, right. Traversability is not checked.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Reset sets every cell to Empty and clears Start and End.
func (g *Grid) Reset() {
	clear(g.cells)
	g.start, g.end = Cell{}, Cell{}
	g.hasStart, g.hasEnd = false, false
}

// Mark writes a search marking (Visited or Path) onto c without changing the
// cached Start/End roles. Out-of-bounds cells and other states are ignored.
func (g *Grid) Mark(c Cell, s State) {
	if !g.InBounds(c) || (s != Visited && s != Path) {
		return
	}
	g.cells[g.index(c)] = s
}

// ClearSearch removes every Visited and Path marking, then restores the
// Start and End states on their cached cells.
func (g *Grid) ClearSearch() {
	for i, s := range g.cells {
		if s == Visited || s == Path {
			g.cells[i] = Empty
		}
	}
	if g.hasStart {
		g.cells[g.index(g.start)] = Start
	}
	if g.hasEnd {
		g.cells[g.index(g.end)] = End
	}
}

// Count returns how many cells currently hold state s.
func (g *Grid) Count(s State) int {
	n := 0
	for _, v := range g.cells {
		if v == s {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.cells = make([]State, len(g.cells))
	copy(cp.cells, g.cells)
	return &cp
}
