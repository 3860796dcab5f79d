package grid

import (
	"errors"
	"fmt"
)

// DefaultSize is the board dimension used when none is configured.
const DefaultSize = 30

// Sentinel errors for grid operations.
var (
	// ErrInvalidSize indicates a board dimension below one.
	ErrInvalidSize = errors.New("grid: size must be at least 1")
	// ErrOutOfBounds indicates a coordinate outside the board.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrInvalidState indicates an unknown State value.
	ErrInvalidState = errors.New("grid: invalid cell state")
	// ErrEmptyLayout indicates a text layout with no rows.
	ErrEmptyLayout = errors.New("grid: layout is empty")
	// ErrNonSquare indicates a text layout whose rows differ from its row count.
	ErrNonSquare = errors.New("grid: layout must be square")
	// ErrLayoutRune indicates an unrecognized character in a text layout.
	ErrLayoutRune = errors.New("grid: unknown layout character")
	// ErrDuplicateRole indicates a layout with more than one start or end.
	ErrDuplicateRole = errors.New("grid: layout has more than one start or end")
)

// State is the single state a cell holds at any time.
type State uint8

const (
	// Empty is a free, unexplored cell.
	Empty State = iota
	// Start is the search origin. At most one cell holds it.
	Start
	// End is the search target. At most one cell holds it.
	End
	// Obstacle blocks traversal.
	Obstacle
	// Visited marks a cell explored by the current search.
	Visited
	// Path marks a cell on the found path.
	Path
)

var stateNames = [...]string{"empty", "start", "end", "obstacle", "visited", "path"}

// String returns the lower-case state name.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Valid reports whether s is one of the declared states.
func (s State) Valid() bool {
	return s <= Path
}

// Cell is a (row, col) coordinate. Cells are plain values with no identity
// beyond their coordinates.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns the axis-aligned distance between c and o.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// neighborOffsets lists row/col deltas in the fixed order up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
