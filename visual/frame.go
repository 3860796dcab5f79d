package visual

import (
	"fmt"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Frame is a render-ready snapshot. It shares nothing with the grid it was
// taken from.
type Frame struct {
	Size  int
	Cells []grid.State // row-major

	Start, End       grid.Cell
	HasStart, HasEnd bool

	// Run progress; zero values when no run is attached.
	Algorithm string
	State     search.State
	Current   search.Step
	HasStep   bool
	Steps     int
	Found     bool
	PathLen   int
}

// Snapshot copies g and, if run is non-nil, its progress.
func Snapshot(g *grid.Grid, run *search.Run) Frame {
	n := g.Size()
	f := Frame{Size: n, Cells: make([]grid.State, 0, n*n)}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			s, _ := g.At(grid.Cell{Row: row, Col: col})
			f.Cells = append(f.Cells, s)
		}
	}
	f.Start, f.HasStart = g.Start()
	f.End, f.HasEnd = g.End()

	if run != nil {
		res := run.Result()
		f.Algorithm = run.Algorithm()
		f.State = run.State()
		f.Steps = res.Steps
		f.Found = res.Found
		f.PathLen = res.Length()
		if res.Steps > 0 {
			f.Current, f.HasStep = run.Step(), true
		}
	}
	return f
}

// At returns the state of c, or grid.Empty outside the frame.
func (f Frame) At(c grid.Cell) grid.State {
	if c.Row < 0 || c.Col < 0 || c.Row >= f.Size || c.Col >= f.Size {
		return grid.Empty
	}
	return f.Cells[c.Row*f.Size+c.Col]
}

// Role reports the role a cell plays regardless of search markings:
// Start, End, or the cell's own state.
func (f Frame) Role(c grid.Cell) grid.State {
	switch {
	case f.HasStart && c == f.Start:
		return grid.Start
	case f.HasEnd && c == f.End:
		return grid.End
	}
	return f.At(c)
}

// Status is the caption shown under the grid.
func (f Frame) Status() string {
	if f.Algorithm == "" {
		return "Ready"
	}
	line := fmt.Sprintf("%s  Steps: %d", f.Algorithm, f.Steps)
	switch f.State {
	case search.Found:
		label := "Path"
		if f.Algorithm == bfs.Name {
			label = "Shortest Path"
		}
		line += fmt.Sprintf("  %s: %d cells", label, f.PathLen)
	case search.Exhausted:
		line += "  No path"
	case search.Canceled, search.Aborted:
		line += "  " + f.State.String()
	}
	return line
}
