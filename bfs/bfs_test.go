package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

func cells(t *testing.T, run *search.Run) []grid.Cell {
	t.Helper()
	var out []grid.Cell
	for step := range run.Steps() {
		out = append(out, step.Cell)
	}
	require.NoError(t, run.Err())
	return out
}

// TestBFS_OpenGrid3x3 checks visit order, path and counts on an empty 3×3 grid.
func TestBFS_OpenGrid3x3(t *testing.T) {
	g, _ := grid.New(3)
	run, err := bfs.New(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2})
	require.NoError(t, err)

	wantOrder := []grid.Cell{{0, 0}, {1, 0}, {0, 1}, {2, 0}, {1, 1}, {0, 2}, {2, 1}, {1, 2}, {2, 2}}
	assert.Equal(t, wantOrder, cells(t, run))

	res := run.Result()
	assert.Equal(t, search.Found, run.State())
	assert.True(t, res.Found)
	assert.Equal(t, "bfs", res.Algorithm)
	assert.Equal(t, 4, res.Length())
	assert.LessOrEqual(t, res.Steps, 9)
	assert.Equal(t, []grid.Cell{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}, res.Path)
}

// TestBFS_Adjacent covers a one-edge path found in two steps.
func TestBFS_Adjacent(t *testing.T) {
	g, _ := grid.New(grid.DefaultSize)
	res, err := bfs.Search(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 1, Col: 0})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 1, res.Length())
	assert.Equal(t, 2, res.Steps)
}

// TestBFS_RightNeighborAfterDown: "down" precedes "right" in the neighbor
// order, so the right-hand neighbor is the third cell visited.
func TestBFS_RightNeighborAfterDown(t *testing.T) {
	g, _ := grid.New(grid.DefaultSize)
	res, err := bfs.Search(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 1})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 1, res.Length())
	assert.Equal(t, 3, res.Steps)
}

// TestBFS_ManhattanOnOpenGrid: with no obstacles, the path length equals
// the Manhattan distance.
func TestBFS_ManhattanOnOpenGrid(t *testing.T) {
	pairs := [][2]grid.Cell{
		{{0, 0}, {29, 29}},
		{{5, 17}, {22, 3}},
		{{29, 0}, {0, 29}},
		{{14, 14}, {14, 15}},
		{{7, 7}, {7, 7}},
	}
	g, _ := grid.New(grid.DefaultSize)
	for _, p := range pairs {
		res, err := bfs.Search(g, p[0], p[1])
		require.NoError(t, err)
		assert.True(t, res.Found)
		assert.Equal(t, p[0].Manhattan(p[1]), res.Length(), "%v -> %v", p[0], p[1])
	}
}

// TestBFS_DetourAroundWall forces a detour around a vertical wall.
func TestBFS_DetourAroundWall(t *testing.T) {
	g, err := grid.Parse(stringsReader(`
S#...
.#.#.
.#.#.
.#.#E
...#.
`))
	require.NoError(t, err)
	s, _ := g.Start()
	e, _ := g.End()

	res, err := bfs.Search(g, s, e)
	require.NoError(t, err)
	require.True(t, res.Found)
	// down column 0, across row 4, up column 2, across row 0, down column 4
	assert.Equal(t, 15, res.Length())
	assert.Equal(t, s, res.Path[0])
	assert.Equal(t, e, res.Path[len(res.Path)-1])
	for i := 1; i < len(res.Path); i++ {
		assert.Equal(t, 1, res.Path[i-1].Manhattan(res.Path[i]), "path must be contiguous")
		assert.True(t, g.Traversable(res.Path[i]))
	}
}

// TestBFS_StepDepths checks that Depth never decreases along the visit order.
func TestBFS_StepDepths(t *testing.T) {
	g, _ := grid.New(6)
	run, err := bfs.New(g, grid.Cell{Row: 2, Col: 3}, grid.Cell{Row: 5, Col: 0})
	require.NoError(t, err)

	last := 0
	for step := range run.Steps() {
		assert.GreaterOrEqual(t, step.Depth, last)
		assert.Equal(t, step.Cell.Manhattan(grid.Cell{Row: 2, Col: 3}), step.Depth)
		last = step.Depth
	}
	assert.Equal(t, run.Result().Length(), last)
}
