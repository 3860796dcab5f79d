package dfs_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// recursiveOrder is the textbook recursive DFS used as an oracle for the
// explicit-stack implementation.
func recursiveOrder(g *grid.Grid, start, end grid.Cell) (order []grid.Cell, path []grid.Cell, found bool) {
	visited := map[grid.Cell]bool{}
	var walk func(cur grid.Cell, acc []grid.Cell) bool
	walk = func(cur grid.Cell, acc []grid.Cell) bool {
		if visited[cur] {
			return false
		}
		visited[cur] = true
		order = append(order, cur)
		if cur == end {
			path = append(append([]grid.Cell{}, acc...), cur)
			return true
		}
		for _, n := range g.Neighbors(cur) {
			if g.Traversable(n) && walk(n, append(acc, cur)) {
				return true
			}
		}
		return false
	}
	found = walk(start, nil)
	return order, path, found
}

// TestDFS_OpenGrid3x3 checks visit order and path on an empty 3×3 grid.
func TestDFS_OpenGrid3x3(t *testing.T) {
	g, _ := grid.New(3)
	run, err := dfs.New(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2})
	require.NoError(t, err)

	var order []grid.Cell
	for step := range run.Steps() {
		order = append(order, step.Cell)
	}
	require.NoError(t, run.Err())

	want := []grid.Cell{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {1, 1}, {0, 1}, {0, 2}, {1, 2}, {2, 2}}
	assert.Equal(t, want, order)

	res := run.Result()
	assert.Equal(t, search.Found, run.State())
	assert.Equal(t, "dfs", res.Algorithm)
	assert.Equal(t, want, res.Path, "on this grid the DFS path snakes through every cell")
	assert.Equal(t, 8, res.Length())
	assert.Equal(t, 9, res.Steps)
}

// TestDFS_MatchesRecursive compares the explicit stack with the recursive
// formulation on several layouts.
func TestDFS_MatchesRecursive(t *testing.T) {
	layouts := map[string]string{
		"Open": `
S....
.....
.....
.....
....E`,
		"Maze": `
S.#...
.##.#.
....#.
##.##.
...#..
.#...E`,
		"Unreachable": `
S..#.
...#.
####.
.....
....E`,
		"Pocket": `
.....
.###.
.#E#.
.....
S....`,
	}
	for name, layout := range layouts {
		t.Run(name, func(t *testing.T) {
			g, err := grid.Parse(strings.NewReader(layout))
			require.NoError(t, err)
			s, _ := g.Start()
			e, _ := g.End()

			wantOrder, wantPath, wantFound := recursiveOrder(g, s, e)

			run, err := dfs.New(g, s, e)
			require.NoError(t, err)
			var order []grid.Cell
			for step := range run.Steps() {
				order = append(order, step.Cell)
			}
			res := run.Result()

			assert.Equal(t, wantOrder, order)
			assert.Equal(t, wantFound, res.Found)
			if wantFound {
				assert.Equal(t, wantPath, res.Path)
			} else {
				assert.Empty(t, res.Path)
				assert.Equal(t, search.Exhausted, run.State())
			}
		})
	}
}

// TestDFS_LargeGridNoRecursion runs on a grid large enough that a naive
// recursive walk would go hundreds of thousands of frames deep.
func TestDFS_LargeGridNoRecursion(t *testing.T) {
	const n = 500
	g, _ := grid.New(n)
	res, err := dfs.Search(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: n - 1, Col: n - 1})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.GreaterOrEqual(t, res.Length(), 2*(n-1))
}
