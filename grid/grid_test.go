package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

func mustNew(t *testing.T, n int) *grid.Grid {
	t.Helper()
	g, err := grid.New(n)
	require.NoError(t, err)
	return g
}

//----------------------------------------------------------------------------//
// New, At, Set
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive sizes.
func TestNew_Errors(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := grid.New(n)
		if !errors.Is(err, grid.ErrInvalidSize) {
			t.Errorf("New(%d) error = %v; want ErrInvalidSize", n, err)
		}
	}
}

// TestNew_Empty checks that a fresh grid is all Empty with no roles.
func TestNew_Empty(t *testing.T) {
	g := mustNew(t, 3)
	assert.Equal(t, 3, g.Size())
	assert.Equal(t, 9, g.Count(grid.Empty))
	_, ok := g.Start()
	assert.False(t, ok)
	_, ok = g.End()
	assert.False(t, ok)
}

// TestOutOfBounds checks At and Set on coordinates outside the grid.
func TestOutOfBounds(t *testing.T) {
	g := mustNew(t, 3)
	cases := []grid.Cell{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}}
	for _, c := range cases {
		t.Run(c.String(), func(t *testing.T) {
			_, err := g.At(c)
			assert.ErrorIs(t, err, grid.ErrOutOfBounds)
			assert.ErrorIs(t, g.Set(c, grid.Obstacle), grid.ErrOutOfBounds)
			assert.False(t, g.Traversable(c))
		})
	}
}

// TestSet_InvalidState rejects states outside the declared set.
func TestSet_InvalidState(t *testing.T) {
	g := mustNew(t, 2)
	assert.ErrorIs(t, g.Set(grid.Cell{}, grid.State(42)), grid.ErrInvalidState)
}

// TestSet_SingleStartEnd verifies that painting a new Start/End moves the role.
func TestSet_SingleStartEnd(t *testing.T) {
	g := mustNew(t, 3)
	a, b := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 1, Col: 1}

	require.NoError(t, g.Set(a, grid.Start))
	require.NoError(t, g.Set(b, grid.Start))

	s, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, b, s)
	st, _ := g.At(a)
	assert.Equal(t, grid.Empty, st, "previous start must be cleared")
	assert.Equal(t, 1, g.Count(grid.Start))

	require.NoError(t, g.Set(a, grid.End))
	require.NoError(t, g.Set(grid.Cell{Row: 2, Col: 2}, grid.End))
	e, ok := g.End()
	require.True(t, ok)
	assert.Equal(t, grid.Cell{Row: 2, Col: 2}, e)
	assert.Equal(t, 1, g.Count(grid.End))
}

// TestSet_RoleCleared covers a role holder being repainted.
func TestSet_RoleCleared(t *testing.T) {
	cases := []struct {
		name  string
		role  grid.State
		paint grid.State
	}{
		{"StartToEmpty", grid.Start, grid.Empty},
		{"StartToObstacle", grid.Start, grid.Obstacle},
		{"EndToEmpty", grid.End, grid.Empty},
		{"EndToObstacle", grid.End, grid.Obstacle},
		{"StartToEnd", grid.Start, grid.End},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustNew(t, 2)
			c := grid.Cell{Row: 1, Col: 0}
			require.NoError(t, g.Set(c, tc.role))
			require.NoError(t, g.Set(c, tc.paint))

			var ok bool
			if tc.role == grid.Start {
				_, ok = g.Start()
			} else {
				_, ok = g.End()
			}
			assert.False(t, ok, "role %s must be cleared", tc.role)
			st, _ := g.At(c)
			assert.Equal(t, tc.paint, st)
		})
	}
}

// TestSet_SameRoleTwice keeps the role when the holder is repainted with it.
func TestSet_SameRoleTwice(t *testing.T) {
	g := mustNew(t, 2)
	c := grid.Cell{Row: 0, Col: 1}
	require.NoError(t, g.Set(c, grid.Start))
	require.NoError(t, g.Set(c, grid.Start))
	s, ok := g.Start()
	assert.True(t, ok)
	assert.Equal(t, c, s)
}

//----------------------------------------------------------------------------//
// Neighbors, Traversable
//----------------------------------------------------------------------------//

// TestNeighbors_Order checks the fixed up, down, left, right order.
func TestNeighbors_Order(t *testing.T) {
	g := mustNew(t, 3)
	got := g.Neighbors(grid.Cell{Row: 1, Col: 1})
	want := []grid.Cell{{0, 1}, {2, 1}, {1, 0}, {1, 2}}
	assert.Equal(t, want, got)
}

// TestNeighbors_Corners drops out-of-bounds neighbors but keeps the order.
func TestNeighbors_Corners(t *testing.T) {
	g := mustNew(t, 3)
	assert.Equal(t, []grid.Cell{{1, 0}, {0, 1}}, g.Neighbors(grid.Cell{Row: 0, Col: 0}))
	assert.Equal(t, []grid.Cell{{1, 2}, {2, 1}}, g.Neighbors(grid.Cell{Row: 2, Col: 2}))

	one := mustNew(t, 1)
	assert.Empty(t, one.Neighbors(grid.Cell{}))
}

// TestTraversable treats only Obstacle as blocking.
func TestTraversable(t *testing.T) {
	g := mustNew(t, 2)
	require.NoError(t, g.Set(grid.Cell{Row: 0, Col: 1}, grid.Obstacle))
	g.Mark(grid.Cell{Row: 1, Col: 0}, grid.Visited)

	assert.True(t, g.Traversable(grid.Cell{Row: 0, Col: 0}))
	assert.False(t, g.Traversable(grid.Cell{Row: 0, Col: 1}))
	assert.True(t, g.Traversable(grid.Cell{Row: 1, Col: 0}), "visited cells stay traversable")
}

//----------------------------------------------------------------------------//
// Reset, Mark, ClearSearch
//----------------------------------------------------------------------------//

// TestReset clears every cell and both roles.
func TestReset(t *testing.T) {
	g := mustNew(t, 3)
	require.NoError(t, g.Set(grid.Cell{Row: 0, Col: 0}, grid.Start))
	require.NoError(t, g.Set(grid.Cell{Row: 2, Col: 2}, grid.End))
	require.NoError(t, g.Set(grid.Cell{Row: 1, Col: 1}, grid.Obstacle))

	g.Reset()

	assert.Equal(t, 9, g.Count(grid.Empty))
	_, ok := g.Start()
	assert.False(t, ok)
	_, ok = g.End()
	assert.False(t, ok)
}

// TestMark_KeepsRoles verifies that markings do not drop Start/End.
func TestMark_KeepsRoles(t *testing.T) {
	g := mustNew(t, 2)
	s := grid.Cell{Row: 0, Col: 0}
	require.NoError(t, g.Set(s, grid.Start))

	g.Mark(s, grid.Visited)
	g.Mark(grid.Cell{Row: 9, Col: 9}, grid.Visited) // ignored
	g.Mark(grid.Cell{Row: 1, Col: 1}, grid.Obstacle) // ignored: not a marking

	st, _ := g.At(s)
	assert.Equal(t, grid.Visited, st)
	got, ok := g.Start()
	assert.True(t, ok)
	assert.Equal(t, s, got)
	assert.Equal(t, 0, g.Count(grid.Obstacle))
}

// TestClearSearch wipes markings and restores role states.
func TestClearSearch(t *testing.T) {
	g := mustNew(t, 3)
	s, e := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 2}
	require.NoError(t, g.Set(s, grid.Start))
	require.NoError(t, g.Set(e, grid.End))
	require.NoError(t, g.Set(grid.Cell{Row: 1, Col: 1}, grid.Obstacle))
	for _, c := range []grid.Cell{s, {0, 1}, e} {
		g.Mark(c, grid.Path)
	}
	g.Mark(grid.Cell{Row: 1, Col: 0}, grid.Visited)

	g.ClearSearch()

	assert.Equal(t, 0, g.Count(grid.Visited))
	assert.Equal(t, 0, g.Count(grid.Path))
	assert.Equal(t, 1, g.Count(grid.Obstacle))
	st, _ := g.At(s)
	assert.Equal(t, grid.Start, st)
	st, _ = g.At(e)
	assert.Equal(t, grid.End, st)
}

// TestClone produces an independent copy.
func TestClone(t *testing.T) {
	g := mustNew(t, 2)
	require.NoError(t, g.Set(grid.Cell{Row: 0, Col: 0}, grid.Start))
	cp := g.Clone()
	require.NoError(t, cp.Set(grid.Cell{Row: 1, Col: 1}, grid.Obstacle))

	assert.Equal(t, 0, g.Count(grid.Obstacle))
	assert.Equal(t, 1, cp.Count(grid.Obstacle))
	_, ok := cp.Start()
	assert.True(t, ok)
}

// TestCellHelpers covers Manhattan and Coordinate.
func TestCellHelpers(t *testing.T) {
	assert.Equal(t, 4, grid.Cell{Row: 0, Col: 0}.Manhattan(grid.Cell{Row: 2, Col: 2}))
	assert.Equal(t, 3, grid.Cell{Row: 3, Col: 1}.Manhattan(grid.Cell{Row: 1, Col: 2}))

	g := mustNew(t, 4)
	assert.Equal(t, grid.Cell{Row: 2, Col: 1}, g.Coordinate(9))
	assert.Equal(t, "visited", grid.Visited.String())
	assert.Equal(t, "state(9)", grid.State(9).String())
}
