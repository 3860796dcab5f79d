package controller_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/algorithms"
	"github.com/katalvlaran/gridpath/controller"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

func newSession(t *testing.T, n int, opts ...controller.Option) *controller.Session {
	t.Helper()
	s, err := controller.New(n, opts...)
	require.NoError(t, err)
	return s
}

func TestNew_InvalidSize(t *testing.T) {
	_, err := controller.New(0)
	assert.ErrorIs(t, err, grid.ErrInvalidSize)
}

func TestPaint_Sequence(t *testing.T) {
	s := newSession(t, 4)
	want := []grid.State{grid.Start, grid.End, grid.Obstacle, grid.Obstacle}
	for i, w := range want {
		got, err := s.Paint(grid.Cell{Row: i, Col: i})
		require.NoError(t, err)
		assert.Equal(t, w, got, "paint %d", i)
	}

	// painting a role cell keeps it
	got, err := s.Paint(grid.Cell{})
	require.NoError(t, err)
	assert.Equal(t, grid.Start, got)

	_, err = s.Paint(grid.Cell{Row: 4, Col: 0})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestErase_ReleasesRole(t *testing.T) {
	s := newSession(t, 3)
	_, _ = s.Paint(grid.Cell{})
	_, _ = s.Paint(grid.Cell{Row: 2, Col: 2})

	require.NoError(t, s.Erase(grid.Cell{}))
	_, ok := s.Grid().Start()
	assert.False(t, ok)

	// next paint refills the missing role
	got, err := s.Paint(grid.Cell{Row: 1, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, grid.Start, got)
	assert.ErrorIs(t, s.Erase(grid.Cell{Row: -1}), grid.ErrOutOfBounds)
}

func TestRun_RequiresStartAndEnd(t *testing.T) {
	s := newSession(t, 3)
	_, err := s.Run("bfs")
	assert.ErrorIs(t, err, search.ErrInvalidInvocation)

	_, _ = s.Paint(grid.Cell{})
	_, err = s.Run("bfs")
	assert.ErrorIs(t, err, search.ErrInvalidInvocation)
	assert.Nil(t, s.Active())

	_, _ = s.Paint(grid.Cell{Row: 2, Col: 2})
	_, err = s.Run("astar")
	assert.ErrorIs(t, err, algorithms.ErrUnknownAlgorithm)

	run, err := s.Run("bfs")
	require.NoError(t, err)
	assert.Same(t, run, s.Active())
	assert.Equal(t, search.Ready, run.State())
}

func TestBusy_BlocksEdits(t *testing.T) {
	s := newSession(t, 3)
	_, _ = s.Paint(grid.Cell{})
	_, _ = s.Paint(grid.Cell{Row: 2, Col: 2})
	run, err := s.Run("dfs")
	require.NoError(t, err)
	require.True(t, run.Next())
	assert.True(t, s.Busy())

	_, err = s.Paint(grid.Cell{Row: 1, Col: 1})
	assert.ErrorIs(t, err, controller.ErrBusy)
	assert.ErrorIs(t, s.Erase(grid.Cell{}), controller.ErrBusy)
	_, err = s.Run("bfs")
	assert.ErrorIs(t, err, controller.ErrBusy)

	res, err := search.Complete(run)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.False(t, s.Busy())

	// editing after a finished run clears its markings
	got, err := s.Paint(grid.Cell{Row: 1, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, grid.Obstacle, got)
	assert.Zero(t, s.Grid().Count(grid.Visited)+s.Grid().Count(grid.Path))
	assert.Nil(t, s.Active())
}

func TestReset_CancelsActiveRun(t *testing.T) {
	s := newSession(t, 5)
	_, _ = s.Paint(grid.Cell{})
	_, _ = s.Paint(grid.Cell{Row: 4, Col: 4})
	run, err := s.Run("bfs")
	require.NoError(t, err)
	require.True(t, run.Next())

	s.Reset()
	assert.False(t, run.Next())
	assert.Equal(t, search.Canceled, run.State())
	assert.Nil(t, s.Active())
	assert.Equal(t, 25, s.Grid().Count(grid.Empty))
}

func TestHandleKey(t *testing.T) {
	s := newSession(t, 3)
	act, err := s.HandleKey('b')
	assert.ErrorIs(t, err, search.ErrInvalidInvocation)
	assert.Equal(t, controller.None, act)

	_, _ = s.Paint(grid.Cell{})
	_, _ = s.Paint(grid.Cell{Row: 0, Col: 2})

	act, err = s.HandleKey('D')
	require.NoError(t, err)
	assert.Equal(t, controller.Started, act)
	assert.Equal(t, "dfs", s.Active().Algorithm())

	act, err = s.HandleKey('z')
	require.NoError(t, err)
	assert.Equal(t, controller.None, act)

	act, err = s.HandleKey('r')
	require.NoError(t, err)
	assert.Equal(t, controller.Cleared, act)
	_, ok := s.Grid().Start()
	assert.False(t, ok)
}

func TestCellAt(t *testing.T) {
	s := newSession(t, 30)
	tests := []struct {
		x, y int
		want grid.Cell
		ok   bool
	}{
		{0, 0, grid.Cell{}, true},
		{19, 19, grid.Cell{}, true},
		{20, 45, grid.Cell{Row: 2, Col: 1}, true},
		{599, 599, grid.Cell{Row: 29, Col: 29}, true},
		{600, 10, grid.Cell{Row: 0, Col: 30}, false},
		{-1, 0, grid.Cell{}, false},
	}
	for _, tc := range tests {
		got, ok := s.CellAt(tc.x, tc.y)
		assert.Equal(t, tc.ok, ok, "(%d,%d)", tc.x, tc.y)
		if tc.ok {
			assert.Equal(t, tc.want, got)
		}
	}

	term := newSession(t, 5, controller.WithCellSize(2, 1))
	got, ok := term.CellAt(7, 3)
	assert.True(t, ok)
	assert.Equal(t, grid.Cell{Row: 3, Col: 3}, got)
}

func TestAttach_ParsedLayout(t *testing.T) {
	g, err := grid.New(2)
	require.NoError(t, err)
	require.NoError(t, g.Set(grid.Cell{}, grid.Start))
	require.NoError(t, g.Set(grid.Cell{Row: 1, Col: 1}, grid.End))

	s := controller.Attach(g)
	run, err := s.Run("bfs")
	require.NoError(t, err)
	res, err := search.Complete(run)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Length())
}
