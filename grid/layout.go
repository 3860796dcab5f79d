package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// layoutRunes maps each State to its character in a text layout.
var layoutRunes = [...]rune{
	Empty:    '.',
	Start:    'S',
	End:      'E',
	Obstacle: '#',
	Visited:  'v',
	Path:     '*',
}

// Rune returns the layout character for s, or '?' for an unknown state.
func (s State) Rune() rune {
	if s.Valid() {
		return layoutRunes[s]
	}
	return '?'
}

func stateFromRune(r rune) (State, bool) {
	for s, lr := range layoutRunes {
		if lr == r {
			return State(s), true
		}
	}
	return Empty, false
}

// Parse reads a square text layout, one row per line. Blank lines and
// surrounding whitespace are ignored.
//
// Returns ErrEmptyLayout, ErrNonSquare, ErrLayoutRune or ErrDuplicateRole.
func Parse(r io.Reader) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read layout: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyLayout
	}

	n := len(rows)
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	for row, line := range rows {
		runes := []rune(line)
		if len(runes) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, row, len(runes), n)
		}
		for col, ch := range runes {
			s, ok := stateFromRune(ch)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrLayoutRune, ch, row, col)
			}
			c := Cell{Row: row, Col: col}
			if (s == Start && g.hasStart) || (s == End && g.hasEnd) {
				return nil, fmt.Errorf("%w: second %s at %v", ErrDuplicateRole, s, c)
			}
			// Set cannot fail here: c is in bounds and s is valid.
			_ = g.Set(c, s)
		}
	}

	return g, nil
}

// String renders g in the layout format accepted by Parse.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			b.WriteRune(g.cells[row*g.size+col].Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
