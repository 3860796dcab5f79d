package visual

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/grid"
)

// Renderer is a presentation surface with an explicit lifecycle.
// Init is called once before the first frame and Shutdown once after the
// last, even when rendering failed.
type Renderer interface {
	Init(size int) error
	RenderFrame(f Frame) error
	Shutdown() error
}

// clearScreen homes the cursor and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

// Palette maps cell roles to styles. Colors follow the classic
// visualizer: start blue, end green, walls black, visited yellow, path purple.
type Palette struct {
	Cells   [grid.Path + 1]lipgloss.Style
	Current lipgloss.Style
	Status  lipgloss.Style
}

// DefaultPalette builds the standard palette on r.
func DefaultPalette(r *lipgloss.Renderer) Palette {
	cell := func(fg, bg string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(fg)).Background(lipgloss.Color(bg))
	}
	var p Palette
	p.Cells[grid.Empty] = cell("250", "255")
	p.Cells[grid.Start] = cell("15", "21")
	p.Cells[grid.End] = cell("0", "46")
	p.Cells[grid.Obstacle] = cell("240", "0")
	p.Cells[grid.Visited] = cell("0", "226")
	p.Cells[grid.Path] = cell("15", "90")
	p.Current = cell("0", "208").Bold(true)
	p.Status = r.NewStyle().Bold(true)
	return p
}

// TextRenderer draws frames as rows of styled layout characters.
// Colors are emitted only when the writer is a color terminal.
type TextRenderer struct {
	w         io.Writer
	cellWidth int
	clear     bool
	palette   Palette
	frames    int
}

// TextOption configures a TextRenderer.
type TextOption func(*TextRenderer)

// WithCellWidth sets the number of columns per cell; values < 1 are ignored.
func WithCellWidth(n int) TextOption {
	return func(t *TextRenderer) {
		if n >= 1 {
			t.cellWidth = n
		}
	}
}

// WithClearScreen redraws each frame in place instead of appending it.
func WithClearScreen() TextOption {
	return func(t *TextRenderer) { t.clear = true }
}

// NewTextRenderer returns a renderer writing to w.
func NewTextRenderer(w io.Writer, opts ...TextOption) *TextRenderer {
	t := &TextRenderer{
		w:         w,
		cellWidth: 1,
		palette:   DefaultPalette(lipgloss.NewRenderer(w)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Init implements Renderer.
func (t *TextRenderer) Init(int) error {
	t.frames = 0
	return nil
}

// RenderFrame implements Renderer.
func (t *TextRenderer) RenderFrame(f Frame) error {
	var b strings.Builder
	if t.clear {
		b.WriteString(clearScreen)
	}
	b.WriteString(RenderGrid(f, t.palette, t.cellWidth, nil))
	b.WriteString(t.palette.Status.Render(f.Status()))
	b.WriteByte('\n')
	t.frames++
	_, err := io.WriteString(t.w, b.String())
	return err
}

// Shutdown implements Renderer.
func (t *TextRenderer) Shutdown() error { return nil }

// Frames returns how many frames were rendered since Init.
func (t *TextRenderer) Frames() int { return t.frames }

// RenderGrid draws the cells of f, one line per row. Start and End keep
// their colors after being marked as path, the current step is
// highlighted, and cursor, if non-nil, is drawn reversed.
func RenderGrid(f Frame, p Palette, cellWidth int, cursor *grid.Cell) string {
	var b strings.Builder
	pad := strings.Repeat(" ", max(cellWidth-1, 0))
	for row := 0; row < f.Size; row++ {
		for col := 0; col < f.Size; col++ {
			c := grid.Cell{Row: row, Col: col}
			s := f.At(c)
			style := p.Cells[f.Role(c)]
			if f.HasStep && c == f.Current.Cell && !f.State.Terminal() {
				style = p.Current
			}
			if cursor != nil && c == *cursor {
				style = style.Reverse(true)
			}
			b.WriteString(style.Render(string(s.Rune()) + pad))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
