// Package tui is the interactive terminal host: a bubbletea program that
// edits a controller.Session with keyboard and mouse and animates runs one
// step per tick.
package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/controller"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/visual"
)

// gridTop is the number of terminal rows above the first grid row.
const gridTop = 2

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// tickMsg advances the run started in generation gen.
type tickMsg struct{ gen int }

// Model is the bubbletea model. Painting is refused while a run animates.
type Model struct {
	session   *controller.Session
	keys      keyMap
	help      help.Model
	palette   visual.Palette
	delay     time.Duration
	cellWidth int

	cursor  grid.Cell
	run     *search.Run
	gen     int
	message string
}

// Option configures a Model.
type Option func(*Model)

// WithDelay sets the pause between animated steps.
func WithDelay(d time.Duration) Option {
	return func(m *Model) { m.delay = max(d, 0) }
}

// WithCellWidth sets the terminal columns per cell. The session should use
// the same geometry (controller.WithCellSize(w, 1)) for mouse mapping.
func WithCellWidth(w int) Option {
	return func(m *Model) {
		if w >= 1 {
			m.cellWidth = w
		}
	}
}

// New returns a Model editing s.
func New(s *controller.Session, opts ...Option) Model {
	m := Model{
		session:   s,
		keys:      defaultKeyMap(),
		help:      help.New(),
		palette:   visual.DefaultPalette(lipgloss.DefaultRenderer()),
		delay:     visual.DefaultDelay,
		cellWidth: 2,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tickMsg:
		return m.advance(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.session.Grid().Size()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursor.Row = max(m.cursor.Row-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursor.Row = min(m.cursor.Row+1, n-1)
	case key.Matches(msg, m.keys.Left):
		m.cursor.Col = max(m.cursor.Col-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.cursor.Col = min(m.cursor.Col+1, n-1)
	case key.Matches(msg, m.keys.Paint):
		m.paint(m.cursor)
	case key.Matches(msg, m.keys.Erase):
		m.erase(m.cursor)
	case key.Matches(msg, m.keys.BFS, m.keys.DFS, m.keys.Reset):
		return m.command([]rune(msg.String())[0])
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	pressed := msg.Action == tea.MouseActionPress || msg.Action == tea.MouseActionMotion
	if !pressed {
		return m, nil
	}
	c, ok := m.session.CellAt(msg.X, msg.Y-gridTop)
	if !ok {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		m.cursor = c
		m.paint(c)
	case tea.MouseButtonRight:
		m.cursor = c
		m.erase(c)
	}
	return m, nil
}

func (m *Model) paint(c grid.Cell) {
	m.message = ""
	if _, err := m.session.Paint(c); err != nil {
		m.message = describe(err)
		return
	}
	m.run = nil
}

func (m *Model) erase(c grid.Cell) {
	m.message = ""
	if err := m.session.Erase(c); err != nil {
		m.message = describe(err)
		return
	}
	m.run = nil
}

// command runs a session key binding and schedules the first tick.
func (m Model) command(r rune) (tea.Model, tea.Cmd) {
	m.message = ""
	act, err := m.session.HandleKey(r)
	if err != nil {
		m.message = describe(err)
		return m, nil
	}
	switch act {
	case controller.Started:
		m.run = m.session.Active()
		m.gen++
		return m, m.tick(0)
	case controller.Cleared:
		m.run = nil
		m.gen++ // drop ticks of the canceled run
	}
	return m, nil
}

func (m Model) advance(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen || m.run == nil {
		return m, nil
	}
	if m.run.Next() && !m.run.State().Terminal() {
		return m, m.tick(m.delay)
	}
	if err := m.run.Err(); err != nil {
		m.message = describe(err)
	}
	return m, nil
}

func (m Model) tick(d time.Duration) tea.Cmd {
	gen := m.gen
	if d <= 0 {
		return func() tea.Msg { return tickMsg{gen: gen} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

// Animating reports whether a run is being stepped.
func (m Model) Animating() bool {
	return m.run != nil && !m.run.State().Terminal()
}

// Cursor returns the keyboard cursor position.
func (m Model) Cursor() grid.Cell { return m.cursor }

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("gridpath"))
	b.WriteString("\n\n")

	f := visual.Snapshot(m.session.Grid(), m.run)
	cursor := m.cursor
	b.WriteString(visual.RenderGrid(f, m.palette, m.cellWidth, &cursor))
	b.WriteString(m.palette.Status.Render(f.Status()))
	if m.message != "" {
		b.WriteString("  ")
		b.WriteString(errorStyle.Render(m.message))
	}
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')
	return b.String()
}

func describe(err error) string {
	switch {
	case errors.Is(err, controller.ErrBusy):
		return "search in progress"
	case errors.Is(err, search.ErrInvalidInvocation):
		return "place a start and an end first"
	}
	return err.Error()
}
