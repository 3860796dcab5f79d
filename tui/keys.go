package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every binding of the interactive grid.
type keyMap struct {
	Up, Down, Left, Right key.Binding
	Paint, Erase          key.Binding
	BFS, DFS, Reset       key.Binding
	Quit                  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Paint: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "paint")),
		Erase: key.NewBinding(key.WithKeys("x", "backspace", "delete"), key.WithHelp("x", "erase")),
		BFS:   key.NewBinding(key.WithKeys("b", "B"), key.WithHelp("b", "bfs")),
		DFS:   key.NewBinding(key.WithKeys("d", "D"), key.WithHelp("d", "dfs")),
		Reset: key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("r", "reset")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Paint, k.Erase, k.BFS, k.DFS, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Paint, k.Erase},
		{k.BFS, k.DFS, k.Reset, k.Quit},
	}
}
