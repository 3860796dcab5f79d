package main

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/controller"
	"github.com/katalvlaran/gridpath/tui"
)

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Paint a grid and watch searches in the terminal",
		Long: `Left click or space paints: first the start, then the end, then walls.
Right click or x erases. b runs BFS, d runs DFS, r resets, q quits.`,
		Args: cobra.NoArgs,
		RunE: a.play,
	}
}

func (a *app) play(cmd *cobra.Command, _ []string) error {
	s, err := controller.New(a.cfg.Size,
		controller.WithCellSize(a.cfg.CellWidth, 1),
		controller.WithLogger(a.log),
		controller.WithRunOptions(a.runOptions(0)...))
	if err != nil {
		return err
	}
	m := tui.New(s, tui.WithDelay(a.cfg.Delay), tui.WithCellWidth(a.cfg.CellWidth))

	p := tea.NewProgram(m,
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
