package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/controller"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/visual"
)

type solveOptions struct {
	algo     string
	animate  bool
	maxSteps int
}

func newSolveCmd(a *app) *cobra.Command {
	var o solveOptions
	cmd := &cobra.Command{
		Use:   "solve [layout-file]",
		Short: "Search a text layout and print the explored grid",
		Long: `Reads a square layout, one row per line: '.' empty, '#' wall, 'S' start,
'E' end. With no file or "-", the layout is read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solve(cmd, args, o)
		},
	}
	cmd.Flags().StringVarP(&o.algo, "algo", "a", "", "algorithm: bfs or dfs (default from config)")
	cmd.Flags().BoolVar(&o.animate, "animate", false, "print a frame after every step")
	cmd.Flags().IntVar(&o.maxSteps, "max-steps", 0, "stop after this many steps (0: no limit)")
	return cmd
}

func (a *app) solve(cmd *cobra.Command, args []string, o solveOptions) error {
	g, err := a.readLayout(args)
	if err != nil {
		return err
	}
	algo := o.algo
	if algo == "" {
		algo = a.cfg.Algorithm
	}

	s := controller.Attach(g,
		controller.WithLogger(a.log),
		controller.WithRunOptions(a.runOptions(o.maxSteps)...))
	run, err := s.Run(algo)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ropts := []visual.TextOption{visual.WithCellWidth(a.cfg.CellWidth)}
	dopts := []visual.DriverOption{visual.WithDriverLogger(a.log)}
	if o.animate {
		dopts = append(dopts, visual.WithDelay(a.cfg.Delay))
		if isTerminal(out) {
			ropts = append(ropts, visual.WithClearScreen())
		}
	} else {
		dopts = append(dopts, visual.WithFinalOnly())
	}

	res, err := visual.NewDriver(visual.NewTextRenderer(out, ropts...), dopts...).Play(cmd.Context(), run)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, summary(res))
	return nil
}

func (a *app) readLayout(args []string) (*grid.Grid, error) {
	var r io.Reader = a.in
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open layout: %w", err)
		}
		defer f.Close()
		r = f
	}
	return grid.Parse(r)
}

func summary(res search.Result) string {
	if !res.Found {
		return fmt.Sprintf("%s: no path after %d steps", res.Algorithm, res.Steps)
	}
	cells := make([]string, len(res.Path))
	for i, c := range res.Path {
		cells[i] = c.String()
	}
	return fmt.Sprintf("%s: path of %d edges after %d steps: %s",
		res.Algorithm, res.Length(), res.Steps, strings.Join(cells, " "))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
