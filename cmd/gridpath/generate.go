package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/builder"
	"github.com/katalvlaran/gridpath/grid"
)

type generateOptions struct {
	pattern string
	density float64
	gap     int
	seed    int64
}

func newGenerateCmd(a *app) *cobra.Command {
	var o generateOptions
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a layout for solve",
		Long: `Prints a square layout with the start in the top-left corner and the end in
the bottom-right one. Patterns: random, serpentine, enclosed, open.

  gridpath generate --pattern random --density 0.3 --seed 7 | gridpath solve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := generate(a.cfg.Size, o)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), g.String())
			return err
		},
	}
	cmd.Flags().StringVarP(&o.pattern, "pattern", "p", "random", "random, serpentine, enclosed or open")
	cmd.Flags().Float64Var(&o.density, "density", 0.3, "wall probability for the random pattern")
	cmd.Flags().IntVar(&o.gap, "gap", 1, "corridor width for the serpentine pattern")
	cmd.Flags().Int64Var(&o.seed, "seed", 0, "RNG seed for the random pattern (0: time based)")
	return cmd
}

func generate(size int, o generateOptions) (*grid.Grid, error) {
	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := []builder.Option{builder.WithSeed(seed)}
	switch o.pattern {
	case "random":
		return builder.Build(size, opts, builder.Corners(), builder.RandomWalls(o.density))
	case "serpentine":
		return builder.Build(size, opts, builder.Corners(), builder.Serpentine(o.gap))
	case "enclosed":
		end := grid.Cell{Row: size - 1, Col: size - 1}
		return builder.Build(size, opts, builder.Corners(), builder.Enclose(end))
	case "open":
		return builder.Build(size, opts, builder.Corners())
	}
	return nil, fmt.Errorf("unknown pattern %q", o.pattern)
}
