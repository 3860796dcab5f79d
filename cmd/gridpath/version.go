package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/algorithms"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and supported algorithms",
		Args:  cobra.NoArgs,
		// version needs no configuration
		PersistentPreRunE:  func(*cobra.Command, []string) error { return nil },
		PersistentPostRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gridpath %s (%s)\n", version, runtime.Version())
			fmt.Fprintf(cmd.OutOrStdout(), "algorithms:\n  %s\n", strings.Join(algorithms.Describe(), "\n  "))
		},
	}
}
