// Command gridpath is an interactive BFS/DFS grid pathfinding visualizer.
//
//	gridpath play                 # paint a grid in the terminal and watch searches
//	gridpath solve maze.txt       # solve a text layout and print the result
//	gridpath solve --animate -    # read the layout from stdin, print every frame
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
