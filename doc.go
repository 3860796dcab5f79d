// Package gridpath is an interactive grid pathfinding visualizer: paint a
// start, an end and walls on a square grid, then watch breadth-first or
// depth-first search explore it one cell at a time.
//
// Packages, leaves first:
//
//	grid/        — cell states, start/end invariants, neighbors, text layouts
//	search/      — Run state machine, Step/Result, options, hooks, errors
//	bfs/, dfs/   — FIFO and explicit-stack strategies
//	algorithms/  — lookup by name ("bfs") or key ('b')
//	builder/     — generated layouts (random walls, serpentine, enclosed)
//	visual/      — frames, Renderer lifecycle, paced Driver, text renderer
//	controller/  — paint/erase/reset/run session, pointer→cell mapping
//	tui/         — bubbletea host with mouse and keyboard
//	config/      — defaults, YAML, .env and GRIDPATH_* environment
//	logging/     — slog factory and context carrier
//	metrics/     — Prometheus collector for finished runs
//	cmd/gridpath — play, solve, generate, version
//
// The engine never sleeps. A Run yields one Step per Next call and marks
// the grid as it goes; whoever pulls the steps decides the pace.
//
//	g, _ := grid.Parse(strings.NewReader("S.\n.E\n"))
//	run, _ := search.FromGrid(g, bfs.Strategy{})
//	for run.Next() {
//		fmt.Println(run.Step().Cell)
//	}
//	fmt.Println(run.Result().Length()) // 2
package gridpath
