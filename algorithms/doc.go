// Package algorithms is the registry of grid search strategies.
//
// It maps user-facing names ("bfs", "dfs") and key bindings ('b', 'd') to
// search.Strategy values so that hosts (CLI, terminal UI) never import the
// individual algorithm packages directly.
//
//	s, err := algorithms.Lookup("bfs")
//	run, err := search.FromGrid(g, s)
package algorithms
