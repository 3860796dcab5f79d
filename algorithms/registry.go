package algorithms

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/search"
)

// ErrUnknownAlgorithm is returned when a name or key maps to no strategy.
var ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm")

// entry binds a strategy to its key and description.
type entry struct {
	strategy search.Strategy
	key      rune
	summary  string
}

var registry = map[string]entry{
	bfs.Name: {strategy: bfs.Strategy{}, key: 'b', summary: "breadth-first search, shortest path in edges"},
	dfs.Name: {strategy: dfs.Strategy{}, key: 'd', summary: "depth-first search, first path found"},
}

// Lookup returns the strategy registered under name (case-insensitive).
func Lookup(name string) (search.Strategy, error) {
	e, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownAlgorithm, name, strings.Join(Names(), ", "))
	}
	return e.strategy, nil
}

// ForKey returns the strategy bound to key, e.g. 'b' for BFS.
func ForKey(key rune) (search.Strategy, bool) {
	for _, e := range registry {
		if e.key == key {
			return e.strategy, true
		}
	}
	return nil, false
}

// Names returns the registered algorithm names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Describe returns "name (key): summary" lines for help output.
func Describe() []string {
	out := make([]string, 0, len(registry))
	for _, n := range Names() {
		e := registry[n]
		out = append(out, fmt.Sprintf("%s (%c): %s", n, e.key, e.summary))
	}
	return out
}
