package dfs

import "github.com/katalvlaran/gridpath/search"

// stack is a LIFO of frontier entries.
type stack struct {
	items []search.Entry
}

func newStack(capacity int) *stack {
	return &stack{items: make([]search.Entry, 0, capacity)}
}

// Push places e on top.
func (s *stack) Push(e search.Entry) {
	s.items = append(s.items, e)
}

// Pop removes and returns the top entry.
func (s *stack) Pop() (search.Entry, bool) {
	n := len(s.items)
	if n == 0 {
		return search.Entry{}, false
	}
	e := s.items[n-1]
	s.items = s.items[:n-1]
	return e, true
}

// Len returns the number of pending entries.
func (s *stack) Len() int {
	return len(s.items)
}
