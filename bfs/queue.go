package bfs

import "github.com/katalvlaran/gridpath/search"

// queue is a FIFO of frontier entries. Popped slots are reclaimed once
// the consumed prefix outgrows the live tail.
type queue struct {
	items []search.Entry
	head  int
}

func newQueue(capacity int) *queue {
	return &queue{items: make([]search.Entry, 0, capacity)}
}

// Push appends e at the tail.
func (q *queue) Push(e search.Entry) {
	q.items = append(q.items, e)
}

// Pop removes and returns the head entry.
func (q *queue) Pop() (search.Entry, bool) {
	if q.head >= len(q.items) {
		return search.Entry{}, false
	}
	e := q.items[q.head]
	q.head++
	if q.head > 64 && q.head*2 > len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return e, true
}

// Len returns the number of pending entries.
func (q *queue) Len() int {
	return len(q.items) - q.head
}
