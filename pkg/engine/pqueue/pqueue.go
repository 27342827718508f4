// Package pqueue provides a min-priority queue over unique items with
// insert-or-decrease semantics.
package pqueue

import (
	"github.com/zyedidia/generic/heap"
)

type entry[T comparable] struct {
	item     T
	priority int
}

// Queue is a min-priority queue. Each item is held at most once; pushing an item
// that is already queued can only lower its priority.
//
// Superseded heap entries are left in place and skipped when they surface, so the
// live priorities in the map are the source of truth.
type Queue[T comparable] struct {
	entries *heap.Heap[entry[T]]
	live    map[T]int
}

// New creates an empty queue
func New[T comparable]() *Queue[T] {
	return &Queue[T]{
		entries: heap.New(func(a, b entry[T]) bool {
			return a.priority < b.priority
		}),
		live: make(map[T]int),
	}
}

// Push inserts item with the given priority, or lowers the priority of an item
// already in the queue. A higher priority for a queued item is ignored.
func (q *Queue[T]) Push(item T, priority int) {
	if existing, ok := q.live[item]; ok && existing <= priority {
		return
	}
	q.live[item] = priority
	q.entries.Push(entry[T]{item: item, priority: priority})
}

// Pop removes and returns the item with the lowest priority.
// ok is false when the queue is empty. Ties are returned in no particular order.
func (q *Queue[T]) Pop() (item T, priority int, ok bool) {
	for {
		e, found := q.entries.Pop()
		if !found {
			var zero T
			return zero, 0, false
		}

		current, queued := q.live[e.item]
		if !queued || current != e.priority {
			// stale entry from before a decrease, or already popped
			continue
		}

		delete(q.live, e.item)
		return e.item, e.priority, true
	}
}

// Priority returns the current priority of a queued item
func (q *Queue[T]) Priority(item T) (int, bool) {
	p, ok := q.live[item]
	return p, ok
}

// Len returns the number of distinct items in the queue
func (q *Queue[T]) Len() int {
	return len(q.live)
}

// IsEmpty returns true if no items are queued
func (q *Queue[T]) IsEmpty() bool {
	return len(q.live) == 0
}
