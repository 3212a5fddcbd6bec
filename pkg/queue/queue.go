// Package queue provides an unbounded first-in, first-out queue.
package queue

// FIFO is an unbounded queue. Items are popped in the order they were pushed.
// The zero value is an empty queue ready to use. It is not safe for concurrent use.
type FIFO[T any] struct {
	items []T
}

// Push appends an item to the back of the queue
func (q *FIFO[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Pop removes and returns the oldest item
// The second return value is false if the queue is empty
func (q *FIFO[T]) Pop() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}

	item := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}

	return item, true
}

// Len returns the number of queued items
func (q *FIFO[T]) Len() int {
	return len(q.items)
}
