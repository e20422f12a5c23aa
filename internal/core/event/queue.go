package event

// Queue is an ordered, single-threaded event buffer. Every consumer reads
// the full slice; nothing is removed until Drop.
type Queue[T any] struct {
	events []T
}

func (q *Queue[T]) Emit(ev T) {
	q.events = append(q.events, ev)
}

// Events returns the pending events in emission order. The slice is only
// valid until the next Drop.
func (q *Queue[T]) Events() []T {
	return q.events
}

func (q *Queue[T]) Len() int {
	return len(q.events)
}

// Drop discards every pending event, keeping capacity.
func (q *Queue[T]) Drop() {
	clear(q.events)
	q.events = q.events[:0]
}
