package suspend

// A queue is a first-in-first-out job queue backed by a pair of slices.
// Popping drains head; pushing appends to tail; whenever head is emptied,
// the two swap so that the drained slice's capacity is reused.
type queue[E any] struct {
	head, tail []E
}

func (q *queue[E]) Empty() bool {
	return len(q.head) == 0
}

func (q *queue[E]) Push(v E) {
	if len(q.head) == 0 {
		q.head = append(q.head, v)
		return
	}
	q.tail = append(q.tail, v)
}

func (q *queue[E]) Pop() (v E) {
	q.head[0], v = v, q.head[0]

	if len(q.head) > 1 {
		q.head = q.head[1:]
	} else {
		q.head, q.tail = q.tail, q.head[:0]
	}

	return v
}
