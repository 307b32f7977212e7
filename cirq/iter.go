package cirq

import "iter"

// Iterator is a forward-only cursor over the logical elements of a queue,
// from front to back. It is shared by both queue variants.
//
// An Iterator reads a snapshot of the queue's handles taken when it was
// created. Any push, pop, growth or clear invalidates it; continued use after
// a mutation reads stale or wrong slots and is not detected.
type Iterator[T any, I Index] struct {
	buf      []T
	front    I
	capacity I
	size     I
	offset   I
}

// Next returns a pointer to the next element and advances the cursor.
// It returns false once the cursor has passed the back of the queue.
func (it *Iterator[T, I]) Next() (*T, bool) {
	if it.offset >= it.size {
		return nil, false
	}

	slot := &it.buf[(it.front+it.offset)%it.capacity]
	it.offset++

	return slot, true
}

// Reset restarts the cursor at the front of the queue.
func (it *Iterator[T, I]) Reset() {
	it.offset = 0
}

// Iter returns an Iterator positioned at the front of the queue.
func (q *QueueOf[T, I]) Iter() *Iterator[T, I] {
	return &Iterator[T, I]{buf: q.buf, front: q.front, capacity: q.capacity, size: q.size}
}

// All returns a range-over-func sequence of (logical index, element pointer)
// pairs from front to back. Like Iterator, the sequence is invalidated by any
// mutation of the queue; do not push or pop inside the loop body.
func (q *QueueOf[T, I]) All() iter.Seq2[I, *T] {
	return func(yield func(I, *T) bool) {
		for i := I(0); i < q.size; i++ {
			if !yield(i, &q.buf[(q.front+i)%q.capacity]) {
				return
			}
		}
	}
}

// Iter returns an Iterator positioned at the front of the queue.
func (q *TrivialQueueOf[T, I]) Iter() *Iterator[T, I] {
	return &Iterator[T, I]{buf: q.buf, front: q.front, capacity: q.capacity, size: q.size}
}

// All returns a range-over-func sequence of (logical index, element pointer)
// pairs from front to back. Like Iterator, the sequence is invalidated by any
// mutation of the queue; do not push or pop inside the loop body.
func (q *TrivialQueueOf[T, I]) All() iter.Seq2[I, *T] {
	return func(yield func(I, *T) bool) {
		for i := I(0); i < q.size; i++ {
			if !yield(i, &q.buf[(q.front+i)%q.capacity]) {
				return
			}
		}
	}
}
