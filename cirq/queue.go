package cirq

// QueueOf is a first-in-first-out container backed by a contiguous, growable
// circular buffer, generic over both the element type T and the index integer
// type I.
//
// The buffer is allocated lazily on the first push and grows by doubling
// whenever an insertion would exceed capacity; capacity never shrinks. The
// live region may wrap past the physical end of the buffer, so logical
// element i lives at physical slot (front+i) mod capacity.
//
// This is the general variant: removed slots are zeroed so the garbage
// collector can reclaim referenced memory, and an optional destructor hook
// (see WithDestructor) runs on every removal. For plain data where even that
// bookkeeping is unwanted, use TrivialQueueOf.
//
// A QueueOf must not be copied by assignment; use Clone. It is not safe for
// concurrent use.
type QueueOf[T any, I Index] struct {
	noCopy noCopy

	buf      []T
	front    I // physical slot of the oldest element
	back     I // one past the newest element, exclusive
	size     I
	capacity I

	hooks hooks[T]
}

// Queue is a QueueOf with the default index type int.
type Queue[T any] = QueueOf[T, int]

// New creates an empty general-variant queue with int indexes.
// No buffer is allocated until the first push.
func New[T any](opts ...Option[T]) *Queue[T] {
	return NewOf[T, int](opts...)
}

// NewOf creates an empty general-variant queue with index type I.
// No buffer is allocated until the first push.
func NewOf[T any, I Index](opts ...Option[T]) *QueueOf[T, I] {
	q := &QueueOf[T, I]{}
	for _, opt := range opts {
		opt(&q.hooks)
	}

	return q
}

// Len returns the number of live elements.
func (q *QueueOf[T, I]) Len() I {
	return q.size
}

// Capacity returns the number of allocated element slots.
func (q *QueueOf[T, I]) Capacity() I {
	return q.capacity
}

// Empty returns true if the queue holds no elements.
func (q *QueueOf[T, I]) Empty() bool {
	return q.size == 0
}

// Push appends a copy of v at the back of the queue, growing the buffer if
// the insertion would exceed capacity.
func (q *QueueOf[T, I]) Push(v T) {
	q.grow()

	q.buf[q.back] = v
	q.back = (q.back + 1) % q.capacity
	q.size++
}

// Emplace appends a zero-valued element at the back and returns a pointer to
// it so the caller can finish initializing it in place.
//
// The returned pointer aliases buffer storage and is invalidated by any
// subsequent mutation of the queue.
func (q *QueueOf[T, I]) Emplace() *T {
	q.grow()

	slot := &q.buf[q.back]
	var zero T
	*slot = zero

	q.back = (q.back + 1) % q.capacity
	q.size++

	return slot
}

// Pop removes the oldest element. The destructor hook, if any, runs while the
// element is still live; the slot is then zeroed before the front handle
// advances, so references obtained earlier via Front, Back or At are invalid
// afterwards.
//
// Pop panics with ErrEmpty when the queue is empty.
func (q *QueueOf[T, I]) Pop() {
	if q.size == 0 {
		panic(ErrEmpty)
	}

	slot := &q.buf[q.front]
	if q.hooks.destroy != nil {
		q.hooks.destroy(slot)
	}
	var zero T
	*slot = zero

	q.front = (q.front + 1) % q.capacity
	q.size--
}

// Front returns a pointer to the oldest element.
// It panics with ErrEmpty when the queue is empty.
func (q *QueueOf[T, I]) Front() *T {
	if q.size == 0 {
		panic(ErrEmpty)
	}

	return &q.buf[q.front]
}

// Back returns a pointer to the newest element.
// It panics with ErrEmpty when the queue is empty.
func (q *QueueOf[T, I]) Back() *T {
	if q.size == 0 {
		panic(ErrEmpty)
	}

	last := (q.front + q.size - 1) % q.capacity

	return &q.buf[last]
}

// At returns a pointer to the element at logical index i, counted from the
// front. It panics with ErrOutOfRange unless 0 <= i < Len().
func (q *QueueOf[T, I]) At(i I) *T {
	if i >= q.size || i < 0 {
		panic(ErrOutOfRange)
	}

	return &q.buf[(q.front+i)%q.capacity]
}

// Clear removes every element, running the destructor hook on each and
// zeroing its slot, then resets the front and back handles to 0. The
// allocated buffer is retained, so clearing and refilling up to the old size
// performs no allocation.
func (q *QueueOf[T, I]) Clear() {
	var zero T
	for i := I(0); i < q.size; i++ {
		slot := &q.buf[(q.front+i)%q.capacity]
		if q.hooks.destroy != nil {
			q.hooks.destroy(slot)
		}
		*slot = zero
	}

	q.front = 0
	q.back = 0
	q.size = 0
}

// Destroy clears the queue and releases its buffer, dropping capacity back to
// zero. It is the teardown counterpart of WithDestructor for elements that
// need explicit finalization; queues without a destructor hook can simply be
// left to the garbage collector instead.
//
// The queue remains usable afterwards, reallocating lazily on the next push.
// Destroy is idempotent.
func (q *QueueOf[T, I]) Destroy() {
	q.Clear()
	q.buf = nil
	q.capacity = 0
}

// Clone returns an independent deep copy of the queue with the live region
// normalized to start at physical slot 0. Elements are duplicated with the
// copier hook when one is set and copied shallowly otherwise. Lifecycle hooks
// carry over to the clone.
//
// Clone is the explicit replacement for copying a queue by assignment, which
// is disallowed.
func (q *QueueOf[T, I]) Clone() *QueueOf[T, I] {
	clone := &QueueOf[T, I]{hooks: q.hooks}
	if q.capacity == 0 {
		return clone
	}

	clone.buf = make([]T, q.capacity)
	clone.capacity = q.capacity
	for i := I(0); i < q.size; i++ {
		v := q.buf[(q.front+i)%q.capacity]
		if q.hooks.copier != nil {
			v = q.hooks.copier(v)
		}
		clone.buf[i] = v
	}
	clone.size = q.size
	clone.back = q.size % q.capacity

	return clone
}

// grow doubles capacity when the buffer is full, relocating each live element
// into the new buffer starting at physical slot 0. Relocation transfers
// ownership: the source slot is zeroed but no destructor hook runs.
func (q *QueueOf[T, I]) grow() {
	if q.size != q.capacity {
		return
	}

	newCap := q.capacity * 2
	if newCap == 0 {
		newCap = minCapacity
	}

	buf := make([]T, newCap)
	var zero T
	for i := I(0); i < q.size; i++ {
		src := (q.front + i) % q.capacity
		buf[i] = q.buf[src]
		q.buf[src] = zero
	}

	q.buf = buf
	q.capacity = newCap
	q.front = 0
	q.back = q.size

	growCount.Inc()
	relocationCount.Add(int64(q.size))
}
