package cirq

import (
	"github.com/arloliu/go-cirq/internal/util"
)

// TrivialQueueOf is the plain-data variant of QueueOf: a circular FIFO buffer
// for element types with no lifecycle of their own.
//
// It shares the growth policy and index arithmetic of the general variant but
// never touches element memory beyond what an operation strictly requires:
// Pop and Clear are pure index bookkeeping, Emplace hands back the slot
// as the previous occupant left it, and growth relocates the live region with
// at most two bulk block copies instead of a per-element loop.
//
// Element types should be self-contained values (integers, flat structs of
// such). Types carrying pointers, slices or maps still work, but popped slots
// keep their references alive until the slot is overwritten; use the general
// variant when that matters.
//
// Per-slot initialize/deinitialize hooks can be supplied at the call site via
// EmplaceFunc and PopFunc for types that want manual clearing semantics
// without the general variant's bookkeeping.
//
// A TrivialQueueOf must not be copied by assignment; use Clone. It is not
// safe for concurrent use.
type TrivialQueueOf[T any, I Index] struct {
	noCopy noCopy

	buf      []T
	front    I
	back     I
	size     I
	capacity I
}

// TrivialQueue is a TrivialQueueOf with the default index type int.
type TrivialQueue[T any] = TrivialQueueOf[T, int]

// NewTrivial creates an empty trivial-variant queue with int indexes.
// No buffer is allocated until the first push.
func NewTrivial[T any]() *TrivialQueue[T] {
	return &TrivialQueue[T]{}
}

// NewTrivialOf creates an empty trivial-variant queue with index type I.
// No buffer is allocated until the first push.
func NewTrivialOf[T any, I Index]() *TrivialQueueOf[T, I] {
	return &TrivialQueueOf[T, I]{}
}

// Len returns the number of live elements.
func (q *TrivialQueueOf[T, I]) Len() I {
	return q.size
}

// Capacity returns the number of allocated element slots.
func (q *TrivialQueueOf[T, I]) Capacity() I {
	return q.capacity
}

// Empty returns true if the queue holds no elements.
func (q *TrivialQueueOf[T, I]) Empty() bool {
	return q.size == 0
}

// Push appends a copy of v at the back of the queue, growing the buffer if
// the insertion would exceed capacity.
func (q *TrivialQueueOf[T, I]) Push(v T) {
	q.grow()

	q.buf[q.back] = v
	q.back = (q.back + 1) % q.capacity
	q.size++
}

// Emplace appends an element at the back and returns a pointer to its slot.
//
// The slot is not initialized: it holds whatever its previous occupant left
// behind, or the zero value if it was never used. Callers that want a defined
// starting state must write one, either directly or via EmplaceFunc.
func (q *TrivialQueueOf[T, I]) Emplace() *T {
	q.grow()

	slot := &q.buf[q.back]
	q.back = (q.back + 1) % q.capacity
	q.size++

	return slot
}

// EmplaceFunc appends an element at the back, invokes init on its slot, and
// returns a pointer to it. It is the hook-taking form of Emplace for callers
// that want call-site construction semantics.
func (q *TrivialQueueOf[T, I]) EmplaceFunc(init func(*T)) *T {
	q.grow()

	slot := &q.buf[q.back]
	init(slot)

	q.back = (q.back + 1) % q.capacity
	q.size++

	return slot
}

// Pop removes the oldest element. The slot's bytes are left untouched; only
// the front handle and size change.
//
// Pop panics with ErrEmpty when the queue is empty.
func (q *TrivialQueueOf[T, I]) Pop() {
	if q.size == 0 {
		panic(ErrEmpty)
	}

	q.front = (q.front + 1) % q.capacity
	q.size--
}

// PopFunc removes the oldest element after invoking deinit on its slot. It is
// the hook-taking form of Pop, for element types that want manual clearing
// semantics such as dropping a reference field.
//
// PopFunc panics with ErrEmpty when the queue is empty.
func (q *TrivialQueueOf[T, I]) PopFunc(deinit func(*T)) {
	if q.size == 0 {
		panic(ErrEmpty)
	}

	deinit(&q.buf[q.front])

	q.front = (q.front + 1) % q.capacity
	q.size--
}

// Front returns a pointer to the oldest element.
// It panics with ErrEmpty when the queue is empty.
func (q *TrivialQueueOf[T, I]) Front() *T {
	if q.size == 0 {
		panic(ErrEmpty)
	}

	return &q.buf[q.front]
}

// Back returns a pointer to the newest element.
// It panics with ErrEmpty when the queue is empty.
func (q *TrivialQueueOf[T, I]) Back() *T {
	if q.size == 0 {
		panic(ErrEmpty)
	}

	last := (q.front + q.size - 1) % q.capacity

	return &q.buf[last]
}

// At returns a pointer to the element at logical index i, counted from the
// front. It panics with ErrOutOfRange unless 0 <= i < Len().
func (q *TrivialQueueOf[T, I]) At(i I) *T {
	if i >= q.size || i < 0 {
		panic(ErrOutOfRange)
	}

	return &q.buf[(q.front+i)%q.capacity]
}

// Clear resets the front and back handles and the size to 0 without touching
// element memory. The allocated buffer is retained.
func (q *TrivialQueueOf[T, I]) Clear() {
	q.front = 0
	q.back = 0
	q.size = 0
}

// Clone returns an independent copy of the queue with the live region
// normalized to start at physical slot 0. Element bytes are copied as-is.
//
// Clone is the explicit replacement for copying a queue by assignment, which
// is disallowed.
func (q *TrivialQueueOf[T, I]) Clone() *TrivialQueueOf[T, I] {
	clone := &TrivialQueueOf[T, I]{}
	if q.capacity == 0 {
		return clone
	}

	if q.front+q.size <= q.capacity {
		clone.buf = util.CloneSlice(q.buf[q.front:q.front+q.size], int(q.capacity))
	} else {
		clone.buf = make([]T, q.capacity)
		n := I(copy(clone.buf, q.buf[q.front:]))
		copy(clone.buf[n:], q.buf[:q.back])
	}

	clone.capacity = q.capacity
	clone.size = q.size
	clone.back = q.size % q.capacity

	return clone
}

// grow doubles capacity when the buffer is full, relocating the live region
// into the new buffer starting at physical slot 0 with bulk block copies.
// A wrapped live region is two contiguous block ranges, [front, capacity)
// followed by [0, back), and is copied as two blocks.
func (q *TrivialQueueOf[T, I]) grow() {
	if q.size != q.capacity {
		return
	}

	newCap := q.capacity * 2
	if newCap == 0 {
		newCap = minCapacity
	}

	buf := make([]T, newCap)
	if q.size > 0 {
		if q.front+q.size <= q.capacity {
			copy(buf, q.buf[q.front:q.front+q.size])
		} else {
			n := I(copy(buf, q.buf[q.front:]))
			copy(buf[n:], q.buf[:q.back])
		}
	}

	q.buf = buf
	q.capacity = newCap
	q.front = 0
	q.back = q.size

	growCount.Inc()
	relocationCount.Add(int64(q.size))
}
