package cirq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue(t *testing.T) {
	assert := assert.New(t)
	t.Run("Empty Queue", func(t *testing.T) {
		q := New[int]()

		assert.True(q.Empty())
		assert.Equal(0, q.Len())
		assert.Equal(0, q.Capacity())
	})

	t.Run("FIFO Order", func(t *testing.T) {
		q := New[int]()

		for i := 0; i < 100; i++ {
			q.Push(i)
		}
		assert.Equal(100, q.Len())

		for i := 0; i < 100; i++ {
			assert.Equal(i, *q.Front())
			q.Pop()
		}
		assert.True(q.Empty())
	})

	t.Run("Growth Sequence", func(t *testing.T) {
		q := New[int]()

		wantCap := 0
		for i := 0; i < 100; i++ {
			q.Push(i)
			if q.Len() > wantCap {
				if wantCap == 0 {
					wantCap = 2
				} else {
					wantCap *= 2
				}
			}
			assert.Equal(wantCap, q.Capacity(), "capacity after %d pushes", i+1)
			assert.LessOrEqual(q.Len(), q.Capacity())
		}
		assert.Equal(128, q.Capacity())
	})

	t.Run("Lazy Allocation", func(t *testing.T) {
		q := New[int]()
		assert.Equal(0, q.Capacity())

		q.Push(1)
		assert.Equal(2, q.Capacity())
	})

	t.Run("Front Back At", func(t *testing.T) {
		q := New[string]()

		q.Push("a")
		q.Push("b")
		q.Push("c")

		assert.Equal("a", *q.Front())
		assert.Equal("c", *q.Back())
		assert.Equal("a", *q.At(0))
		assert.Equal("b", *q.At(1))
		assert.Equal("c", *q.At(2))

		// returned pointers alias buffer storage
		*q.At(1) = "B"
		assert.Equal("B", *q.At(1))

		*q.Back() = "C"
		assert.Equal("C", *q.At(2))
	})

	t.Run("Wrap Around", func(t *testing.T) {
		q := New[int]()

		// fill to capacity 4
		for i := 0; i < 4; i++ {
			q.Push(i)
		}
		require.Equal(t, 4, q.Capacity())

		// advance front, then push so back wraps past the physical end
		q.Pop()
		q.Pop()
		q.Push(4)
		assert.Equal(4, q.Capacity(), "no growth expected while slots are free")

		assert.Equal(3, q.Len())
		for i := 0; i < q.Len(); i++ {
			assert.Equal(i+2, *q.At(i))
		}

		// growth from the wrapped state must preserve logical order
		q.Push(5)
		q.Push(6)
		assert.Equal(8, q.Capacity())
		for i := 0; i < q.Len(); i++ {
			assert.Equal(i+2, *q.At(i))
		}
	})

	t.Run("Clear Retains Capacity", func(t *testing.T) {
		q := New[int]()

		for i := 0; i < 10; i++ {
			q.Push(i)
		}
		capBefore := q.Capacity()

		q.Clear()
		assert.Equal(0, q.Len())
		assert.True(q.Empty())
		assert.Equal(capBefore, q.Capacity())

		for i := 0; i < capBefore; i++ {
			q.Push(i)
		}
		assert.Equal(capBefore, q.Capacity(), "refill within old capacity must not reallocate")
	})

	t.Run("Emplace", func(t *testing.T) {
		type record struct {
			id   int
			name string
		}
		q := New[record]()

		r := q.Emplace()
		r.id = 1
		r.name = "one"

		q.Push(record{id: 2, name: "two"})

		assert.Equal(record{id: 1, name: "one"}, *q.Front())
		assert.Equal(record{id: 2, name: "two"}, *q.Back())
	})

	t.Run("Emplace Yields Zero Value", func(t *testing.T) {
		q := New[int]()

		// dirty a slot, drain, then come back around to it
		q.Push(42)
		q.Pop()
		q.Push(1)
		q.Pop()

		assert.Equal(0, *q.Emplace())
	})
}

// lifeProbe counts lifecycle events for an instrumented element type.
type lifeProbe struct {
	constructed int
	destroyed   int
}

type tracked struct {
	id    int
	probe *lifeProbe
}

func TestQueueLifecycle(t *testing.T) {
	assert := assert.New(t)

	t.Run("Balanced Construction And Destruction", func(t *testing.T) {
		probe := &lifeProbe{}
		q := New(WithDestructor(func(e *tracked) {
			e.probe.destroyed++
		}))

		const n = 50
		for i := 0; i < n; i++ {
			probe.constructed++
			q.Push(tracked{id: i, probe: probe})
		}

		for !q.Empty() {
			q.Pop()
		}

		assert.Equal(n, probe.constructed)
		assert.Equal(n, probe.destroyed)
	})

	t.Run("Growth Does Not Destroy", func(t *testing.T) {
		probe := &lifeProbe{}
		q := New(WithDestructor(func(e *tracked) {
			e.probe.destroyed++
		}))

		// enough pushes for several growth events
		for i := 0; i < 20; i++ {
			q.Push(tracked{id: i, probe: probe})
		}
		assert.Equal(0, probe.destroyed, "relocation transfers ownership, no destructor runs")

		q.Clear()
		assert.Equal(20, probe.destroyed)
	})

	t.Run("Destroy Releases Buffer", func(t *testing.T) {
		probe := &lifeProbe{}
		q := New(WithDestructor(func(e *tracked) {
			e.probe.destroyed++
		}))

		q.Push(tracked{id: 1, probe: probe})
		q.Push(tracked{id: 2, probe: probe})

		q.Destroy()
		assert.Equal(2, probe.destroyed)
		assert.Equal(0, q.Capacity())
		assert.True(q.Empty())

		// idempotent, and the queue stays usable
		q.Destroy()
		q.Push(tracked{id: 3, probe: probe})
		assert.Equal(1, q.Len())
	})

	t.Run("Popped Slot Is Zeroed", func(t *testing.T) {
		q := New[*lifeProbe]()

		q.Push(&lifeProbe{})
		q.Push(&lifeProbe{})
		q.Pop()

		// the popped slot must not pin its old element
		assert.Nil(q.buf[0])
	})
}

func TestQueueClone(t *testing.T) {
	assert := assert.New(t)

	t.Run("Clone Of Wrapped Queue", func(t *testing.T) {
		q := New[int]()
		for i := 0; i < 4; i++ {
			q.Push(i)
		}
		q.Pop()
		q.Pop()
		q.Push(4)
		q.Push(5) // live region now wraps

		clone := q.Clone()
		assert.Equal(q.Len(), clone.Len())
		assert.Equal(q.Capacity(), clone.Capacity())

		// clone is normalized to start at slot 0
		assert.Equal(0, clone.front)
		for i := 0; i < q.Len(); i++ {
			assert.Equal(*q.At(i), *clone.At(i))
		}

		// fully independent storage
		*q.At(0) = -1
		assert.Equal(2, *clone.At(0))
	})

	t.Run("Clone Uses Copier", func(t *testing.T) {
		q := New(WithCopier(func(v []int) []int {
			c := make([]int, len(v))
			copy(c, v)
			return c
		}))

		q.Push([]int{1, 2, 3})
		clone := q.Clone()

		(*q.Front())[0] = 99
		assert.Equal([]int{1, 2, 3}, *clone.Front())
	})

	t.Run("Clone Of Empty Queue", func(t *testing.T) {
		q := New[int]()
		clone := q.Clone()

		assert.True(clone.Empty())
		assert.Equal(0, clone.Capacity())
	})
}

func TestQueueIndexTypes(t *testing.T) {
	assert := assert.New(t)

	t.Run("Unsigned Index", func(t *testing.T) {
		q := NewOf[string, uint8]()

		q.Push("x")
		q.Push("y")
		q.Push("z")

		assert.Equal(uint8(3), q.Len())
		assert.Equal(uint8(4), q.Capacity())
		assert.Equal("y", *q.At(1))

		q.Pop()
		assert.Equal("y", *q.Front())
	})

	t.Run("Wide Signed Index", func(t *testing.T) {
		q := NewOf[int, int64]()

		for i := 0; i < 10; i++ {
			q.Push(i)
		}

		assert.Equal(int64(10), q.Len())
		assert.Equal(int64(16), q.Capacity())
		assert.Equal(9, *q.Back())
	})
}

func TestGrowthMetrics(t *testing.T) {
	assert := assert.New(t)

	ResetGrowthMetrics()

	q := New[int]()
	for i := 0; i < 5; i++ {
		q.Push(i)
	}

	// growth events: 0->2 (0 moved), 2->4 (2 moved), 4->8 (4 moved)
	m := GrowthMetrics()
	assert.Equal(int64(3), m.Grows)
	assert.Equal(int64(6), m.Relocations)

	ResetGrowthMetrics()
	m = GrowthMetrics()
	assert.Equal(int64(0), m.Grows)
	assert.Equal(int64(0), m.Relocations)
}
