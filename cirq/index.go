package cirq

// Index constrains the integer type used for all size, capacity and handle
// arithmetic in a queue. Any fixed-width signed or unsigned integer works;
// wrap-around is expressed with modulo arithmetic over this type.
//
// Overflowing the index type by growing capacity past its range is not
// detected. Pick a type wide enough for the workload; int is the default used
// by the Queue and TrivialQueue aliases.
type Index interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// minCapacity is the capacity of the first allocation; growth doubles from
// there, so the capacity sequence is always 2, 4, 8, ...
const minCapacity = 2

// noCopy makes `go vet -copylocks` flag queue values copied by assignment.
// Queues own their buffer exclusively; duplication goes through Clone.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
