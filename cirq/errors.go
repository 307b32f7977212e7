package cirq

// ContractError reports a violated queue precondition, such as popping an
// empty queue or indexing past the live region.
//
// A ContractError is always delivered by panic, never returned. It marks a
// bug in the calling code; recovering one and continuing is itself a bug.
type ContractError struct {
	msg string
}

func (e *ContractError) Error() string {
	return e.msg
}

var (
	// ErrEmpty indicates that Pop, Front or Back was called on an empty queue.
	// Callers must check Len or Empty before calling these methods.
	ErrEmpty = &ContractError{msg: "cirq: operation on empty queue"}

	// ErrOutOfRange indicates that At was called with a logical index outside
	// the range [0, Len).
	ErrOutOfRange = &ContractError{msg: "cirq: logical index out of range"}
)
