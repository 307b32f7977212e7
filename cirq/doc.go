// Package cirq provides first-in-first-out containers backed by contiguous,
// growable circular buffers.
//
// Two variants share the same buffer management algorithm (lazy allocation,
// amortized capacity doubling, wrap-around front/back handles) and differ only
// in how elements are treated when memory is touched:
//
//   - QueueOf / Queue: the general variant. Popped and relocated slots are
//     zeroed so the garbage collector can reclaim anything they referenced,
//     and an optional destructor hook can run teardown logic on removal.
//   - TrivialQueueOf / TrivialQueue: the plain-data variant. Push, pop and
//     clear are pure index bookkeeping, growth relocates the live region with
//     bulk block copies, and optional per-slot initializer/deinitializer
//     hooks can be supplied at the call site.
//
// Both variants are parameterized over the element type and, in the *Of
// forms, over the index integer type used for all size, capacity and handle
// arithmetic. The plain Queue and TrivialQueue aliases fix the index type to
// int, which is the right choice for almost all callers.
//
// # Contract Violations
//
// The containers deliberately have no recoverable error path. Popping or
// peeking an empty queue and indexing out of range are programming errors and
// panic with a [ContractError]. Callers are expected to check Len or Empty
// themselves; the panic exists to surface bugs, not to be recovered as
// control flow.
//
// # Concurrency
//
// A queue is single-goroutine only. There is no internal synchronization, and
// no operation blocks; callers that share a queue across goroutines must
// provide their own mutual exclusion. Queues must not be copied by
// assignment; use Clone for an explicit deep copy.
//
// # Reference Invalidation
//
// Front, Back, At and both iteration forms return pointers that alias the
// buffer storage directly. Any subsequent Push, Emplace, Pop, Clear or growth
// invalidates them.
package cirq
