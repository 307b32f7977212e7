package cirq

// Option represents a functional option for configuring the lifecycle hooks
// of a general-variant queue.
type Option[T any] func(*hooks[T])

// hooks holds the optional element lifecycle callbacks of a QueueOf.
type hooks[T any] struct {
	destroy func(*T)
	copier  func(T) T
}

// WithDestructor sets a destructor hook that runs on every element as it is
// removed, whether by Pop, Clear or Destroy.
//
// The hook runs before the slot is zeroed and before the front handle
// advances; the element is still fully live when it is called. Growth never
// invokes the hook, since relocation transfers ownership rather than ending
// an element's lifetime.
//
// Typical uses are returning pooled resources or closing handles carried by
// the element value.
func WithDestructor[T any](fn func(*T)) Option[T] {
	return func(h *hooks[T]) {
		h.destroy = fn
	}
}

// WithCopier sets a copier hook used by Clone to duplicate each live element.
//
// Without a copier, Clone copies element values shallowly, which is correct
// for self-contained values but aliases any pointers, slices or maps they
// carry. Supply a copier when elements own referenced state that must not be
// shared between the original queue and its clone.
func WithCopier[T any](fn func(T) T) Option[T] {
	return func(h *hooks[T]) {
		h.copier = fn
	}
}
