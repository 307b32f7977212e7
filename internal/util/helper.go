package util

// CloneSlice copies src into a freshly allocated slice of length cloneSize.
// A cloneSize of 0 clones at src's own length; a cloneSize larger than
// len(src) leaves the tail zero-valued.
func CloneSlice[T any](src []T, cloneSize int) []T {
	if cloneSize == 0 {
		cloneSize = len(src)
	}
	clone := make([]T, cloneSize)
	copy(clone, src)

	return clone
}
