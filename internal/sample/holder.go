package sample

// Holder stores one value at construction and hands it back unchanged.
type Holder[T any] struct {
	value T
}

// NewHolder wraps v.
func NewHolder[T any](v T) *Holder[T] {
	return &Holder[T]{value: v}
}

// Value returns the wrapped value.
func (h *Holder[T]) Value() T {
	return h.value
}
