package view

import (
	"github.com/emberlang/ember-runtime/errors"
	"github.com/emberlang/ember-runtime/trap"
)

// View is an immutable (pointer, length) descriptor of contiguous
// storage. It never allocates, never grows, and never owns the memory it
// describes; the caller must keep the backing storage alive for as long
// as the view is in use. There is no destroy operation.
type View[T any] struct {
	data []T
}

// Of wraps existing storage. The view aliases the slice; it does not copy.
func Of[T any](data []T) View[T] {
	return View[T]{data: data}
}

// Len returns the number of elements described.
func (v View[T]) Len() int {
	return len(v.data)
}

// At returns the element at index i. Fatal outside [0, len).
func (v View[T]) At(i int) T {
	if i < 0 || i >= len(v.data) {
		trap.Fail(errors.OutOfBounds(errors.PhaseView, "at", i, len(v.data)))
	}
	return v.data[i]
}

// ToSlice copies the described elements into fresh storage.
func (v View[T]) ToSlice() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}
