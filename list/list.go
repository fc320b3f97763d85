package list

import (
	"github.com/emberlang/ember-runtime/errors"
	"github.com/emberlang/ember-runtime/trap"
	"github.com/emberlang/ember-runtime/view"
)

// List is the growable dynamic array behind every generated List<T>
// specialization. Storage is a single contiguous buffer; length counts
// the live prefix. The zero List is ready to use (length 0, capacity 0,
// no storage).
//
// The list never retains or releases the elements it holds. When T is a
// reference-counted pointer type, element ownership stays with the
// caller; Free drops the backing storage only.
type List[T any] struct {
	data []T // len(data) is the capacity
	size int
}

// New creates an empty list with no storage.
func New[T any]() *List[T] {
	return &List[T]{}
}

// FromSlice creates a list holding a copy of s.
func FromSlice[T any](s []T) *List[T] {
	l := &List[T]{data: make([]T, len(s)), size: len(s)}
	copy(l.data, s)
	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.size }

// Cap returns the current storage capacity.
func (l *List[T]) Cap() int { return len(l.data) }

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool { return l.size == 0 }

// grow reallocates to max(4, cap*2), or enough for need if that is more.
func (l *List[T]) grow(need int) {
	newCap := len(l.data) * 2
	if newCap < 4 {
		newCap = 4
	}
	for newCap < need {
		newCap *= 2
	}
	data := make([]T, newCap)
	copy(data, l.data[:l.size])
	l.data = data
}

// Push appends v. Amortized O(1).
func (l *List[T]) Push(v T) {
	if l.size == len(l.data) {
		l.grow(l.size + 1)
	}
	l.data[l.size] = v
	l.size++
}

// Pop removes and returns the last element. Fatal on an empty list.
func (l *List[T]) Pop() T {
	if l.size == 0 {
		trap.Fail(errors.EmptyContainer(errors.PhaseList, "pop"))
	}
	l.size--
	v := l.data[l.size]
	var zero T
	l.data[l.size] = zero // don't pin vacated elements
	return v
}

// TryPop is the checked form of Pop.
func (l *List[T]) TryPop() (T, *errors.Error) {
	if l.size == 0 {
		var zero T
		return zero, errors.EmptyContainer(errors.PhaseList, "pop")
	}
	return l.Pop(), nil
}

// Get returns the element at index i. Fatal outside [0, len).
func (l *List[T]) Get(i int) T {
	if i < 0 || i >= l.size {
		trap.Fail(errors.OutOfBounds(errors.PhaseList, "get", i, l.size))
	}
	return l.data[i]
}

// TryGet is the checked form of Get.
func (l *List[T]) TryGet(i int) (T, *errors.Error) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, errors.OutOfBounds(errors.PhaseList, "get", i, l.size)
	}
	return l.data[i], nil
}

// Set replaces the element at index i. Fatal outside [0, len).
func (l *List[T]) Set(i int, v T) {
	if i < 0 || i >= l.size {
		trap.Fail(errors.OutOfBounds(errors.PhaseList, "set", i, l.size))
	}
	l.data[i] = v
}

// TrySet is the checked form of Set.
func (l *List[T]) TrySet(i int, v T) *errors.Error {
	if i < 0 || i >= l.size {
		return errors.OutOfBounds(errors.PhaseList, "set", i, l.size)
	}
	l.data[i] = v
	return nil
}

// Insert places v at index i, shifting later elements right. i may equal
// the length, which appends. Fatal outside [0, len].
func (l *List[T]) Insert(i int, v T) {
	if i < 0 || i > l.size {
		trap.Fail(errors.OutOfBounds(errors.PhaseList, "insert", i, l.size))
	}
	if l.size == len(l.data) {
		l.grow(l.size + 1)
	}
	copy(l.data[i+1:l.size+1], l.data[i:l.size])
	l.data[i] = v
	l.size++
}

// Remove deletes and returns the element at index i, shifting later
// elements left. Fatal outside [0, len).
func (l *List[T]) Remove(i int) T {
	if i < 0 || i >= l.size {
		trap.Fail(errors.OutOfBounds(errors.PhaseList, "remove", i, l.size))
	}
	v := l.data[i]
	copy(l.data[i:], l.data[i+1:l.size])
	l.size--
	var zero T
	l.data[l.size] = zero
	return v
}

// Clear resets the length to zero, keeping capacity.
func (l *List[T]) Clear() {
	var zero T
	for i := 0; i < l.size; i++ {
		l.data[i] = zero
	}
	l.size = 0
}

// First returns the first element. Fatal on an empty list.
func (l *List[T]) First() T {
	if l.size == 0 {
		trap.Fail(errors.EmptyContainer(errors.PhaseList, "first"))
	}
	return l.data[0]
}

// Last returns the last element. Fatal on an empty list.
func (l *List[T]) Last() T {
	if l.size == 0 {
		trap.Fail(errors.EmptyContainer(errors.PhaseList, "last"))
	}
	return l.data[l.size-1]
}

// Swap exchanges the elements at i and j. Fatal if either is out of range.
func (l *List[T]) Swap(i, j int) {
	if i < 0 || i >= l.size {
		trap.Fail(errors.OutOfBounds(errors.PhaseList, "swap", i, l.size))
	}
	if j < 0 || j >= l.size {
		trap.Fail(errors.OutOfBounds(errors.PhaseList, "swap", j, l.size))
	}
	l.data[i], l.data[j] = l.data[j], l.data[i]
}

// Fill sets every element to v.
func (l *List[T]) Fill(v T) {
	for i := 0; i < l.size; i++ {
		l.data[i] = v
	}
}

// Reverse reverses the list in place.
func (l *List[T]) Reverse() {
	for i, j := 0, l.size-1; i < j; i, j = i+1, j-1 {
		l.data[i], l.data[j] = l.data[j], l.data[i]
	}
}

// Reversed returns a new list with the elements in reverse order.
func (l *List[T]) Reversed() *List[T] {
	r := &List[T]{data: make([]T, l.size), size: l.size}
	for i := 0; i < l.size; i++ {
		r.data[i] = l.data[l.size-1-i]
	}
	return r
}

// Slice returns a new list holding the elements in [start, end). Negative
// indices count from the end; out-of-range indices clamp to [0, len].
// Slice never traps: an inverted or fully clamped-out range yields an
// empty list.
func (l *List[T]) Slice(start, end int) *List[T] {
	if start < 0 {
		start = l.size + start
	}
	if end < 0 {
		end = l.size + end
	}
	if start < 0 {
		start = 0
	}
	if end > l.size {
		end = l.size
	}
	r := New[T]()
	for i := start; i < end; i++ {
		r.Push(l.data[i])
	}
	return r
}

// Take returns the first n elements (clamped).
func (l *List[T]) Take(n int) *List[T] { return l.Slice(0, n) }

// Drop returns all but the first n elements (clamped).
func (l *List[T]) Drop(n int) *List[T] { return l.Slice(n, l.size) }

// Extend appends every element of other.
func (l *List[T]) Extend(other *List[T]) {
	for i := 0; i < other.size; i++ {
		l.Push(other.data[i])
	}
}

// Copy returns a new list with the same elements.
func (l *List[T]) Copy() *List[T] {
	r := &List[T]{data: make([]T, l.size), size: l.size}
	copy(r.data, l.data[:l.size])
	return r
}

// Filter returns a new list of the elements satisfying pred, in order.
func (l *List[T]) Filter(pred func(T) bool) *List[T] {
	r := New[T]()
	for i := 0; i < l.size; i++ {
		if pred(l.data[i]) {
			r.Push(l.data[i])
		}
	}
	return r
}

// Map returns a new list with fn applied to every element.
func (l *List[T]) Map(fn func(T) T) *List[T] {
	r := &List[T]{data: make([]T, l.size), size: l.size}
	for i := 0; i < l.size; i++ {
		r.data[i] = fn(l.data[i])
	}
	return r
}

// Reduce folds the list left to right starting from init.
func (l *List[T]) Reduce(init T, fn func(acc, v T) T) T {
	acc := init
	for i := 0; i < l.size; i++ {
		acc = fn(acc, l.data[i])
	}
	return acc
}

// ForEach calls fn on every element in order.
func (l *List[T]) ForEach(fn func(T)) {
	for i := 0; i < l.size; i++ {
		fn(l.data[i])
	}
}

// Any reports whether pred holds for at least one element.
func (l *List[T]) Any(pred func(T) bool) bool {
	for i := 0; i < l.size; i++ {
		if pred(l.data[i]) {
			return true
		}
	}
	return false
}

// All reports whether pred holds for every element.
func (l *List[T]) All(pred func(T) bool) bool {
	for i := 0; i < l.size; i++ {
		if !pred(l.data[i]) {
			return false
		}
	}
	return true
}

// FindIndex returns the index of the first element satisfying pred, or -1.
func (l *List[T]) FindIndex(pred func(T) bool) int {
	for i := 0; i < l.size; i++ {
		if pred(l.data[i]) {
			return i
		}
	}
	return -1
}

// View returns a non-owning window over the live elements. The view is
// invalidated by any operation that grows or shrinks the list.
func (l *List[T]) View() view.View[T] {
	return view.Of(l.data[:l.size])
}

// ToSlice copies the elements into fresh storage.
func (l *List[T]) ToSlice() []T {
	out := make([]T, l.size)
	copy(out, l.data[:l.size])
	return out
}

// Free releases the backing storage. Contained elements are not released;
// their ownership remains with the caller. The list is reusable afterward
// as an empty list.
func (l *List[T]) Free() {
	l.data = nil
	l.size = 0
}
