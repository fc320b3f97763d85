package list

import (
	"cmp"

	"github.com/emberlang/ember-runtime/errors"
	"github.com/emberlang/ember-runtime/trap"
)

// Operations that need equality or ordering on the element type live
// here as package functions. Go methods cannot narrow the receiver's
// type parameter, and the generated code calls these as free functions
// anyway.

// Contains reports whether v occurs in l.
func Contains[T comparable](l *List[T], v T) bool {
	for i := 0; i < l.size; i++ {
		if l.data[i] == v {
			return true
		}
	}
	return false
}

// IndexOf returns the index of the first occurrence of v, or -1.
func IndexOf[T comparable](l *List[T], v T) int {
	for i := 0; i < l.size; i++ {
		if l.data[i] == v {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last occurrence of v, or -1.
func LastIndexOf[T comparable](l *List[T], v T) int {
	for i := l.size - 1; i >= 0; i-- {
		if l.data[i] == v {
			return i
		}
	}
	return -1
}

// Count returns the number of occurrences of v.
func Count[T comparable](l *List[T], v T) int {
	n := 0
	for i := 0; i < l.size; i++ {
		if l.data[i] == v {
			n++
		}
	}
	return n
}

// RemoveAll deletes every occurrence of v in place, preserving the order
// of the remaining elements. Returns the number removed.
func RemoveAll[T comparable](l *List[T], v T) int {
	w := 0
	for i := 0; i < l.size; i++ {
		if l.data[i] != v {
			l.data[w] = l.data[i]
			w++
		}
	}
	removed := l.size - w
	var zero T
	for i := w; i < l.size; i++ {
		l.data[i] = zero
	}
	l.size = w
	return removed
}

// Distinct returns a new list keeping the first occurrence of each value.
func Distinct[T comparable](l *List[T]) *List[T] {
	seen := make(map[T]struct{}, l.size)
	r := New[T]()
	for i := 0; i < l.size; i++ {
		if _, ok := seen[l.data[i]]; ok {
			continue
		}
		seen[l.data[i]] = struct{}{}
		r.Push(l.data[i])
	}
	return r
}

// Sort sorts l in place, ascending. Insertion sort: stable, O(n^2) worst
// case, O(n) on nearly sorted input, which is what generated code mostly
// feeds it.
func Sort[T cmp.Ordered](l *List[T]) {
	for i := 1; i < l.size; i++ {
		v := l.data[i]
		j := i - 1
		for j >= 0 && l.data[j] > v {
			l.data[j+1] = l.data[j]
			j--
		}
		l.data[j+1] = v
	}
}

// Sorted returns a sorted copy of l.
func Sorted[T cmp.Ordered](l *List[T]) *List[T] {
	r := l.Copy()
	Sort(r)
	return r
}

// Min returns the smallest element. Fatal on an empty list.
func Min[T cmp.Ordered](l *List[T]) T {
	if l.size == 0 {
		trap.Fail(errors.EmptyContainer(errors.PhaseList, "min"))
	}
	v := l.data[0]
	for i := 1; i < l.size; i++ {
		if l.data[i] < v {
			v = l.data[i]
		}
	}
	return v
}

// Max returns the largest element. Fatal on an empty list.
func Max[T cmp.Ordered](l *List[T]) T {
	if l.size == 0 {
		trap.Fail(errors.EmptyContainer(errors.PhaseList, "max"))
	}
	v := l.data[0]
	for i := 1; i < l.size; i++ {
		if l.data[i] > v {
			v = l.data[i]
		}
	}
	return v
}

// Sum folds addition over the list starting from the zero value.
func Sum[T cmp.Ordered](l *List[T]) T {
	var acc T
	for i := 0; i < l.size; i++ {
		acc += l.data[i]
	}
	return acc
}
