// Package list implements the growable array specialized by the
// compiler for every List<T> in the source program.
//
// # Storage
//
// Elements live in one contiguous buffer. Growth doubles the capacity
// with a floor of four slots, so a push is amortized constant time and
// small lists don't thrash the allocator.
//
// # Error Policy
//
// Indexed access outside the live range and element removal from an
// empty list are programming errors in the generated code and trap
// through the trap package. Slice is the exception: its range arguments
// clamp, matching the surface language's slicing semantics. Try-prefixed
// variants of the trapping operations return *errors.Error for host code
// that wants to recover.
//
// Operations requiring equality or ordering on the element type
// (Contains, IndexOf, Sort, Min, ...) are package functions because a
// method cannot constrain the receiver's type parameter further.
package list
