package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which part of the runtime raised the error
type Phase string

const (
	PhaseList  Phase = "list"  // dynamic array operations
	PhaseView  Phase = "view"  // fixed view operations
	PhaseMap   Phase = "map"   // hash map operations
	PhaseSet   Phase = "set"   // hash set operations
	PhaseRC    Phase = "rc"    // reference-counting protocol
	PhaseAlloc Phase = "alloc" // storage allocation and growth
	PhaseArith Phase = "arith" // arithmetic primitives
)

// Kind categorizes the contract violation
type Kind string

const (
	KindOutOfBounds     Kind = "out_of_bounds"
	KindEmptyContainer  Kind = "empty_container"
	KindInvalidRange    Kind = "invalid_range"
	KindInvalidCapacity Kind = "invalid_capacity"
	KindDoubleRelease   Kind = "double_release"
	KindDoubleInit      Kind = "double_init"
	KindUseAfterFree    Kind = "use_after_free"
	KindAllocation      Kind = "allocation"
	KindDivisionByZero  Kind = "division_by_zero"
)

// Error is the structured error type used throughout the runtime's
// checked mode. In strict mode the same values are formatted into the
// fatal diagnostic before the process terminates.
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Op     string
	Detail string
	Index  int
	Length int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Op != "" {
		b.WriteString(" in ")
		b.WriteString(e.Op)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Op sets the operation name
func (b *Builder) Op(op string) *Builder {
	b.err.Op = op
	return b
}

// Index sets the offending index
func (b *Builder) Index(i int) *Builder {
	b.err.Index = i
	return b
}

// Length sets the container length at the time of the violation
func (b *Builder) Length(n int) *Builder {
	b.err.Length = n
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common contract violations

// OutOfBounds creates an out of bounds error with the offending index and length
func OutOfBounds(phase Phase, op string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Op:     op,
		Index:  index,
		Length: length,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
	}
}

// EmptyContainer creates an error for an operation that requires elements
func EmptyContainer(phase Phase, op string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindEmptyContainer,
		Op:     op,
		Detail: op + " on empty container",
	}
}

// InvalidRange creates an error for a malformed index range
func InvalidRange(phase Phase, op string, start, end, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidRange,
		Op:     op,
		Length: length,
		Detail: fmt.Sprintf("range [%d:%d] invalid for length %d", start, end, length),
	}
}

// DoubleRelease creates an error for releasing an already-freed object
func DoubleRelease(typeName string) *Error {
	return &Error{
		Phase:  PhaseRC,
		Kind:   KindDoubleRelease,
		Op:     "release",
		Detail: fmt.Sprintf("release of already-freed %s", typeName),
	}
}

// DoubleInit creates an error for constructing an object that is
// already alive
func DoubleInit(typeName string) *Error {
	return &Error{
		Phase:  PhaseRC,
		Kind:   KindDoubleInit,
		Op:     "init",
		Detail: fmt.Sprintf("init of already-live %s", typeName),
	}
}

// UseAfterFree creates an error for touching a freed object
func UseAfterFree(op, typeName string) *Error {
	return &Error{
		Phase:  PhaseRC,
		Kind:   KindUseAfterFree,
		Op:     op,
		Detail: fmt.Sprintf("%s on freed %s", op, typeName),
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, size int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Length: size,
		Detail: fmt.Sprintf("failed to allocate %d elements", size),
	}
}

// DivisionByZero creates an error for a zero divisor
func DivisionByZero(op string) *Error {
	return &Error{
		Phase:  PhaseArith,
		Kind:   KindDivisionByZero,
		Op:     op,
		Detail: op + " by zero",
	}
}

// InvalidCapacity creates an error for a nonsensical capacity request
func InvalidCapacity(phase Phase, op string, capacity int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidCapacity,
		Op:     op,
		Index:  capacity,
		Detail: fmt.Sprintf("invalid capacity %d", capacity),
	}
}
