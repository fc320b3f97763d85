// Package arith implements the checked arithmetic primitives the
// compiler emits for operations with undefined hardware behavior.
// Division and remainder trap on a zero divisor instead of letting the
// process take a hardware fault.
package arith

import (
	"github.com/emberlang/ember-runtime/errors"
	"github.com/emberlang/ember-runtime/trap"
)

// Integer is any built-in integer type the surface language divides.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Div returns a / b. Fatal when b is zero.
func Div[T Integer](a, b T) T {
	if b == 0 {
		trap.Fail(errors.DivisionByZero("div"))
	}
	return a / b
}

// Mod returns a % b. Fatal when b is zero.
func Mod[T Integer](a, b T) T {
	if b == 0 {
		trap.Fail(errors.DivisionByZero("mod"))
	}
	return a % b
}

// TryDiv is the checked form of Div.
func TryDiv[T Integer](a, b T) (T, *errors.Error) {
	if b == 0 {
		var zero T
		return zero, errors.DivisionByZero("div")
	}
	return a / b, nil
}

// TryMod is the checked form of Mod.
func TryMod[T Integer](a, b T) (T, *errors.Error) {
	if b == 0 {
		var zero T
		return zero, errors.DivisionByZero("mod")
	}
	return a % b, nil
}
