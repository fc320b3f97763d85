// Package errors provides structured error types for the ember runtime.
//
// Errors are categorized by Phase (which part of the runtime raised the
// error) and Kind (the contract that was violated). The Error type carries
// the offending index and container length so fatal diagnostics can name
// them, as the ownership and container contracts require.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseList, errors.KindOutOfBounds).
//		Op("get").
//		Index(10).
//		Length(5).
//		Detail("index 10 out of bounds (length 5)").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseList, "get", 10, 5)
//	err := errors.DoubleRelease("Node")
//
// All errors implement the standard error interface and support
// errors.Is/As. In strict mode these values are never observed by callers:
// the trap package formats them into the final diagnostic and terminates
// the process. In checked mode the Try-prefixed container operations
// return them directly.
package errors
