// Package trap implements the runtime's fatal path.
//
// Generated code has no recoverable-error channel: an out-of-bounds index,
// a pop from an empty list, or a double release is a bug in the generator
// or in hand-written glue, not a runtime condition. Every such violation
// is routed through Fail, which writes a one-line diagnostic (including
// the offending index and length) to stderr, logs it through the
// configured zap logger, and terminates the process with a non-zero
// status.
//
// Tests and embedders that need to observe fatal paths without dying
// install a panicking handler:
//
//	prev := trap.SetHandler(func(err *errors.Error) { panic(err) })
//	defer trap.SetHandler(prev)
//
// Fail never returns even under a non-terminating handler; it panics as a
// backstop so execution cannot continue past a violated contract.
package trap
