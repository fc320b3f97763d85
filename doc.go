// Package emberruntime is the runtime support library for code emitted by
// the Ember compiler.
//
// Generated Go code does not manage memory or containers ad hoc: it calls
// into this library for every heap object lifetime transition and every
// generic container operation. The library therefore defines two contracts
// the code generator must honor:
//
//   - the reference-counting ownership protocol (package rc): every
//     constructor yields exactly one owned reference, every owned
//     reference is released exactly once, field stores go through
//     rc.Store so the prior occupant is released.
//   - the monomorphized container family (packages list, view, hashmap,
//     hashset): one concrete specialization per element or key/value
//     type, selected by the generator, never mixed across
//     specializations.
//
// # Architecture Overview
//
// The library is organized into small packages with distinct
// responsibilities:
//
//	emberruntime/        Root package with shared key/scalar constraints
//	├── rc/              Reference-counted object protocol
//	├── list/            List[T] growable dynamic array
//	├── view/            View[T] fixed-length non-owning view
//	├── hashmap/         Map[K,V] open-addressing hash map
//	├── hashset/         Set[K] open-addressing hash set
//	├── hashutil/        String/scalar hashing and dispatch selection
//	├── arith/           Checked integer division primitives
//	├── errors/          Structured error types for the checked mode
//	├── trap/            Fatal diagnostics: log, then terminate
//	└── cmd/probe/       Interactive runtime playground
//
// # Error Policy
//
// Contract violations (out-of-bounds access, pop from an empty list,
// double release) are not recoverable from generated code: the offending
// operation logs a diagnostic to stderr and terminates the process with a
// non-zero status. Embedders that want different behavior install a
// handler with trap.SetHandler. Operations with a Try prefix return a
// structured *errors.Error instead of trapping.
//
// One deliberate exception: hashmap.Map.Get on an absent key returns the
// value type's zero value. Generated code relies on that soft-failure
// contract and must track presence separately (Has, GetOr).
//
// # Concurrency
//
// The runtime is single-threaded by contract. Counts and container
// internals are unsynchronized; whichever code holds a live reference may
// mutate the payload. Concurrent use requires external synchronization.
package emberruntime
