// Package rc implements the manual reference-counting protocol the
// compiler emits for heap objects.
//
// # Protocol
//
// Every generated heap type embeds Header as its first field.
// Construction through New or Init seeds the count to one and hands the
// caller the single owned reference. Retain adds an owner, Release
// removes one; when the count reaches zero the object's Drop destructor
// runs (releasing owned fields in declaration order) and the object is
// marked freed. Store is the canonical field assignment: retain the new
// value, release the old, write. Retain and Release accept nil and do
// nothing.
//
// # Violations
//
// Releasing a freed object, retaining through a dangling reference, and
// re-initializing a live object are protocol violations. Under Strict
// (the default) they are fatal through the trap package; with Strict
// disabled they are silently ignored.
//
// # Cycles
//
// The protocol never collects cycles. Back-edges in generated object
// graphs are Weak references, which do not contribute to the count and
// observe the referent's death through its header.
//
// # Concurrency
//
// The protocol is single-threaded by contract. Header counts, scopes
// and observer lists are unsynchronized; only the global live counter
// is atomic, so monitoring code may read it concurrently.
package rc
