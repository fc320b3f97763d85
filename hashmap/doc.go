// Package hashmap implements the open-addressing hash table specialized
// by the compiler for every Map<K, V> in the source program.
//
// # Layout
//
// Entries live in a flat slot array whose length is always a power of
// two, so the probe sequence reduces a hash with a mask. Collisions
// resolve by linear probing. Each entry caches its 32-bit hash; a lookup
// compares hashes before keys, and a rehash reuses the cached value
// instead of hashing again.
//
// # Growth
//
// The table doubles and rehashes when an insert would push the load
// factor past 3/4. Deletion backward-shifts the probe cluster rather
// than leaving tombstones, so load never degrades from churn.
//
// # Lookup Contract
//
// Get on an absent key returns the zero value of V without trapping.
// That soft-miss behavior is part of the surface language's map
// semantics and generated code depends on it. Lookup returns an explicit
// presence flag for callers that need the distinction.
package hashmap
