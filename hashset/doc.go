// Package hashset implements the hash set specialized by the compiler
// for every Set<K> in the source program. It is a thin layer over the
// hashmap table with empty values, so membership tests, growth and
// deletion all behave exactly as documented there.
package hashset
