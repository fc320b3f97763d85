package hashset

import (
	emberruntime "github.com/emberlang/ember-runtime"
	"github.com/emberlang/ember-runtime/hashmap"
	"github.com/emberlang/ember-runtime/list"
)

// Set is the hash set behind every generated Set<K> specialization. It
// wraps the hashmap table with empty values, inheriting its probing,
// growth and deletion behavior.
type Set[K emberruntime.Key] struct {
	m *hashmap.Map[K, struct{}]
}

// New creates an empty set.
func New[K emberruntime.Key]() *Set[K] {
	return &Set[K]{m: hashmap.New[K, struct{}]()}
}

// Of creates a set holding the given members.
func Of[K emberruntime.Key](members ...K) *Set[K] {
	s := New[K]()
	for _, k := range members {
		s.Add(k)
	}
	return s
}

// Len returns the number of members.
func (s *Set[K]) Len() int { return s.m.Len() }

// IsEmpty reports whether the set has no members.
func (s *Set[K]) IsEmpty() bool { return s.m.IsEmpty() }

// Add inserts k, reporting whether it was newly added.
func (s *Set[K]) Add(k K) bool {
	return s.m.PutIfAbsent(k, struct{}{})
}

// Has reports whether k is a member.
func (s *Set[K]) Has(k K) bool { return s.m.Has(k) }

// Delete removes k, reporting whether it was present.
func (s *Set[K]) Delete(k K) bool { return s.m.Delete(k) }

// Clear removes every member, keeping capacity.
func (s *Set[K]) Clear() { s.m.Clear() }

// ForEach calls fn for every member in unspecified order.
func (s *Set[K]) ForEach(fn func(K)) {
	s.m.ForEach(func(k K, _ struct{}) { fn(k) })
}

// Filter returns a new set of the members satisfying pred.
func (s *Set[K]) Filter(pred func(K) bool) *Set[K] {
	r := New[K]()
	s.ForEach(func(k K) {
		if pred(k) {
			r.Add(k)
		}
	})
	return r
}

// Any reports whether pred holds for at least one member.
func (s *Set[K]) Any(pred func(K) bool) bool {
	found := false
	s.ForEach(func(k K) {
		if pred(k) {
			found = true
		}
	})
	return found
}

// All reports whether pred holds for every member.
func (s *Set[K]) All(pred func(K) bool) bool {
	ok := true
	s.ForEach(func(k K) {
		if !pred(k) {
			ok = false
		}
	})
	return ok
}

// ToList returns the members as a new list, in unspecified order.
func (s *Set[K]) ToList() *list.List[K] {
	return s.m.Keys()
}

// Copy returns an independent set with the same members.
func (s *Set[K]) Copy() *Set[K] {
	return &Set[K]{m: s.m.Copy()}
}

// Union returns a new set holding the members of s and other.
func (s *Set[K]) Union(other *Set[K]) *Set[K] {
	r := s.Copy()
	other.ForEach(func(k K) { r.Add(k) })
	return r
}

// Intersect returns a new set holding the members present in both.
func (s *Set[K]) Intersect(other *Set[K]) *Set[K] {
	return s.Filter(other.Has)
}

// Subtract returns a new set holding the members of s not in other.
func (s *Set[K]) Subtract(other *Set[K]) *Set[K] {
	return s.Filter(func(k K) bool { return !other.Has(k) })
}

// Free releases the underlying table. Members are not released.
func (s *Set[K]) Free() { s.m.Free() }
