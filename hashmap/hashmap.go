package hashmap

import (
	emberruntime "github.com/emberlang/ember-runtime"
	"github.com/emberlang/ember-runtime/hashutil"
	"github.com/emberlang/ember-runtime/list"
)

// initialCapacity is the slot count of a fresh table. Always a power of
// two so the probe sequence can mask instead of divide.
const initialCapacity = 16

type entry[K emberruntime.Key, V any] struct {
	key  K
	val  V
	hash uint32
	used bool
}

// Map is the open-addressing hash table behind every generated Map<K, V>
// specialization. Collisions probe linearly; deletion backward-shifts the
// cluster so the table carries no tombstones. The table doubles and
// rehashes when the load factor reaches 3/4, keeping probe chains short.
//
// The hash function for K is resolved once, at construction. Values are
// never retained or released by the map; element ownership stays with
// the caller.
type Map[K emberruntime.Key, V any] struct {
	entries []entry[K, V]
	size    int
	hash    hashutil.Func[K]
}

// New creates an empty map with the default capacity.
func New[K emberruntime.Key, V any]() *Map[K, V] {
	return &Map[K, V]{
		entries: make([]entry[K, V], initialCapacity),
		hash:    hashutil.For[K](),
	}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.size }

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.size == 0 }

// Cap returns the current slot count.
func (m *Map[K, V]) Cap() int { return len(m.entries) }

// find probes for key. Returns the slot index and whether it is occupied
// by key; on a miss the index is the first free slot of the probe chain.
func (m *Map[K, V]) find(key K, hash uint32) (uint32, bool) {
	mask := uint32(len(m.entries) - 1)
	i := hash & mask
	for m.entries[i].used {
		if m.entries[i].hash == hash && m.entries[i].key == key {
			return i, true
		}
		i = (i + 1) & mask
	}
	return i, false
}

// rehash doubles the table and reinserts every entry.
func (m *Map[K, V]) rehash() {
	old := m.entries
	m.entries = make([]entry[K, V], len(old)*2)
	mask := uint32(len(m.entries) - 1)
	for _, e := range old {
		if !e.used {
			continue
		}
		i := e.hash & mask
		for m.entries[i].used {
			i = (i + 1) & mask
		}
		m.entries[i] = e
	}
}

// Put inserts or replaces the value for key. Only a genuine insert can
// trigger growth; replacing at the load boundary leaves the table alone.
func (m *Map[K, V]) Put(key K, val V) {
	h := m.hash(key)
	i, ok := m.find(key, h)
	if !ok {
		if (m.size+1)*4 > len(m.entries)*3 {
			m.rehash()
			i, _ = m.find(key, h)
		}
		m.size++
	}
	m.entries[i] = entry[K, V]{key: key, val: val, hash: h, used: true}
}

// Get returns the value for key, or the zero value of V when the key is
// absent. Generated code relies on the zero-on-miss contract; host code
// that must distinguish absence uses Lookup.
func (m *Map[K, V]) Get(key K) V {
	i, ok := m.find(key, m.hash(key))
	if !ok {
		var zero V
		return zero
	}
	return m.entries[i].val
}

// Lookup returns the value for key and whether it was present.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	i, ok := m.find(key, m.hash(key))
	if !ok {
		var zero V
		return zero, false
	}
	return m.entries[i].val, true
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.find(key, m.hash(key))
	return ok
}

// GetOr returns the value for key, or def when the key is absent.
func (m *Map[K, V]) GetOr(key K, def V) V {
	if v, ok := m.Lookup(key); ok {
		return v
	}
	return def
}

// PutIfAbsent inserts val only when key is not already present. Reports
// whether the insert happened.
func (m *Map[K, V]) PutIfAbsent(key K, val V) bool {
	if m.Has(key) {
		return false
	}
	m.Put(key, val)
	return true
}

// Delete removes key, reporting whether it was present. Removal
// backward-shifts the following cluster so lookups never cross a hole.
func (m *Map[K, V]) Delete(key K) bool {
	i, ok := m.find(key, m.hash(key))
	if !ok {
		return false
	}
	mask := uint32(len(m.entries) - 1)
	j := i
	for {
		j = (j + 1) & mask
		if !m.entries[j].used {
			break
		}
		// an entry moves back only if its ideal slot lies cyclically
		// at or before the hole
		ideal := m.entries[j].hash & mask
		if (j-ideal)&mask >= (j-i)&mask {
			m.entries[i] = m.entries[j]
			i = j
		}
	}
	m.entries[i] = entry[K, V]{}
	m.size--
	return true
}

// Clear removes every entry, keeping the current capacity.
func (m *Map[K, V]) Clear() {
	for i := range m.entries {
		m.entries[i] = entry[K, V]{}
	}
	m.size = 0
}

// ForEach calls fn for every entry. Iteration order is unspecified. fn
// must not mutate the map.
func (m *Map[K, V]) ForEach(fn func(K, V)) {
	for i := range m.entries {
		if m.entries[i].used {
			fn(m.entries[i].key, m.entries[i].val)
		}
	}
}

// Keys returns the keys as a new list, in unspecified order.
func (m *Map[K, V]) Keys() *list.List[K] {
	keys := list.New[K]()
	m.ForEach(func(k K, _ V) { keys.Push(k) })
	return keys
}

// Values returns the values as a new list, in unspecified order.
func (m *Map[K, V]) Values() *list.List[V] {
	vals := list.New[V]()
	m.ForEach(func(_ K, v V) { vals.Push(v) })
	return vals
}

// Merge inserts every entry of other into m; other's values win on
// conflicting keys. other is left untouched.
func (m *Map[K, V]) Merge(other *Map[K, V]) {
	other.ForEach(func(k K, v V) { m.Put(k, v) })
}

// Copy returns a new map with the same entries.
func (m *Map[K, V]) Copy() *Map[K, V] {
	c := &Map[K, V]{
		entries: make([]entry[K, V], len(m.entries)),
		size:    m.size,
		hash:    m.hash,
	}
	copy(c.entries, m.entries)
	return c
}

// Free releases the table storage. Contained values are not released.
// The map must not be used afterward except through New.
func (m *Map[K, V]) Free() {
	m.entries = nil
	m.size = 0
}

// ContainsValue reports whether any entry holds v. O(n).
func ContainsValue[K emberruntime.Key, V comparable](m *Map[K, V], v V) bool {
	found := false
	m.ForEach(func(_ K, val V) {
		if val == v {
			found = true
		}
	})
	return found
}
