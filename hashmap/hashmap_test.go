package hashmap

import (
	"fmt"
	"testing"

	"github.com/emberlang/ember-runtime/list"
)

func TestMap_PutGet(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)

	if m.Len() != 2 {
		t.Fatalf("Len = %d, want 2", m.Len())
	}
	if m.Get("a") != 1 || m.Get("b") != 2 {
		t.Fatalf("Get = %d/%d", m.Get("a"), m.Get("b"))
	}

	m.Put("a", 10) // replace, size unchanged
	if m.Get("a") != 10 || m.Len() != 2 {
		t.Fatalf("after replace: Get(a)=%d Len=%d", m.Get("a"), m.Len())
	}
}

func TestMap_GetMissIsZero(t *testing.T) {
	m := New[string, int]()
	if m.Get("missing") != 0 {
		t.Fatal("Get on absent key must return the zero value")
	}

	ms := New[int, string]()
	if ms.Get(7) != "" {
		t.Fatal("Get on absent key must return the zero string")
	}
}

func TestMap_GetMissDoesNotMutate(t *testing.T) {
	// Integer keys hash to themselves: 0, 16 and 32 form one probe
	// cluster at slot 0 of the fresh 16-slot table, and 48 collides
	// with it, so the miss probes through occupied slots.
	m := New[int, int]()
	for _, k := range []int{0, 16, 32} {
		m.Put(k, k*10)
	}
	size, cap := m.Len(), m.Cap()

	if m.Get(48) != 0 {
		t.Fatal("miss through the cluster must return zero")
	}
	if m.Get(7) != 0 {
		t.Fatal("miss on an empty slot must return zero")
	}
	for i := 0; i < 100; i++ {
		m.Get(48 + i*16) // every one collides and misses
	}

	if m.Len() != size || m.Cap() != cap {
		t.Fatalf("miss mutated the table: len %d→%d, cap %d→%d",
			size, m.Len(), cap, m.Cap())
	}
	for _, k := range []int{0, 16, 32} {
		if m.Get(k) != k*10 {
			t.Fatalf("Get(%d) = %d after misses, want %d", k, m.Get(k), k*10)
		}
	}
	if m.Has(48) {
		t.Fatal("missed key must not appear in the table")
	}
}

func TestMap_Lookup(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 0) // zero value stored deliberately

	v, ok := m.Lookup("a")
	if !ok || v != 0 {
		t.Fatalf("Lookup(a) = %d, %v", v, ok)
	}
	if _, ok := m.Lookup("b"); ok {
		t.Fatal("Lookup on absent key should report false")
	}
}

func TestMap_HasGetOr(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)

	if !m.Has("a") || m.Has("b") {
		t.Fatal("Has mismatch")
	}
	if m.GetOr("a", 9) != 1 || m.GetOr("b", 9) != 9 {
		t.Fatal("GetOr mismatch")
	}
}

func TestMap_PutIfAbsent(t *testing.T) {
	m := New[string, int]()
	if !m.PutIfAbsent("a", 1) {
		t.Fatal("first PutIfAbsent should insert")
	}
	if m.PutIfAbsent("a", 2) {
		t.Fatal("second PutIfAbsent should not insert")
	}
	if m.Get("a") != 1 {
		t.Fatalf("Get(a) = %d, want 1", m.Get("a"))
	}
}

func TestMap_Delete(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)

	if !m.Delete("a") {
		t.Fatal("Delete(a) should report true")
	}
	if m.Delete("a") {
		t.Fatal("second Delete(a) should report false")
	}
	if m.Has("a") || !m.Has("b") || m.Len() != 1 {
		t.Fatal("state wrong after delete")
	}
}

func TestMap_DeletePreservesProbeChains(t *testing.T) {
	// Integer keys hash to themselves, so with the fresh 16-slot table
	// the keys 0, 16 and 32 all collide on slot 0 and probe into one
	// cluster. Deleting the head forces the backward shift.
	m := New[int, int]()
	for _, k := range []int{0, 16, 32} {
		m.Put(k, k*100)
	}
	if !m.Delete(0) {
		t.Fatal("Delete(0) missed")
	}
	for _, k := range []int{16, 32} {
		if m.Get(k) != k*100 {
			t.Fatalf("Get(%d) = %d after delete, want %d", k, m.Get(k), k*100)
		}
	}
	if !m.Delete(32) || !m.Delete(16) || m.Len() != 0 {
		t.Fatal("cluster did not drain cleanly")
	}
}

func TestMap_GrowthRehash(t *testing.T) {
	m := New[int, int]()
	if m.Cap() != 16 {
		t.Fatalf("fresh Cap = %d, want 16", m.Cap())
	}
	for k := 0; k < 1000; k++ {
		m.Put(k, k*k)
	}
	if m.Len() != 1000 {
		t.Fatalf("Len = %d, want 1000", m.Len())
	}
	if m.Cap()*3 < m.Len()*4 {
		t.Fatalf("load factor above 3/4: size=%d cap=%d", m.Len(), m.Cap())
	}
	for k := 0; k < 1000; k++ {
		if m.Get(k) != k*k {
			t.Fatalf("Get(%d) = %d after growth, want %d", k, m.Get(k), k*k)
		}
	}
}

func TestMap_OverwriteAtLoadBoundaryKeepsCapacity(t *testing.T) {
	// 12 entries put the fresh 16-slot table exactly at 3/4 load.
	m := New[int, int]()
	for k := 0; k < 12; k++ {
		m.Put(k, k)
	}
	if m.Cap() != 16 || m.Len() != 12 {
		t.Fatalf("setup: len=%d cap=%d, want 12/16", m.Len(), m.Cap())
	}

	m.Put(3, 99) // replacement, not an insert: must not rehash
	if m.Cap() != 16 {
		t.Fatalf("overwrite at the boundary grew the table to %d", m.Cap())
	}
	if m.Get(3) != 99 || m.Len() != 12 {
		t.Fatalf("overwrite wrong: Get(3)=%d len=%d", m.Get(3), m.Len())
	}

	m.Put(12, 12) // a real insert crosses the boundary
	if m.Cap() != 32 || m.Len() != 13 {
		t.Fatalf("insert past the boundary: len=%d cap=%d, want 13/32", m.Len(), m.Cap())
	}
	for k := 0; k < 13; k++ {
		want := k
		if k == 3 {
			want = 99
		}
		if m.Get(k) != want {
			t.Fatalf("Get(%d) = %d after growth, want %d", k, m.Get(k), want)
		}
	}
}

func TestMap_StringKeysChurn(t *testing.T) {
	m := New[string, int]()
	for i := 0; i < 500; i++ {
		m.Put(fmt.Sprintf("key-%d", i), i)
	}
	for i := 0; i < 500; i += 2 {
		if !m.Delete(fmt.Sprintf("key-%d", i)) {
			t.Fatalf("Delete(key-%d) missed", i)
		}
	}
	if m.Len() != 250 {
		t.Fatalf("Len = %d, want 250", m.Len())
	}
	for i := 1; i < 500; i += 2 {
		if m.Get(fmt.Sprintf("key-%d", i)) != i {
			t.Fatalf("Get(key-%d) wrong after churn", i)
		}
	}
}

func TestMap_Clear(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)
	cap := m.Cap()
	m.Clear()
	if m.Len() != 0 || !m.IsEmpty() || m.Cap() != cap {
		t.Fatal("Clear should empty the map but keep capacity")
	}
	if m.Has("a") {
		t.Fatal("cleared key still present")
	}
	m.Put("a", 3)
	if m.Get("a") != 3 {
		t.Fatal("map unusable after Clear")
	}
}

func TestMap_KeysValues(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)

	keys := m.Keys()
	vals := m.Values()
	if keys.Len() != 3 || vals.Len() != 3 {
		t.Fatalf("Keys/Values lens = %d/%d", keys.Len(), vals.Len())
	}
	for _, k := range []string{"a", "b", "c"} {
		if !list.Contains(keys, k) {
			t.Fatalf("Keys missing %q", k)
		}
	}
	for _, v := range []int{1, 2, 3} {
		if !list.Contains(vals, v) {
			t.Fatalf("Values missing %d", v)
		}
	}
}

func TestMap_ForEach(t *testing.T) {
	m := New[int, int]()
	for k := 0; k < 10; k++ {
		m.Put(k, k*2)
	}
	sum := 0
	n := 0
	m.ForEach(func(k, v int) {
		if v != k*2 {
			t.Fatalf("ForEach pair %d→%d", k, v)
		}
		sum += v
		n++
	})
	if n != 10 || sum != 90 {
		t.Fatalf("ForEach visited %d entries, sum %d", n, sum)
	}
}

func TestMap_Merge(t *testing.T) {
	a := New[string, int]()
	a.Put("x", 1)
	a.Put("y", 2)
	b := New[string, int]()
	b.Put("y", 20)
	b.Put("z", 30)

	a.Merge(b)
	if a.Len() != 3 || a.Get("x") != 1 || a.Get("y") != 20 || a.Get("z") != 30 {
		t.Fatalf("after merge: %d entries, y=%d", a.Len(), a.Get("y"))
	}
	if b.Len() != 2 || b.Get("y") != 20 {
		t.Fatal("merge must not mutate its argument")
	}
}

func TestMap_Copy(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	c := m.Copy()
	c.Put("a", 2)
	c.Put("b", 3)
	if m.Get("a") != 1 || m.Has("b") {
		t.Fatal("Copy must be independent of the original")
	}
}

func TestMap_ContainsValue(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)
	if !ContainsValue(m, 2) || ContainsValue(m, 3) {
		t.Fatal("ContainsValue mismatch")
	}
}

func TestMap_FloatKeys(t *testing.T) {
	m := New[float64, string]()
	m.Put(1.5, "x")
	m.Put(-2.25, "y")
	if m.Get(1.5) != "x" || m.Get(-2.25) != "y" {
		t.Fatal("float keys misbehave")
	}
}
