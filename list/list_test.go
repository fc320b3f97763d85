package list

import (
	"testing"

	"github.com/emberlang/ember-runtime/errors"
	"github.com/emberlang/ember-runtime/trap"
)

func trapPanics(t *testing.T) {
	t.Helper()
	prev := trap.SetHandler(func(err *errors.Error) { panic(err) })
	t.Cleanup(func() { trap.SetHandler(prev) })
}

func expectTrap(t *testing.T, kind errors.Kind, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected fatal trap")
		}
		err, ok := r.(*errors.Error)
		if !ok {
			t.Fatalf("trap payload is %T, want *errors.Error", r)
		}
		if err.Kind != kind {
			t.Fatalf("trap kind = %q, want %q", err.Kind, kind)
		}
	}()
	fn()
}

func intsEqual(t *testing.T, l *List[int], want []int) {
	t.Helper()
	if l.Len() != len(want) {
		t.Fatalf("Len = %d, want %d", l.Len(), len(want))
	}
	for i, w := range want {
		if got := l.Get(i); got != w {
			t.Fatalf("Get(%d) = %d, want %d", i, got, w)
		}
	}
}

func TestList_PushGetLen(t *testing.T) {
	l := New[int]()
	for i := 0; i < 100; i++ {
		l.Push(i * 3)
		if l.Len() != i+1 {
			t.Fatalf("Len after %d pushes = %d", i+1, l.Len())
		}
	}
	for i := 0; i < 100; i++ {
		if l.Get(i) != i*3 {
			t.Fatalf("Get(%d) = %d, want %d", i, l.Get(i), i*3)
		}
	}
}

func TestList_GrowthPolicy(t *testing.T) {
	l := New[int]()
	if l.Cap() != 0 {
		t.Fatalf("fresh list Cap = %d, want 0", l.Cap())
	}
	l.Push(1)
	if l.Cap() != 4 {
		t.Fatalf("Cap after first push = %d, want 4", l.Cap())
	}
	for i := 0; i < 4; i++ {
		l.Push(i)
	}
	if l.Cap() != 8 {
		t.Fatalf("Cap after exceeding 4 = %d, want 8", l.Cap())
	}
}

func TestList_PopLIFO(t *testing.T) {
	l := FromSlice([]string{"a", "b", "c"})
	if got := l.Pop(); got != "c" {
		t.Fatalf("Pop = %q, want c", got)
	}
	if got := l.Pop(); got != "b" {
		t.Fatalf("Pop = %q, want b", got)
	}
	if l.Len() != 1 {
		t.Fatalf("Len = %d, want 1", l.Len())
	}
}

func TestList_PopEmptyTraps(t *testing.T) {
	trapPanics(t)
	l := New[int]()
	expectTrap(t, errors.KindEmptyContainer, func() { l.Pop() })
}

func TestList_TryPop(t *testing.T) {
	l := New[int]()
	if _, err := l.TryPop(); err == nil {
		t.Fatal("TryPop on empty list should error")
	}
	l.Push(7)
	v, err := l.TryPop()
	if err != nil || v != 7 {
		t.Fatalf("TryPop = %d, %v", v, err)
	}
}

func TestList_BoundsTrap(t *testing.T) {
	trapPanics(t)
	l := FromSlice([]int{1, 2, 3})
	expectTrap(t, errors.KindOutOfBounds, func() { l.Get(3) })
	expectTrap(t, errors.KindOutOfBounds, func() { l.Get(-1) })
	expectTrap(t, errors.KindOutOfBounds, func() { l.Set(3, 0) })
	expectTrap(t, errors.KindOutOfBounds, func() { l.Remove(3) })
	expectTrap(t, errors.KindOutOfBounds, func() { l.Insert(4, 0) })
}

func TestList_TryGetTrySet(t *testing.T) {
	l := FromSlice([]int{5})
	if _, err := l.TryGet(1); err == nil {
		t.Fatal("TryGet(1) should error")
	}
	if err := l.TrySet(1, 0); err == nil {
		t.Fatal("TrySet(1) should error")
	}
	v, err := l.TryGet(0)
	if err != nil || v != 5 {
		t.Fatalf("TryGet(0) = %d, %v", v, err)
	}
}

func TestList_InsertRemove(t *testing.T) {
	l := FromSlice([]int{1, 3})
	l.Insert(1, 2)
	intsEqual(t, l, []int{1, 2, 3})
	l.Insert(3, 4) // insert at len appends
	intsEqual(t, l, []int{1, 2, 3, 4})
	l.Insert(0, 0)
	intsEqual(t, l, []int{0, 1, 2, 3, 4})

	if got := l.Remove(0); got != 0 {
		t.Fatalf("Remove(0) = %d, want 0", got)
	}
	if got := l.Remove(2); got != 3 {
		t.Fatalf("Remove(2) = %d, want 3", got)
	}
	intsEqual(t, l, []int{1, 2, 4})
}

func TestList_SliceClamping(t *testing.T) {
	l := FromSlice([]int{0, 1, 2, 3, 4})

	intsEqual(t, l.Slice(1, 3), []int{1, 2})
	intsEqual(t, l.Slice(-2, 5), []int{3, 4})    // negative start from end
	intsEqual(t, l.Slice(0, -1), []int{0, 1, 2, 3}) // negative end from end
	intsEqual(t, l.Slice(-100, 100), []int{0, 1, 2, 3, 4})
	intsEqual(t, l.Slice(3, 1), []int{})  // inverted range is empty, no trap
	intsEqual(t, l.Slice(9, 12), []int{}) // fully out of range
}

func TestList_TakeDrop(t *testing.T) {
	l := FromSlice([]int{1, 2, 3, 4})
	intsEqual(t, l.Take(2), []int{1, 2})
	intsEqual(t, l.Take(10), []int{1, 2, 3, 4})
	intsEqual(t, l.Drop(2), []int{3, 4})
	intsEqual(t, l.Drop(10), []int{})
}

func TestList_ReverseAndCopy(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	r := l.Reversed()
	intsEqual(t, r, []int{3, 2, 1})
	intsEqual(t, l, []int{1, 2, 3}) // original untouched

	c := l.Copy()
	c.Set(0, 99)
	intsEqual(t, l, []int{1, 2, 3})

	l.Reverse()
	intsEqual(t, l, []int{3, 2, 1})
}

func TestList_ExtendFillClear(t *testing.T) {
	l := FromSlice([]int{1, 2})
	l.Extend(FromSlice([]int{3, 4}))
	intsEqual(t, l, []int{1, 2, 3, 4})

	l.Fill(7)
	intsEqual(t, l, []int{7, 7, 7, 7})

	cap := l.Cap()
	l.Clear()
	if l.Len() != 0 || l.Cap() != cap {
		t.Fatalf("Clear: len=%d cap=%d, want 0 and %d", l.Len(), l.Cap(), cap)
	}
}

func TestList_FirstLastSwap(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	if l.First() != 1 || l.Last() != 3 {
		t.Fatalf("First/Last = %d/%d", l.First(), l.Last())
	}
	l.Swap(0, 2)
	intsEqual(t, l, []int{3, 2, 1})

	trapPanics(t)
	empty := New[int]()
	expectTrap(t, errors.KindEmptyContainer, func() { empty.First() })
	expectTrap(t, errors.KindEmptyContainer, func() { empty.Last() })
	expectTrap(t, errors.KindOutOfBounds, func() { l.Swap(0, 3) })
}

func TestList_FunctionalOps(t *testing.T) {
	l := FromSlice([]int{1, 2, 3, 4, 5})

	even := l.Filter(func(v int) bool { return v%2 == 0 })
	intsEqual(t, even, []int{2, 4})

	doubled := l.Map(func(v int) int { return v * 2 })
	intsEqual(t, doubled, []int{2, 4, 6, 8, 10})

	if sum := l.Reduce(0, func(acc, v int) int { return acc + v }); sum != 15 {
		t.Fatalf("Reduce sum = %d, want 15", sum)
	}

	if !l.Any(func(v int) bool { return v > 4 }) {
		t.Fatal("Any(>4) should be true")
	}
	if l.All(func(v int) bool { return v > 1 }) {
		t.Fatal("All(>1) should be false")
	}
	if idx := l.FindIndex(func(v int) bool { return v == 3 }); idx != 2 {
		t.Fatalf("FindIndex = %d, want 2", idx)
	}
	if idx := l.FindIndex(func(v int) bool { return v == 9 }); idx != -1 {
		t.Fatalf("FindIndex missing = %d, want -1", idx)
	}

	var visited []int
	l.ForEach(func(v int) { visited = append(visited, v) })
	if len(visited) != 5 || visited[0] != 1 || visited[4] != 5 {
		t.Fatalf("ForEach visited %v", visited)
	}
}

func TestList_EqualityOps(t *testing.T) {
	l := FromSlice([]int{3, 1, 3, 2, 3})

	if !Contains(l, 2) || Contains(l, 9) {
		t.Fatal("Contains mismatch")
	}
	if IndexOf(l, 3) != 0 || LastIndexOf(l, 3) != 4 {
		t.Fatalf("IndexOf/LastIndexOf = %d/%d", IndexOf(l, 3), LastIndexOf(l, 3))
	}
	if IndexOf(l, 9) != -1 {
		t.Fatal("IndexOf missing should be -1")
	}
	if Count(l, 3) != 3 {
		t.Fatalf("Count(3) = %d, want 3", Count(l, 3))
	}

	if removed := RemoveAll(l, 3); removed != 3 {
		t.Fatalf("RemoveAll removed %d, want 3", removed)
	}
	intsEqual(t, l, []int{1, 2})
}

func TestList_Distinct(t *testing.T) {
	l := FromSlice([]int{2, 1, 2, 3, 1})
	d := Distinct(l)
	intsEqual(t, d, []int{2, 1, 3}) // first occurrence order
}

func TestList_Sort(t *testing.T) {
	l := FromSlice([]int{5, 2, 4, 1, 3})
	Sort(l)
	intsEqual(t, l, []int{1, 2, 3, 4, 5})
	Sort(l) // sorting a sorted list is a no-op
	intsEqual(t, l, []int{1, 2, 3, 4, 5})

	s := FromSlice([]string{"pear", "apple", "fig"})
	sorted := Sorted(s)
	if sorted.Get(0) != "apple" || sorted.Get(2) != "pear" {
		t.Fatalf("Sorted strings = %v", sorted.ToSlice())
	}
	if s.Get(0) != "pear" {
		t.Fatal("Sorted must not mutate its input")
	}
}

func TestList_SortDuplicates(t *testing.T) {
	l := FromSlice([]int{2, 1, 2, 1})
	Sort(l)
	intsEqual(t, l, []int{1, 1, 2, 2})
}

func TestList_MinMaxSum(t *testing.T) {
	l := FromSlice([]int{4, 1, 7, 2})
	if Min(l) != 1 || Max(l) != 7 || Sum(l) != 14 {
		t.Fatalf("Min/Max/Sum = %d/%d/%d", Min(l), Max(l), Sum(l))
	}

	trapPanics(t)
	empty := New[int]()
	expectTrap(t, errors.KindEmptyContainer, func() { Min(empty) })
	expectTrap(t, errors.KindEmptyContainer, func() { Max(empty) })
}

func TestList_ViewWindow(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	v := l.View()
	if v.Len() != 3 || v.At(1) != 2 {
		t.Fatalf("View = len %d, At(1) %d", v.Len(), v.At(1))
	}
	l.Set(1, 20)
	if v.At(1) != 20 {
		t.Fatal("View should alias the list storage")
	}
}

func TestList_Free(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	l.Free()
	if l.Len() != 0 || l.Cap() != 0 {
		t.Fatalf("after Free: len=%d cap=%d", l.Len(), l.Cap())
	}
	l.Push(1) // reusable as an empty list
	intsEqual(t, l, []int{1})
}
