package rc

// Weak is a non-owning back-reference. It does not participate in the
// reference count, so an ownership cycle broken by a Weak back-edge
// frees normally. Get reports liveness from the object's header; after
// the last strong reference is released the weak reference observes the
// object as gone.
//
// The zero Weak is empty and never alive.
type Weak[T any] struct {
	ptr *T
	hdr *Header
}

// WeakOf captures a weak reference to p without retaining it.
func WeakOf[T any, P Ref[T]](p P) Weak[T] {
	if p == nil {
		return Weak[T]{}
	}
	return Weak[T]{ptr: (*T)(p), hdr: p.RefHeader()}
}

// Get returns the referent and whether it is still alive. The pointer
// must not be stored beyond the check without a Retain.
func (w Weak[T]) Get() (*T, bool) {
	if w.hdr == nil || !w.hdr.Alive() {
		return nil, false
	}
	return w.ptr, true
}

// Alive reports whether the referent has not been freed.
func (w Weak[T]) Alive() bool {
	return w.hdr != nil && w.hdr.Alive()
}
