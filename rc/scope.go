package rc

// Scope is the lexical cleanup list the compiler emits for a function
// body: every owned temporary is tracked, and one Release call at scope
// exit releases them in reverse tracking order. A returned value escapes
// the scope so ownership transfers to the caller.
//
// The zero Scope is ready to use.
type Scope struct {
	tracked []Object
}

// Track registers obj for release at scope exit. obj must wrap a
// non-nil pointer; generated code only tracks objects it just received
// ownership of.
func (s *Scope) Track(obj Object) {
	s.tracked = append(s.tracked, obj)
}

// Tracked registers p and returns it, so a construction can be tracked
// inline.
func Tracked[T any, P Ref[T]](s *Scope, p P) P {
	if p != nil {
		s.Track(p)
	}
	return p
}

// Escape removes obj from the cleanup list without releasing it. Used
// for the returned value, whose reference moves to the caller. Escaping
// an untracked object is a no-op.
func (s *Scope) Escape(obj Object) {
	for i := len(s.tracked) - 1; i >= 0; i-- {
		if s.tracked[i] == obj {
			s.tracked = append(s.tracked[:i], s.tracked[i+1:]...)
			return
		}
	}
}

// Release releases every remaining tracked object in reverse order and
// empties the scope. The scope is reusable afterward.
func (s *Scope) Release() {
	for i := len(s.tracked) - 1; i >= 0; i-- {
		releaseObject(s.tracked[i])
	}
	s.tracked = s.tracked[:0]
}

// Len returns the number of objects still tracked.
func (s *Scope) Len() int { return len(s.tracked) }
