package rc

import (
	"fmt"

	"github.com/emberlang/ember-runtime/errors"
	"github.com/emberlang/ember-runtime/trap"
)

// Strict controls the response to ownership protocol violations: a
// release of an already-freed object, or a retain through a dangling
// reference. When true (the default) the violation is fatal through the
// trap package; when false the operation is a silent no-op so a host
// embedding can limp on.
var Strict = true

// Header carries the reference count for one heap object. Generated
// types embed it as their first field; the embedding also satisfies
// Object. The zero Header is a not-yet-constructed object: count 0,
// not alive.
type Header struct {
	count int32
	dead  bool
}

// RefHeader returns the header itself, satisfying Object for any type
// that embeds Header.
func (h *Header) RefHeader() *Header { return h }

// Refs returns the current reference count.
func (h *Header) Refs() int32 { return h.count }

// Alive reports whether the object has been constructed and not yet
// freed.
func (h *Header) Alive() bool { return h.count > 0 && !h.dead }

// Object is any generated heap object: a pointer to a struct whose
// first field embeds Header.
type Object interface {
	RefHeader() *Header
}

// Dropper is optionally implemented by generated types that own other
// references. Release calls Drop exactly once, when the count reaches
// zero; the generated destructor releases owned fields in declaration
// order.
type Dropper interface {
	Drop()
}

// Ref constrains a pointer to a Header-embedding struct. The *T core
// type lets the compiler infer the pointer parameter at every call
// site, so generated code writes rc.New[Node]() and rc.Release(n).
type Ref[T any] interface {
	Object
	*T
}

// New allocates a zeroed T and seeds its count to one. The returned
// pointer is the single owned reference; the caller is responsible for
// eventually releasing it.
func New[T any, P Ref[T]]() P {
	p := P(new(T))
	construct(p)
	return p
}

// Init seeds an externally allocated object to count one. It is the
// construction path for objects the generated code embeds in other
// storage. Calling Init on an object that is already alive is a protocol
// violation and fatal under Strict.
func Init(obj Object) {
	h := obj.RefHeader()
	if h.Alive() {
		if Strict {
			trap.Fail(errors.DoubleInit(fmt.Sprintf("%T", obj)))
		}
		return
	}
	construct(obj)
}

func construct(obj Object) {
	h := obj.RefHeader()
	h.count = 1
	h.dead = false
	live.Add(1)
	notify(Event{Type: EventCreated, Object: obj, Count: 1})
}

// Retain increments the count and returns p. Retaining nil is a no-op.
// Retaining a freed object is a dangling-reference violation: fatal
// under Strict, otherwise ignored.
func Retain[T any, P Ref[T]](p P) P {
	if p == nil {
		return p
	}
	h := p.RefHeader()
	if h.dead {
		if Strict {
			trap.Fail(errors.UseAfterFree("retain", fmt.Sprintf("%T", p)))
		}
		return p
	}
	h.count++
	notify(Event{Type: EventRetained, Object: p, Count: h.count})
	return p
}

// Release decrements the count; at zero it runs Drop (when implemented),
// marks the object freed and decrements the live counter. Releasing nil
// is a no-op. Releasing a freed object is fatal under Strict, otherwise
// ignored.
func Release[T any, P Ref[T]](p P) {
	if p == nil {
		return
	}
	releaseObject(p)
}

// releaseObject is the shared release path for Release and Scope. obj
// must wrap a non-nil pointer.
func releaseObject(obj Object) {
	h := obj.RefHeader()
	if h.dead {
		if Strict {
			trap.Fail(errors.DoubleRelease(fmt.Sprintf("%T", obj)))
		}
		return
	}
	h.count--
	if h.count > 0 {
		notify(Event{Type: EventReleased, Object: obj, Count: h.count})
		return
	}
	// Mark dead before Drop so a buggy destructor that reaches this
	// object again trips the protocol check instead of recursing.
	h.dead = true
	notify(Event{Type: EventReleased, Object: obj, Count: 0})
	if d, ok := obj.(Dropper); ok {
		d.Drop()
	}
	live.Add(-1)
	notify(Event{Type: EventDropped, Object: obj, Count: 0})
}

// Store is the canonical owned-field assignment: retain the incoming
// value, release the previous occupant, write. The retain-first order
// makes self-assignment safe.
func Store[T any, P Ref[T]](slot *P, v P) {
	Retain(v)
	Release(*slot)
	*slot = v
}

// StoreMoved writes v into slot, consuming the caller's reference:
// the previous occupant is released and v is not retained.
func StoreMoved[T any, P Ref[T]](slot *P, v P) {
	old := *slot
	*slot = v
	Release(old)
}
