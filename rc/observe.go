package rc

import "sync/atomic"

// EventType identifies one object lifecycle transition.
type EventType uint8

const (
	EventCreated EventType = iota
	EventRetained
	EventReleased
	EventDropped
)

// Event describes one lifecycle transition of one object. Count is the
// reference count after the transition.
type Event struct {
	Object Object
	Count  int32
	Type   EventType
}

// Observer receives object lifecycle events. Observers run on the
// mutating goroutine; like the rest of the protocol, subscription is
// not synchronized.
type Observer interface {
	OnObjectEvent(Event)
}

var observers []Observer

// live counts constructed-and-not-yet-freed objects. Atomic so a probe
// or test can read it from another goroutine; everything else in this
// package is single-threaded by contract.
var live atomic.Int64

// Live returns the number of currently alive objects.
func Live() int64 { return live.Load() }

// Subscribe registers an observer for lifecycle events.
func Subscribe(o Observer) {
	observers = append(observers, o)
}

// Unsubscribe removes a previously registered observer.
func Unsubscribe(o Observer) {
	for i, cur := range observers {
		if cur == o {
			observers = append(observers[:i], observers[i+1:]...)
			return
		}
	}
}

func notify(ev Event) {
	for _, o := range observers {
		o.OnObjectEvent(ev)
	}
}
