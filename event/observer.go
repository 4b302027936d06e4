// Package event implements named publish/subscribe dispatch: an Observer
// mapping event names to subscriber callbacks, a Handler that binds one
// owner's events through a single callback, and a Controller that builds a
// fresh Command for every notification it receives.
//
// Dispatch is synchronous. Notify invokes each callback in the caller's
// goroutine and returns once all of them have run, or as soon as one of
// them returns an error.
//
//	obs := event.NewObserver[string]()
//	obs.Register("saved", func(n *event.Note[string]) error {
//	    fmt.Println(n.Data)
//	    return nil
//	}, "listener")
//	err := obs.Notify("saved", record, "editor")
package event

import (
	"slices"
	"sync"
)

// Callback receives notes for the events it was registered under.
type Callback[K comparable] func(note *Note[K]) error

type subscribers[K comparable] struct {
	order []string
	funcs map[string]Callback[K]
}

// Observer stores, per event name, the callbacks of every subscriber id
// interested in that event. An event entry exists only while at least one
// subscriber is registered for it. Thread-safe for concurrent access; no
// lock is held while callbacks run.
type Observer[K comparable] struct {
	mu        sync.RWMutex
	observers map[K]*subscribers[K]
}

// NewObserver creates an Observer with no subscribers.
func NewObserver[K comparable]() *Observer[K] {
	return &Observer[K]{
		observers: make(map[K]*subscribers[K]),
	}
}

// Register records fn as uid's interest in event. Registering the same
// event/uid pair again replaces the previous callback.
func (o *Observer[K]) Register(event K, fn Callback[K], uid string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	subs, exists := o.observers[event]
	if !exists {
		subs = &subscribers[K]{funcs: make(map[string]Callback[K])}
		o.observers[event] = subs
	}
	if _, exists := subs.funcs[uid]; !exists {
		subs.order = append(subs.order, uid)
	}
	subs.funcs[uid] = fn
}

// Notify delivers a new Note to every callback registered for event, in
// registration order. Notifying an event nobody listens to does nothing.
// The first callback error stops the dispatch and is returned.
func (o *Observer[K]) Notify(event K, data any, uid string, extras ...Extra) error {
	callbacks := o.snapshot(event)
	if len(callbacks) == 0 {
		return nil
	}

	note := NewNote(event, data, uid, extras...)
	for _, fn := range callbacks {
		if err := fn(note); err != nil {
			return err
		}
	}
	return nil
}

// Unregister removes uid's interest in event and drops the event entry once
// no subscribers remain. Unknown events and ids are ignored.
func (o *Observer[K]) Unregister(event K, uid string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	subs, exists := o.observers[event]
	if !exists {
		return
	}

	if _, exists := subs.funcs[uid]; exists {
		delete(subs.funcs, uid)
		if i := slices.Index(subs.order, uid); i >= 0 {
			subs.order = slices.Delete(subs.order, i, i+1)
		}
	}
	if len(subs.funcs) == 0 {
		delete(o.observers, event)
	}
}

// Has reports whether any subscriber is registered for event.
func (o *Observer[K]) Has(event K) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()

	_, exists := o.observers[event]
	return exists
}

// Subscribers returns the ids registered for event in registration order.
func (o *Observer[K]) Subscribers(event K) []string {
	o.mu.RLock()
	defer o.mu.RUnlock()

	subs, exists := o.observers[event]
	if !exists {
		return nil
	}
	return slices.Clone(subs.order)
}

// Events returns every event name with at least one subscriber.
func (o *Observer[K]) Events() []K {
	o.mu.RLock()
	defer o.mu.RUnlock()

	events := make([]K, 0, len(o.observers))
	for event := range o.observers {
		events = append(events, event)
	}
	return events
}

// Len returns the number of event names with subscribers.
func (o *Observer[K]) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return len(o.observers)
}

func (o *Observer[K]) snapshot(event K) []Callback[K] {
	o.mu.RLock()
	defer o.mu.RUnlock()

	subs, exists := o.observers[event]
	if !exists {
		return nil
	}

	callbacks := make([]Callback[K], 0, len(subs.order))
	for _, uid := range subs.order {
		callbacks = append(callbacks, subs.funcs[uid])
	}
	return callbacks
}
