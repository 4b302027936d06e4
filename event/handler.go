package event

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/tailored-agentic-units/ymvc/registry"
)

// HandlerFunc handles a note for one bound event.
type HandlerFunc[K comparable] func(note *Note[K]) error

// Handler binds event names to handler functions on behalf of a single
// owner. The Observer only ever sees the Handler's own HandleNote under the
// Handler's id; the per-event functions live in the Handler's binding table.
type Handler[K comparable] struct {
	id       string
	events   *registry.UniqueDict[K, HandlerFunc[K]]
	observer *Observer[K]
}

// NewHandler creates a Handler attached to observer.
// The handler is assigned a unique UUIDv7 identifier.
func NewHandler[K comparable](observer *Observer[K]) *Handler[K] {
	return &Handler[K]{
		id:       uuid.Must(uuid.NewV7()).String(),
		events:   registry.NewUniqueDict[K, HandlerFunc[K]](),
		observer: observer,
	}
}

// ID returns the subscriber id this handler registers under.
func (h *Handler[K]) ID() string {
	return h.id
}

// Observer returns the observer this handler registers with.
func (h *Handler[K]) Observer() *Observer[K] {
	return h.observer
}

// Bind records fn for event and registers interest in event.
// Returns registry.ErrDuplicateKey if event is already bound.
func (h *Handler[K]) Bind(event K, fn HandlerFunc[K]) error {
	if err := h.events.Set(event, fn); err != nil {
		return err
	}
	h.registerEvent(event)
	return nil
}

// Unbind forgets the binding for event and unregisters interest in it.
// Returns registry.ErrKeyNotFound if event is not bound.
func (h *Handler[K]) Unbind(event K) error {
	if _, err := h.events.Delete(event); err != nil {
		return err
	}
	h.unregisterEvent(event)
	return nil
}

// Bound reports whether event has a binding.
func (h *Handler[K]) Bound(event K) bool {
	return h.events.Has(event)
}

// Events returns the bound event names in binding order.
func (h *Handler[K]) Events() []K {
	return h.events.Keys()
}

// HandleNote invokes the function bound to the note's event.
func (h *Handler[K]) HandleNote(note *Note[K]) error {
	fn, err := h.events.Get(note.EventName)
	if err != nil {
		return fmt.Errorf("handler %s: %w", h.id, err)
	}
	return fn(note)
}

// UnregisterAll withdraws interest in every bound event. Bindings are kept,
// so Rebind can restore them.
func (h *Handler[K]) UnregisterAll() {
	for _, event := range h.events.Keys() {
		h.unregisterEvent(event)
	}
}

// Rebind registers interest in every bound event again.
func (h *Handler[K]) Rebind() {
	for _, event := range h.events.Keys() {
		h.registerEvent(event)
	}
}

func (h *Handler[K]) registerEvent(event K) {
	h.observer.Register(event, h.HandleNote, h.id)
}

func (h *Handler[K]) unregisterEvent(event K) {
	h.observer.Unregister(event, h.id)
}
