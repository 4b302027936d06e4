package event

import (
	"maps"
	"slices"
)

// Note is the payload delivered to subscribers. A Note is built fresh for
// each Notify call and the same pointer is handed to every callback in that
// dispatch, so a callback may annotate Extra for the ones that follow.
type Note[K comparable] struct {
	EventName K
	Data      any
	UID       string
	Extra     map[string]any
}

// Extra is an additional named field attached to a Note.
type Extra struct {
	Key   string
	Value any
}

// With creates an Extra field for Notify.
func With(key string, value any) Extra {
	return Extra{Key: key, Value: value}
}

// NewNote builds a Note. Later extras with the same key win.
func NewNote[K comparable](event K, data any, uid string, extras ...Extra) *Note[K] {
	note := &Note[K]{
		EventName: event,
		Data:      data,
		UID:       uid,
		Extra:     make(map[string]any, len(extras)),
	}
	for _, e := range extras {
		note.Extra[e.Key] = e.Value
	}
	return note
}

// Get returns the extra field stored under key.
func (n *Note[K]) Get(key string) (any, bool) {
	v, ok := n.Extra[key]
	return v, ok
}

// Extras returns the extra fields as a slice suitable for re-notifying.
func (n *Note[K]) Extras() []Extra {
	extras := make([]Extra, 0, len(n.Extra))
	for _, k := range slices.Sorted(maps.Keys(n.Extra)) {
		extras = append(extras, Extra{Key: k, Value: n.Extra[k]})
	}
	return extras
}

// Clone returns a copy of the note with its own Extra map.
func (n *Note[K]) Clone() *Note[K] {
	clone := *n
	clone.Extra = maps.Clone(n.Extra)
	if clone.Extra == nil {
		clone.Extra = make(map[string]any)
	}
	return &clone
}
