// Package registry provides the keyed stores that back the MVC facade: a map
// that refuses to silently overwrite or miss keys, and a named object store
// that drives registration lifecycle hooks.
package registry

import (
	"fmt"
	"slices"
	"sync"
)

// UniqueDict is a map that errors if you don't have your keys under control.
// Set requires the key to be absent; Get and Delete require it to be present.
// Thread-safe for concurrent access.
type UniqueDict[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
	order []K
}

// NewUniqueDict creates an empty UniqueDict.
func NewUniqueDict[K comparable, V any]() *UniqueDict[K, V] {
	return &UniqueDict[K, V]{
		items: make(map[K]V),
	}
}

// Set stores value under key.
// Returns ErrDuplicateKey if the key already holds a value.
func (d *UniqueDict[K, V]) Set(key K, value V) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.items[key]; exists {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}

	d.items[key] = value
	d.order = append(d.order, key)
	return nil
}

// Get returns the value stored under key.
// Returns ErrKeyNotFound if the key is absent.
func (d *UniqueDict[K, V]) Get(key K) (V, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	value, exists := d.items[key]
	if !exists {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return value, nil
}

// Delete removes key and returns the value it held.
// Returns ErrKeyNotFound if the key is absent.
func (d *UniqueDict[K, V]) Delete(key K) (V, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	value, exists := d.items[key]
	if !exists {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	delete(d.items, key)
	if i := slices.Index(d.order, key); i >= 0 {
		d.order = slices.Delete(d.order, i, i+1)
	}
	return value, nil
}

// Has reports whether key is present.
func (d *UniqueDict[K, V]) Has(key K) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, exists := d.items[key]
	return exists
}

// Keys returns the present keys in insertion order.
func (d *UniqueDict[K, V]) Keys() []K {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return slices.Clone(d.order)
}

// Len returns the number of stored items.
func (d *UniqueDict[K, V]) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.items)
}
