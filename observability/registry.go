package observability

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

var (
	named = map[string]Observer{
		"noop": NoOpObserver{},
		"slog": NewSlogObserver(slog.Default()),
	}
	namedMu sync.RWMutex
)

// GetObserver returns the observer registered under name, letting
// configuration select one by string. "noop" and "slog" are always present.
func GetObserver(name string) (Observer, error) {
	namedMu.RLock()
	defer namedMu.RUnlock()

	obs, exists := named[name]
	if !exists {
		return nil, fmt.Errorf("unknown observer: %s", name)
	}
	return obs, nil
}

// RegisterObserver adds or replaces a named observer.
func RegisterObserver(name string, observer Observer) {
	namedMu.Lock()
	defer namedMu.Unlock()

	named[name] = observer
}

// ObserverNames lists the registered observer names, sorted.
func ObserverNames() []string {
	namedMu.RLock()
	defer namedMu.RUnlock()

	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
