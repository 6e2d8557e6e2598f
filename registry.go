package larch

import (
	"reflect"
	"sync"
)

// registry is the shared type-to-registration map. The root context owns it;
// every scope derived from the root holds a non-owning reference to the same
// registry, so a registration made through any context in the tree is
// visible to all of them.
type registry struct {
	mu      sync.RWMutex
	entries map[reflect.Type]*Registration
}

func newRegistry() *registry {
	return &registry{entries: make(map[reflect.Type]*Registration)}
}

// put installs a registration, replacing any existing entry for the same
// type. Last write wins; handles pointing at the replaced entry go stale.
func (r *registry) put(entry *Registration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.key] = entry
}

func (r *registry) lookup(t reflect.Type) (*Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[t]
	return entry, ok
}
