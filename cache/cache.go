// Package cache provides snlchat.Cache implementations for the answer
// pipeline. Keys are stored as given; callers normalize them.
package cache

import (
	"sync"

	"github.com/fwojciec/snlchat"
)

var _ snlchat.Cache[string] = (*Map[string])(nil)

// Map is an unbounded cache backed by a mutex-guarded map. Entries live for
// the lifetime of the cache.
type Map[V any] struct {
	mu    sync.RWMutex
	items map[string]V
}

// NewMap creates a new, empty Map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{items: make(map[string]V)}
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key string) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok
}

// Put stores value under key.
func (m *Map[V]) Put(key string, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
}

// Contains reports whether key is present.
func (m *Map[V]) Contains(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.items[key]
	return ok
}

// Purge removes all entries.
func (m *Map[V]) Purge() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make(map[string]V)
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
