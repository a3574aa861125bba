package cache

import (
	"fmt"

	"github.com/fwojciec/snlchat"
	lru "github.com/hashicorp/golang-lru/v2"
)

var _ snlchat.Cache[string] = (*LRU[string])(nil)

// LRU is a size-bounded cache that evicts the least recently used entry.
// It is safe for concurrent use.
type LRU[V any] struct {
	c *lru.Cache[string, V]
}

// NewLRU creates an LRU holding at most size entries.
func NewLRU[V any](size int) (*LRU[V], error) {
	c, err := lru.New[string, V](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create LRU cache: %w", err)
	}
	return &LRU[V]{c: c}, nil
}

// Get returns the value stored under key and marks it recently used.
func (l *LRU[V]) Get(key string) (V, bool) {
	return l.c.Get(key)
}

// Put stores value under key, evicting the oldest entry when full.
func (l *LRU[V]) Put(key string, value V) {
	l.c.Add(key, value)
}

// Contains reports whether key is present without updating recency.
func (l *LRU[V]) Contains(key string) bool {
	return l.c.Contains(key)
}

// Purge removes all entries.
func (l *LRU[V]) Purge() {
	l.c.Purge()
}

// Len returns the number of entries.
func (l *LRU[V]) Len() int {
	return l.c.Len()
}
