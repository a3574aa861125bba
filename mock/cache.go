package mock

import "github.com/fwojciec/snlchat"

var _ snlchat.Cache[string] = (*Cache[string])(nil)

// Cache is a mock implementation of snlchat.Cache.
type Cache[V any] struct {
	GetFn      func(key string) (V, bool)
	PutFn      func(key string, value V)
	ContainsFn func(key string) bool
	PurgeFn    func()
}

func (c *Cache[V]) Get(key string) (V, bool) {
	return c.GetFn(key)
}

func (c *Cache[V]) Put(key string, value V) {
	c.PutFn(key, value)
}

func (c *Cache[V]) Contains(key string) bool {
	return c.ContainsFn(key)
}

func (c *Cache[V]) Purge() {
	c.PurgeFn()
}
