package snlchat

// Cache is a concurrency-safe key/value store for pipeline results.
// Keys are expected to be normalized with NormalizeKey.
type Cache[V any] interface {
	// Get returns the value stored under key.
	Get(key string) (V, bool)

	// Put stores value under key, replacing any previous value.
	Put(key string, value V)

	// Contains reports whether key is present.
	Contains(key string) bool

	// Purge removes all entries.
	Purge()
}
