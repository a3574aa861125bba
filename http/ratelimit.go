package http

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// DefaultMaxClients bounds how many client limiters are tracked at once.
const DefaultMaxClients = 10000

// ClientLimiter provides per-client rate limiting using token buckets.
// Each client key gets its own limiter so one busy caller cannot starve
// the others. Limiters of the least recently seen clients are evicted once
// maxClients are tracked; an evicted client starts again with a full bucket.
type ClientLimiter struct {
	mu       sync.Mutex
	limiters *lru.Cache[string, *rate.Limiter]
	rps      float64
	burst    int
}

// NewClientLimiter creates a ClientLimiter allowing rps requests per second
// per client with the given burst, tracking at most maxClients clients.
// A burst below 1 is treated as 1 and maxClients below 1 as
// DefaultMaxClients.
func NewClientLimiter(rps float64, burst, maxClients int) *ClientLimiter {
	if burst < 1 {
		burst = 1
	}
	if maxClients < 1 {
		maxClients = DefaultMaxClients
	}
	// lru.New only fails for a non-positive size.
	limiters, _ := lru.New[string, *rate.Limiter](maxClients)
	return &ClientLimiter{
		limiters: limiters,
		rps:      rps,
		burst:    burst,
	}
}

// Allow reports whether the client may make a request now.
func (l *ClientLimiter) Allow(client string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters.Get(client)
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), l.burst)
		l.limiters.Add(client, limiter)
	}
	l.mu.Unlock()

	return limiter.Allow()
}

// Len returns the number of clients currently tracked.
func (l *ClientLimiter) Len() int {
	return l.limiters.Len()
}
