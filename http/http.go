// Package http provides the HTTP adapters: a client for the GroundX search
// API and the JSON chat server.
package http

import (
	"time"
)

// DefaultTimeout is the default timeout for outbound HTTP requests.
const DefaultTimeout = 30 * time.Second
