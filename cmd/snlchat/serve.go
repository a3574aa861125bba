package main

import (
	"context"
	"fmt"
	"time"

	snlhttp "github.com/fwojciec/snlchat/http"
)

// shutdownTimeout bounds how long in-flight requests may finish after a signal.
const shutdownTimeout = 10 * time.Second

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := snlhttp.NewServer(deps.Answerer)
	server.Conversations = deps.Conversations
	server.RequestTimeout = c.RequestTimeout
	server.HistoryLimit = c.HistoryLimit
	server.CORSOrigin = c.CORSOrigin
	if deps.Logger != nil {
		server.Logger = deps.Logger
	}
	if c.RateLimit > 0 {
		server.Limiter = snlhttp.NewClientLimiter(c.RateLimit, c.Burst, c.MaxClients)
	}

	if err := server.Open(c.Addr); err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot listen on %s: %s\n", c.Addr, err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Listening on http://%s\n", server.Addr())

	<-deps.Ctx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Close(ctx)
}
