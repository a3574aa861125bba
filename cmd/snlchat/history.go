package main

import (
	"fmt"

	"github.com/fwojciec/snlchat"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if c.Delete {
		return c.delete(deps)
	}

	filter := snlchat.ExchangeFilter{Last: c.Last}
	if c.Session != "" {
		filter.SessionID = &c.Session
	}

	exchanges, err := deps.Conversations.FindExchanges(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", snlchat.ErrorMessage(err))
		return err
	}

	if len(exchanges) == 0 {
		fmt.Fprintln(deps.Stdout, "No exchanges found.")
		return nil
	}

	for _, e := range exchanges {
		fmt.Fprintf(deps.Stdout, "[%s] %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04:05"), e.SessionID)
		fmt.Fprintf(deps.Stdout, "User: %s\nAssistant: %s\n\n", e.Question, e.Answer)
	}
	return nil
}

func (c *HistoryCmd) delete(deps *Dependencies) error {
	if c.Session == "" {
		fmt.Fprintf(deps.Stderr, "error: session ID required\n")
		return snlchat.Errorf(snlchat.EINVALID, "session ID required")
	}
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return snlchat.Errorf(snlchat.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Conversations.DeleteSession(deps.Ctx, c.Session); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", snlchat.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted session %q\n", c.Session)
	return nil
}
