package main

import (
	"fmt"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	s := &session{
		ID:            c.Session,
		Conversations: deps.Conversations,
		Logger:        deps.Logger,
		History:       c.History,
	}

	answer := s.Ask(deps.Ctx, deps.Answerer, c.Message)

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
