package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fwojciec/snlchat"
	snlfs "github.com/fwojciec/snlchat/fs"
	"github.com/google/uuid"
)

// Run executes the chat command: a read-answer loop over stdin.
func (c *ChatCmd) Run(deps *Dependencies) error {
	id := c.Session
	if id == "" && deps.Conversations != nil {
		id = uuid.NewString()
	}
	s := &session{
		ID:            id,
		Conversations: deps.Conversations,
		Logger:        deps.Logger,
		Limit:         c.HistoryLimit,
	}

	fmt.Fprintln(deps.Stdout, "=== Swiss National Library Assistant ===")
	fmt.Fprintln(deps.Stdout, "Type 'exit', 'quit', or 'bye' to end the conversation.")
	fmt.Fprintln(deps.Stdout, "Type 'save' to save the last answer to a file, 'clear_cache' to reset cached results.")
	if id != "" {
		fmt.Fprintf(deps.Stdout, "Session: %s\n", id)
	}
	fmt.Fprintln(deps.Stdout)

	var last *snlchat.Exchange
	scanner := bufio.NewScanner(deps.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for {
		fmt.Fprint(deps.Stdout, "User: ")
		if !scanner.Scan() {
			fmt.Fprintln(deps.Stdout)
			return scanner.Err()
		}
		if deps.Ctx.Err() != nil {
			return nil
		}
		input := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(input) {
		case "":
			continue
		case "exit", "quit", "bye":
			fmt.Fprintln(deps.Stdout, "Assistant: Goodbye! It was nice talking to you.")
			return nil
		case "save":
			if last == nil {
				fmt.Fprintln(deps.Stdout, "Assistant: No response to save yet.")
				continue
			}
			path, err := snlfs.NewTranscriptWriter(c.OutputDir).Save(last)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", err)
				continue
			}
			fmt.Fprintf(deps.Stdout, "Assistant: Last response saved to %s\n", path)
			continue
		case "clear_cache":
			if deps.Cache != nil {
				deps.Cache.Reset()
			}
			fmt.Fprintln(deps.Stdout, "Assistant: Cache cleared.")
			continue
		}

		answer := s.Ask(deps.Ctx, deps.Answerer, input)
		last = &snlchat.Exchange{SessionID: id, Question: input, Answer: answer}
		fmt.Fprintf(deps.Stdout, "Assistant: %s\n\n", answer)
	}
}
