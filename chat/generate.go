package chat

import (
	"context"

	"github.com/fwojciec/snlchat"
)

// Generator produces the final answer with one call to the generation service.
type Generator struct {
	Chat snlchat.ChatService
}

// NewGenerator creates a new Generator.
func NewGenerator(chat snlchat.ChatService) *Generator {
	return &Generator{Chat: chat}
}

// Generate sends the system and user prompts and returns the reply text.
func (g *Generator) Generate(ctx context.Context, system, user string) (string, error) {
	reply, err := g.Chat.Complete(ctx, []snlchat.Message{
		snlchat.SystemMessage(system),
		snlchat.UserMessage(user),
	})
	if err != nil {
		return "", err
	}
	if reply == nil {
		return "", snlchat.Errorf(snlchat.EINTERNAL, "generation service returned no reply")
	}
	return snlchat.ExtractText(reply), nil
}
