package mock

import (
	"context"

	"github.com/fwojciec/snlchat"
)

var _ snlchat.ChatService = (*ChatService)(nil)

// ChatService is a mock implementation of snlchat.ChatService.
type ChatService struct {
	CompleteFn func(ctx context.Context, messages []snlchat.Message) (snlchat.Reply, error)
}

func (s *ChatService) Complete(ctx context.Context, messages []snlchat.Message) (snlchat.Reply, error) {
	return s.CompleteFn(ctx, messages)
}

var _ snlchat.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of snlchat.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return tc.CountTokensFn(ctx, text)
}
