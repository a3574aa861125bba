package mock

import (
	"context"

	"github.com/fwojciec/snlchat"
)

var _ snlchat.ConversationService = (*ConversationService)(nil)

// ConversationService is a mock implementation of snlchat.ConversationService.
type ConversationService struct {
	CreateExchangeFn func(ctx context.Context, exchange *snlchat.Exchange) error
	FindExchangesFn  func(ctx context.Context, filter snlchat.ExchangeFilter) ([]*snlchat.Exchange, error)
	DeleteSessionFn  func(ctx context.Context, sessionID string) error
}

func (s *ConversationService) CreateExchange(ctx context.Context, exchange *snlchat.Exchange) error {
	return s.CreateExchangeFn(ctx, exchange)
}

func (s *ConversationService) FindExchanges(ctx context.Context, filter snlchat.ExchangeFilter) ([]*snlchat.Exchange, error) {
	return s.FindExchangesFn(ctx, filter)
}

func (s *ConversationService) DeleteSession(ctx context.Context, sessionID string) error {
	return s.DeleteSessionFn(ctx, sessionID)
}
