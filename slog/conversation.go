package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/snlchat"
)

// Ensure LoggingConversationService implements snlchat.ConversationService.
var _ snlchat.ConversationService = (*LoggingConversationService)(nil)

// LoggingConversationService wraps a ConversationService with debug logging.
type LoggingConversationService struct {
	next   snlchat.ConversationService
	logger *slog.Logger
}

// NewLoggingConversationService creates a new LoggingConversationService.
func NewLoggingConversationService(next snlchat.ConversationService, logger *slog.Logger) *LoggingConversationService {
	return &LoggingConversationService{next: next, logger: logger}
}

// CreateExchange delegates to the wrapped service and logs the operation.
func (s *LoggingConversationService) CreateExchange(ctx context.Context, exchange *snlchat.Exchange) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("create exchange",
			"session", exchange.SessionID,
			"id", exchange.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateExchange(ctx, exchange)
}

// FindExchanges delegates to the wrapped service and logs the operation.
func (s *LoggingConversationService) FindExchanges(ctx context.Context, filter snlchat.ExchangeFilter) (exchanges []*snlchat.Exchange, err error) {
	defer func(begin time.Time) {
		session := ""
		if filter.SessionID != nil {
			session = *filter.SessionID
		}
		s.logger.Debug("find exchanges",
			"session", session,
			"last", filter.Last,
			"count", len(exchanges),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindExchanges(ctx, filter)
}

// DeleteSession delegates to the wrapped service and logs the operation.
func (s *LoggingConversationService) DeleteSession(ctx context.Context, sessionID string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete session",
			"session", sessionID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteSession(ctx, sessionID)
}
