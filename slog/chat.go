package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/snlchat"
)

// Ensure LoggingChatService implements snlchat.ChatService.
var _ snlchat.ChatService = (*LoggingChatService)(nil)

// LoggingChatService wraps a ChatService with logging. When a TokenCounter is
// set, the prompt size in tokens is logged too.
type LoggingChatService struct {
	next    snlchat.ChatService
	name    string
	counter snlchat.TokenCounter
	logger  *slog.Logger
}

// NewLoggingChatService creates a new LoggingChatService. name labels the
// service in log records, e.g. "classify" or "generate".
func NewLoggingChatService(next snlchat.ChatService, name string, counter snlchat.TokenCounter, logger *slog.Logger) *LoggingChatService {
	return &LoggingChatService{next: next, name: name, counter: counter, logger: logger}
}

// Complete delegates to the wrapped service and logs the operation.
func (s *LoggingChatService) Complete(ctx context.Context, messages []snlchat.Message) (reply snlchat.Reply, err error) {
	attrs := []any{"service", s.name, "messages", len(messages)}
	if s.counter != nil {
		tokens := 0
		for _, m := range messages {
			n, cerr := s.counter.CountTokens(ctx, m.Content)
			if cerr != nil {
				s.logger.Debug("token count failed", "service", s.name, "err", cerr)
				break
			}
			tokens += n
		}
		attrs = append(attrs, "prompt_tokens", tokens)
	}

	defer func(begin time.Time) {
		s.logger.Info("chat completion", append(attrs,
			"reply_chars", len(snlchat.ExtractText(reply)),
			"duration", time.Since(begin),
			"err", err,
		)...)
	}(time.Now())
	return s.next.Complete(ctx, messages)
}
