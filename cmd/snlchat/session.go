package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/snlchat"
)

// session tracks conversation history for the CLI. Exchanges are persisted
// when both an ID and a ConversationService are set; otherwise they are kept
// in memory for the life of the session.
type session struct {
	ID            string
	Conversations snlchat.ConversationService
	Logger        *slog.Logger

	// History is extra history prepended to the session's own exchanges.
	History string

	// Limit caps the exchanges sent as history. Zero sends all of them.
	Limit int

	exchanges []*snlchat.Exchange
}

func (s *session) persistent() bool {
	return s.ID != "" && s.Conversations != nil
}

// Ask answers message with the session history and records the exchange.
func (s *session) Ask(ctx context.Context, a snlchat.Answerer, message string) string {
	answer := a.Answer(ctx, message, s.history(ctx))

	if strings.TrimSpace(message) == "" {
		return answer
	}

	e := &snlchat.Exchange{SessionID: s.ID, Question: message, Answer: answer}
	if s.persistent() {
		if err := s.Conversations.CreateExchange(ctx, e); err != nil {
			s.logger().Warn("record exchange", "session", s.ID, "err", err)
		}
	} else {
		s.exchanges = append(s.exchanges, e)
	}
	return answer
}

func (s *session) history(ctx context.Context) string {
	exchanges := s.exchanges
	if s.persistent() {
		id := s.ID
		found, err := s.Conversations.FindExchanges(ctx, snlchat.ExchangeFilter{SessionID: &id, Last: s.Limit})
		if err != nil {
			s.logger().Warn("load session history", "session", s.ID, "err", err)
		}
		exchanges = found
	} else if s.Limit > 0 && len(exchanges) > s.Limit {
		exchanges = exchanges[len(exchanges)-s.Limit:]
	}

	parts := make([]string, 0, 2)
	if strings.TrimSpace(s.History) != "" {
		parts = append(parts, s.History)
	}
	if h := snlchat.FormatHistory(exchanges); h != "" {
		parts = append(parts, h)
	}
	return strings.Join(parts, "\n")
}

func (s *session) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
