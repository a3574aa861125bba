package snlchat

import (
	"context"
	"strings"
	"time"
)

// Exchange is one question and answer recorded for a chat session.
type Exchange struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"sessionId"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	AnswerHash string    `json:"answerHash"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Validate returns an error if the exchange contains invalid fields.
func (e *Exchange) Validate() error {
	if e.SessionID == "" {
		return Errorf(EINVALID, "exchange session ID required")
	}
	if strings.TrimSpace(e.Question) == "" {
		return Errorf(EINVALID, "exchange question required")
	}
	return nil
}

// ConversationService records and retrieves chat exchanges.
type ConversationService interface {
	// CreateExchange records a new exchange.
	CreateExchange(ctx context.Context, exchange *Exchange) error

	// FindExchanges retrieves exchanges matching the filter, oldest first.
	FindExchanges(ctx context.Context, filter ExchangeFilter) ([]*Exchange, error)

	// DeleteSession removes all exchanges of a session.
	// Returns ENOTFOUND if the session has no exchanges.
	DeleteSession(ctx context.Context, sessionID string) error
}

// ExchangeFilter represents a filter for FindExchanges.
type ExchangeFilter struct {
	SessionID *string `json:"sessionId"`

	// Last limits the result to the most recent exchanges when > 0.
	Last int `json:"last"`
}

// FormatHistory renders exchanges as a history string: alternating
// "User:" and "Assistant:" lines, oldest first.
func FormatHistory(exchanges []*Exchange) string {
	if len(exchanges) == 0 {
		return ""
	}

	lines := make([]string, 0, 2*len(exchanges))
	for _, e := range exchanges {
		lines = append(lines, "User: "+e.Question, "Assistant: "+e.Answer)
	}
	return strings.Join(lines, "\n")
}
