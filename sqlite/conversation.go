package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/snlchat"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ snlchat.ConversationService = (*ConversationService)(nil)

// ConversationService implements snlchat.ConversationService using SQLite.
type ConversationService struct {
	db *DB
}

// NewConversationService creates a new ConversationService.
func NewConversationService(db *DB) *ConversationService {
	return &ConversationService{db: db}
}

// CreateExchange records a new exchange, assigning its ID, answer hash and
// creation time.
func (s *ConversationService) CreateExchange(ctx context.Context, exchange *snlchat.Exchange) error {
	if err := exchange.Validate(); err != nil {
		return err
	}

	exchange.ID = uuid.New().String()
	exchange.CreatedAt = time.Now().UTC().Truncate(time.Second)
	exchange.AnswerHash = hashContent(exchange.Answer)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO exchanges (id, session_id, question, answer, answer_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, exchange.ID, exchange.SessionID, exchange.Question, exchange.Answer, exchange.AnswerHash,
		exchange.CreatedAt.Format(time.RFC3339))

	return err
}

// FindExchanges retrieves exchanges matching the filter, oldest first.
func (s *ConversationService) FindExchanges(ctx context.Context, filter snlchat.ExchangeFilter) ([]*snlchat.Exchange, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT seq, id, session_id, question, answer, answer_hash, created_at FROM exchanges WHERE 1=1")

	if filter.SessionID != nil {
		query.WriteString(" AND session_id = ?")
		args = append(args, *filter.SessionID)
	}

	// Take the newest rows first so LIMIT keeps the most recent, then restore
	// chronological order.
	query.WriteString(" ORDER BY seq DESC")
	if filter.Last > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Last)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, session_id, question, answer, answer_hash, created_at FROM ("+query.String()+") ORDER BY seq ASC",
		args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exchanges []*snlchat.Exchange
	for rows.Next() {
		var e snlchat.Exchange
		var createdAt string

		if err := rows.Scan(&e.ID, &e.SessionID, &e.Question, &e.Answer, &e.AnswerHash, &createdAt); err != nil {
			return nil, err
		}

		if e.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		exchanges = append(exchanges, &e)
	}

	return exchanges, rows.Err()
}

// DeleteSession permanently removes all exchanges of a session.
func (s *ConversationService) DeleteSession(ctx context.Context, sessionID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM exchanges WHERE session_id = ?", sessionID)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return snlchat.Errorf(snlchat.ENOTFOUND, "session %q not found", sessionID)
	}

	return nil
}
