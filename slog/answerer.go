package slog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/snlchat"
)

// Ensure LoggingAnswerer implements snlchat.Answerer.
var _ snlchat.Answerer = (*LoggingAnswerer)(nil)

// LoggingAnswerer wraps an Answerer with logging.
type LoggingAnswerer struct {
	next   snlchat.Answerer
	logger *slog.Logger
}

// NewLoggingAnswerer creates a new LoggingAnswerer.
func NewLoggingAnswerer(next snlchat.Answerer, logger *slog.Logger) *LoggingAnswerer {
	return &LoggingAnswerer{next: next, logger: logger}
}

// Answer delegates to the wrapped answerer and logs the operation. Failed runs
// are flagged so they can be found without matching on answer text.
func (a *LoggingAnswerer) Answer(ctx context.Context, message, history string) (answer string) {
	defer func(begin time.Time) {
		a.logger.Info("answer",
			"question_chars", len(message),
			"history_chars", len(history),
			"answer_chars", len(answer),
			"failed", strings.HasPrefix(answer, snlchat.ErrorMessagePrefix),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return a.next.Answer(ctx, message, history)
}
