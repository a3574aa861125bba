package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/snlchat"
	"github.com/fwojciec/snlchat/mock"
	snlslog "github.com/fwojciec/snlchat/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingAnswerer_Answer(t *testing.T) {
	t.Parallel()

	t.Run("logs sizes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Answerer{
			AnswerFn: func(context.Context, string, string) string { return "four" },
		}

		got := snlslog.NewLoggingAnswerer(inner, logger).Answer(context.Background(), "question", "")

		assert.Equal(t, "four", got)
		output := buf.String()
		assert.Contains(t, output, "msg=answer")
		assert.Contains(t, output, "question_chars=8")
		assert.Contains(t, output, "answer_chars=4")
		assert.Contains(t, output, "failed=false")
		assert.Contains(t, output, "duration=")
	})

	t.Run("flags failed runs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Answerer{
			AnswerFn: func(context.Context, string, string) string {
				return snlchat.ErrorMessagePrefix + "timeout"
			},
		}

		snlslog.NewLoggingAnswerer(inner, logger).Answer(context.Background(), "q", "")

		assert.Contains(t, buf.String(), "failed=true")
	})
}
