package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/snlchat"
	main "github.com/fwojciec/snlchat/cmd/snlchat"
	"github.com/fwojciec/snlchat/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("asks question and prints answer", func(t *testing.T) {
		t.Parallel()

		answerer := &mock.Answerer{
			AnswerFn: func(_ context.Context, message, history string) string {
				if message == "Quand ouvre la bibliothèque?" && history == "User: salut\nAssistant: bonjour" {
					return "La bibliothèque ouvre à 9h."
				}
				return ""
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Answerer: answerer,
		}

		cmd := &main.AskCmd{Message: "Quand ouvre la bibliothèque?", History: "User: salut\nAssistant: bonjour"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "La bibliothèque ouvre à 9h.\n", stdout.String())
	})

	t.Run("session loads stored history and records the exchange", func(t *testing.T) {
		t.Parallel()

		var gotHistory string
		answerer := &mock.Answerer{
			AnswerFn: func(_ context.Context, _, history string) string {
				gotHistory = history
				return "answer"
			},
		}
		var created *snlchat.Exchange
		conversations := &mock.ConversationService{
			FindExchangesFn: func(_ context.Context, filter snlchat.ExchangeFilter) ([]*snlchat.Exchange, error) {
				require.NotNil(t, filter.SessionID)
				assert.Equal(t, "s1", *filter.SessionID)
				return []*snlchat.Exchange{{Question: "earlier", Answer: "before"}}, nil
			},
			CreateExchangeFn: func(_ context.Context, e *snlchat.Exchange) error {
				created = e
				return nil
			},
		}

		deps := &main.Dependencies{
			Ctx:           context.Background(),
			Stdout:        &bytes.Buffer{},
			Stderr:        &bytes.Buffer{},
			Answerer:      answerer,
			Conversations: conversations,
		}

		err := (&main.AskCmd{Message: "now", Session: "s1"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "User: earlier\nAssistant: before", gotHistory)
		require.NotNil(t, created)
		assert.Equal(t, "s1", created.SessionID)
		assert.Equal(t, "now", created.Question)
		assert.Equal(t, "answer", created.Answer)
	})
}
