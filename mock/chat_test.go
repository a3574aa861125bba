package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/snlchat"
	"github.com/fwojciec/snlchat/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatService_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where ChatService is expected
	var _ snlchat.ChatService = &mock.ChatService{}
}

func TestChatService_Complete(t *testing.T) {
	t.Parallel()

	t.Run("delegates to CompleteFn", func(t *testing.T) {
		t.Parallel()

		var calledWith []snlchat.Message
		s := &mock.ChatService{
			CompleteFn: func(_ context.Context, messages []snlchat.Message) (snlchat.Reply, error) {
				calledWith = messages
				return snlchat.TextReply("ok"), nil
			},
		}

		messages := []snlchat.Message{snlchat.SystemMessage("sys"), snlchat.UserMessage("hi")}

		reply, err := s.Complete(context.Background(), messages)

		require.NoError(t, err)
		assert.Equal(t, "ok", snlchat.ExtractText(reply))
		assert.Equal(t, messages, calledWith)
	})
}
