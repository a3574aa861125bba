package snlchat_test

import (
	"testing"

	"github.com/fwojciec/snlchat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatHistory(t *testing.T) {
	t.Parallel()

	t.Run("alternates user and assistant lines", func(t *testing.T) {
		t.Parallel()

		exchanges := []*snlchat.Exchange{
			{Question: "When do you open?", Answer: "At 9."},
			{Question: "And on Saturday?", Answer: "At 10."},
		}

		got := snlchat.FormatHistory(exchanges)

		assert.Equal(t, "User: When do you open?\nAssistant: At 9.\nUser: And on Saturday?\nAssistant: At 10.", got)
	})

	t.Run("returns empty string for no exchanges", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, snlchat.FormatHistory(nil))
	})
}

func TestExchange_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires session ID", func(t *testing.T) {
		t.Parallel()

		err := (&snlchat.Exchange{Question: "q"}).Validate()

		require.Error(t, err)
		assert.Equal(t, snlchat.EINVALID, snlchat.ErrorCode(err))
	})

	t.Run("requires question", func(t *testing.T) {
		t.Parallel()

		err := (&snlchat.Exchange{SessionID: "s", Question: "  "}).Validate()

		require.Error(t, err)
		assert.Contains(t, snlchat.ErrorMessage(err), "question required")
	})

	t.Run("accepts valid exchange", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, (&snlchat.Exchange{SessionID: "s", Question: "q"}).Validate())
	})
}
