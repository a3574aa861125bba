package chat_test

import (
	"testing"

	"github.com/fwojciec/snlchat/chat"
	"github.com/stretchr/testify/assert"
)

func TestStage_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", chat.StageIdle.String())
	assert.Equal(t, "generating", chat.StageGenerating.String())
	assert.Equal(t, "failed", chat.StageFailed.String())
	assert.Equal(t, "unknown", chat.Stage(99).String())
}
