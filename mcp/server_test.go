package mcp_test

import (
	"context"
	"testing"

	"github.com/fwojciec/snlchat/mock"
	snlmcp "github.com/fwojciec/snlchat/mcp"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = "ask"
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestAskTool_Definition(t *testing.T) {
	t.Parallel()

	tool := snlmcp.NewAskTool(nil).Definition()

	assert.Equal(t, "ask", tool.Name)
	assert.Contains(t, tool.InputSchema.Properties, "message")
	assert.Contains(t, tool.InputSchema.Properties, "history")
	assert.Equal(t, []string{"message"}, tool.InputSchema.Required)
}

func TestAskTool_Handle(t *testing.T) {
	t.Parallel()

	t.Run("answers with message and history", func(t *testing.T) {
		t.Parallel()

		var gotMessage, gotHistory string
		answerer := &mock.Answerer{
			AnswerFn: func(_ context.Context, message, history string) string {
				gotMessage, gotHistory = message, history
				return "The library opens at 9."
			},
		}

		result, err := snlmcp.NewAskTool(answerer).Handle(context.Background(), callRequest(map[string]any{
			"message": "When do you open?",
			"history": "User: hi\nAssistant: hello",
		}))

		require.NoError(t, err)
		assert.False(t, result.IsError)
		assert.Equal(t, "The library opens at 9.", resultText(t, result))
		assert.Equal(t, "When do you open?", gotMessage)
		assert.Equal(t, "User: hi\nAssistant: hello", gotHistory)
	})

	t.Run("history is optional", func(t *testing.T) {
		t.Parallel()

		answerer := &mock.Answerer{
			AnswerFn: func(_ context.Context, _, history string) string {
				return "history=" + history
			},
		}

		result, err := snlmcp.NewAskTool(answerer).Handle(context.Background(), callRequest(map[string]any{"message": "q"}))

		require.NoError(t, err)
		assert.Equal(t, "history=", resultText(t, result))
	})

	t.Run("missing message is a tool error", func(t *testing.T) {
		t.Parallel()

		called := false
		answerer := &mock.Answerer{
			AnswerFn: func(context.Context, string, string) string {
				called = true
				return ""
			},
		}

		result, err := snlmcp.NewAskTool(answerer).Handle(context.Background(), callRequest(map[string]any{"message": "  "}))

		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.False(t, called)
	})
}

func TestNewServer(t *testing.T) {
	t.Parallel()

	s := snlmcp.NewServer(&mock.Answerer{}, "test")

	require.NotNil(t, s)
}
