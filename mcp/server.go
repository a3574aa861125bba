// Package mcp exposes the answer pipeline as a Model Context Protocol tool
// served over stdio.
package mcp

import (
	"context"
	"strings"

	"github.com/fwojciec/snlchat"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ServerName identifies this server to MCP clients.
const ServerName = "snlchat"

// AskTool answers a library question through an Answerer.
type AskTool struct {
	Answerer snlchat.Answerer
}

// NewAskTool creates a new AskTool.
func NewAskTool(a snlchat.Answerer) *AskTool {
	return &AskTool{Answerer: a}
}

// Definition returns the tool schema.
func (t *AskTool) Definition() mcp.Tool {
	return mcp.NewTool("ask",
		mcp.WithDescription("Answer a question about the Swiss National Library collections (website, theses, books, posters). Answers follow the language of the question and cite sources as [PRIMARY_SOURCE: url]."),
		mcp.WithString("message",
			mcp.Required(),
			mcp.Description("The question, in any language"),
		),
		mcp.WithString("history",
			mcp.Description("Earlier conversation as 'User:' and 'Assistant:' lines"),
		),
	)
}

// Handle runs the tool. A missing message is a tool error rather than a
// protocol error.
func (t *AskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := req.RequireString("message")
	if err != nil || strings.TrimSpace(message) == "" {
		return mcp.NewToolResultError("message is required"), nil
	}
	history := req.GetString("history", "")

	return mcp.NewToolResultText(t.Answerer.Answer(ctx, message, history)), nil
}

// NewServer creates an MCP server with the ask tool registered.
func NewServer(a snlchat.Answerer, version string) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	ask := NewAskTool(a)
	s.AddTool(ask.Definition(), ask.Handle)

	return s
}

// ServeStdio serves s on stdin and stdout until the input closes.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
