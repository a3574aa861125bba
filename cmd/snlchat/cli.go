package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/snlchat"
)

// CacheResetter drops all cached pipeline results.
type CacheResetter interface {
	Reset()
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx           context.Context
	Stdin         io.Reader
	Stdout        io.Writer
	Stderr        io.Writer
	Logger        *slog.Logger
	Answerer      snlchat.Answerer
	Cache         CacheResetter
	Conversations snlchat.ConversationService
	Templates     snlchat.Templates
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Globals `embed:""`

	Ask     AskCmd     `cmd:"" help:"Ask a single question about the library collections"`
	Chat    ChatCmd    `cmd:"" help:"Start an interactive chat session"`
	Serve   ServeCmd   `cmd:"" help:"Serve the chat API over HTTP"`
	MCP     MCPCmd     `cmd:"" name:"mcp" help:"Serve the ask tool over MCP stdio"`
	History HistoryCmd `cmd:"" help:"Show or delete stored chat sessions"`
	Prompts PromptsCmd `cmd:"" help:"Print the effective prompt templates"`
}

// Globals are flags shared by every command. Most can also be set from the
// environment.
type Globals struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Backend          string `enum:"openai,gemini" default:"openai" env:"SNLCHAT_BACKEND" help:"Generation backend (openai, gemini)"`
	OpenAIBaseURL    string `name:"openai-base-url" env:"OPENAI_API_BASE" help:"OpenAI-compatible API base URL"`
	OpenAIAPIKey     string `name:"openai-api-key" env:"OPENAI_API_KEY" help:"OpenAI-compatible API key"`
	Model            string `env:"OPENAI_MODEL_NAME" help:"Model for answer generation"`
	TranslationModel string `name:"translation-model" env:"OPENAI_MODEL_NAME_2" help:"Model for translation and classification (defaults to --model)"`
	GeminiAPIKey     string `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`

	GroundXAPIKey  string `name:"groundx-api-key" env:"GROUNDX_API_KEY" help:"GroundX API key"`
	GroundXBaseURL string `name:"groundx-base-url" env:"GROUNDX_BASE_URL" help:"GroundX API base URL"`
	BucketID       string `name:"bucket" env:"GROUNDX_BUCKET_ID" help:"GroundX bucket to search"`
	MaxChunks      int    `name:"max-chunks" default:"3" env:"GROUNDX_MAX_CHUNKS" help:"Chunks retrieved per question"`
	SearchRetries  int    `name:"search-retries" default:"2" env:"GROUNDX_RETRIES" help:"Retries for unavailable search requests"`

	PromptsFile    string `name:"prompts-file" env:"SNLCHAT_PROMPTS" help:"YAML file overriding the prompt templates"`
	CacheSize      int    `name:"cache-size" default:"0" env:"SNLCHAT_CACHE_SIZE" help:"Entries per cache; 0 keeps every entry"`
	StickyFailures bool   `name:"sticky-failures" env:"SNLCHAT_STICKY_FAILURES" help:"Cache failed classifications for the session"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Message string `arg:"" help:"Question, in any language"`
	History string `help:"Earlier conversation as 'User:' and 'Assistant:' lines"`
	Session string `help:"Load and record history under this session ID"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct {
	Session      string `help:"Resume the session with this ID"`
	HistoryLimit int    `name:"history-limit" default:"10" help:"Exchanges of history sent with each question"`
	OutputDir    string `name:"output-dir" default:"output" help:"Directory for saved answers"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr           string        `default:":8000" help:"Listen address"`
	RequestTimeout time.Duration `name:"request-timeout" default:"60s" help:"Timeout for answering one request"`
	CORSOrigin     string        `name:"cors-origin" help:"Allowed CORS origin"`
	RateLimit      float64       `name:"rate-limit" default:"1" help:"Requests per second per client; 0 disables limiting"`
	Burst          int           `default:"5" help:"Request burst per client"`
	MaxClients     int           `name:"max-clients" default:"10000" help:"Clients tracked by the rate limiter"`
	HistoryLimit   int           `name:"history-limit" default:"10" help:"Stored exchanges prepended to session history"`
}

// MCPCmd is the "mcp" subcommand.
type MCPCmd struct{}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Session string `arg:"" optional:"" help:"Session ID; all sessions when omitted"`
	Last    int    `help:"Show only the most recent exchanges"`
	Delete  bool   `help:"Delete the session"`
	Force   bool   `help:"Confirm deletion"`
}

// PromptsCmd is the "prompts" subcommand.
type PromptsCmd struct {
	Intent string `arg:"" optional:"" help:"Print only this intent's template"`
}
