// Package openai implements snlchat.ChatService over any OpenAI-compatible
// chat completions endpoint.
package openai

import (
	"context"

	"github.com/fwojciec/snlchat"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultTemperature keeps answers close to the retrieved context.
const DefaultTemperature = 0.1

// Ensure ChatService implements snlchat.ChatService at compile time.
var _ snlchat.ChatService = (*ChatService)(nil)

// Config holds connection settings for an OpenAI-compatible endpoint.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string

	// Temperature defaults to DefaultTemperature when zero.
	Temperature float64

	// MaxRetries overrides the client default when non-nil.
	MaxRetries *int
}

// ChatService sends chat completions requests to a single model.
type ChatService struct {
	client      openai.Client
	model       string
	temperature float64
}

// NewChatService creates a ChatService from cfg.
func NewChatService(cfg Config) (*ChatService, error) {
	if cfg.Model == "" {
		return nil, snlchat.Errorf(snlchat.EINVALID, "model name required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.MaxRetries != nil {
		opts = append(opts, option.WithMaxRetries(*cfg.MaxRetries))
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = DefaultTemperature
	}

	return &ChatService{
		client:      openai.NewClient(opts...),
		model:       cfg.Model,
		temperature: temperature,
	}, nil
}

// Model returns the model name requests are sent to.
func (s *ChatService) Model() string {
	return s.model
}

// Complete sends messages and returns the first choice as a MessageReply.
func (s *ChatService) Complete(ctx context.Context, messages []snlchat.Message) (snlchat.Reply, error) {
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(s.model),
		Messages:    convertMessages(messages),
		Temperature: openai.Float(s.temperature),
	}

	resp, err := s.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, snlchat.Errorf(snlchat.EUNAVAILABLE, "chat completion failed: %v", err)
	}
	if len(resp.Choices) == 0 {
		return nil, snlchat.Errorf(snlchat.EINTERNAL, "chat completion returned no choices")
	}

	msg := resp.Choices[0].Message
	return snlchat.MessageReply{Role: snlchat.RoleAssistant, Content: msg.Content}, nil
}

func convertMessages(messages []snlchat.Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case snlchat.RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case snlchat.RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
