// Package gemini implements snlchat.ChatService and snlchat.TokenCounter
// using Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/snlchat"
	"google.golang.org/genai"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-2.5-flash"

// DefaultTemperature keeps answers close to the retrieved context.
const DefaultTemperature float32 = 0.1

// Ensure ChatService implements snlchat.ChatService at compile time.
var _ snlchat.ChatService = (*ChatService)(nil)

// ChatService implements snlchat.ChatService using Google Gemini.
type ChatService struct {
	client      *genai.Client
	model       string
	Temperature float32
}

// NewChatService creates a new ChatService. An empty model selects DefaultModel.
func NewChatService(client *genai.Client, model string) *ChatService {
	if model == "" {
		model = DefaultModel
	}
	return &ChatService{client: client, model: model, Temperature: DefaultTemperature}
}

// Complete sends messages to Gemini. System messages become the system
// instruction; the rest become the conversation contents.
func (s *ChatService) Complete(ctx context.Context, messages []snlchat.Message) (snlchat.Reply, error) {
	contents := BuildContents(messages)
	if len(contents) == 0 {
		return nil, snlchat.Errorf(snlchat.EINVALID, "at least one user message required")
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, contents, BuildConfig(messages, s.Temperature))
	if err != nil {
		return nil, snlchat.Errorf(snlchat.EUNAVAILABLE, "gemini request failed: %v", err)
	}
	if result == nil {
		return nil, snlchat.Errorf(snlchat.EINTERNAL, "gemini returned nil result")
	}

	return snlchat.TextReply(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for messages. Multiple system
// messages are joined into one instruction.
func BuildConfig(messages []snlchat.Message, temperature float32) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		Temperature: &temperature,
	}

	var system []string
	for _, m := range messages {
		if m.Role == snlchat.RoleSystem && m.Content != "" {
			system = append(system, m.Content)
		}
	}
	if len(system) > 0 {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: strings.Join(system, "\n\n")}},
		}
	}
	return config
}

// BuildContents converts non-system messages to Gemini contents. Assistant
// messages use the "model" role.
func BuildContents(messages []snlchat.Message) []*genai.Content {
	var contents []*genai.Content
	for _, m := range messages {
		switch m.Role {
		case snlchat.RoleSystem:
			continue
		case snlchat.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	return contents
}
