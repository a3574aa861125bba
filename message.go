package snlchat

import (
	"context"
	"strings"
)

// Role identifies the author of a chat message.
type Role string

// Role constants.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of a chat exchange sent to the generation service.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// SystemMessage returns a system message with the given content.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage returns a user message with the given content.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// Reply is a response envelope from the generation service. Implementations
// are TextReply and MessageReply.
type Reply interface {
	reply()
}

// TextReply is a response that is already plain text.
type TextReply string

func (TextReply) reply() {}

// MessageReply is a response that carries its text in a message content field.
type MessageReply struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

func (MessageReply) reply() {}

// ExtractText returns the trimmed response text of a reply.
func ExtractText(r Reply) string {
	switch r := r.(type) {
	case TextReply:
		return strings.TrimSpace(string(r))
	case *TextReply:
		if r == nil {
			return ""
		}
		return strings.TrimSpace(string(*r))
	case MessageReply:
		return strings.TrimSpace(r.Content)
	case *MessageReply:
		if r == nil {
			return ""
		}
		return strings.TrimSpace(r.Content)
	default:
		return ""
	}
}

// ChatService is the external text-generation service.
type ChatService interface {
	// Complete sends the messages in order and returns the model's reply.
	Complete(ctx context.Context, messages []Message) (Reply, error)
}

// TokenCounter counts tokens in text for a specific model.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
