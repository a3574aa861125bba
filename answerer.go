package snlchat

import "context"

// User-facing messages returned by an Answerer.
const (
	// InvalidQuestionMessage is returned for an empty or whitespace-only question.
	InvalidQuestionMessage = "Please provide a valid question."

	// ErrorMessagePrefix starts every answer produced from a failed pipeline run.
	ErrorMessagePrefix = "Sorry, I encountered an error: "
)

// Answerer answers natural language questions about the library collections.
type Answerer interface {
	// Answer never fails: errors are reported inside the returned text.
	Answer(ctx context.Context, message, history string) string
}
