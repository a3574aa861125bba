package chat

import (
	"fmt"
	"strings"

	"github.com/fwojciec/snlchat"
)

// Prompt is an assembled system and user prompt pair.
type Prompt struct {
	System string
	User   string
}

// Assembler combines intent templates with the question, history and context.
// A nil Assembler uses the fallback instruction for every intent.
type Assembler struct {
	Templates snlchat.Templates
}

// NewAssembler creates a new Assembler.
func NewAssembler(templates snlchat.Templates) *Assembler {
	return &Assembler{Templates: templates}
}

// Assemble builds the prompt for a classified question. query is the
// original, untranslated question.
func (a *Assembler) Assemble(c snlchat.Classification, query, history string, rc *snlchat.RetrievalContext) Prompt {
	return Prompt{
		System: a.SystemPrompt(c.Intent, c.Language),
		User:   BuildUserPrompt(query, history, rc),
	}
}

// SystemPrompt returns the instruction for intent. A known language adds a
// rule pinning the answer to that language.
func (a *Assembler) SystemPrompt(intent snlchat.Intent, language string) string {
	var templates snlchat.Templates
	if a != nil {
		templates = a.Templates
	}
	instruction := templates.Instruction(intent.OrDefault())

	if language == "" {
		return instruction
	}

	var sb strings.Builder
	sb.WriteString("LANGUAGE RULE:\n")
	fmt.Fprintf(&sb, "- The user's current question is in %s.\n", language)
	fmt.Fprintf(&sb, "- Respond only in %s, whatever the language of the conversation history.\n\n", language)
	sb.WriteString(instruction)
	return sb.String()
}

// BuildUserPrompt builds the user prompt: question, history ("None" when
// blank), and the full context block, in that order.
func BuildUserPrompt(query, history string, rc *snlchat.RetrievalContext) string {
	if strings.TrimSpace(history) == "" {
		history = "None"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Question: %s\n\n", query)
	fmt.Fprintf(&sb, "History: %s\n\n", history)
	fmt.Fprintf(&sb, "Context:\n%s\n\n", rc.String())
	sb.WriteString("Answer:")
	return sb.String()
}
