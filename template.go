package snlchat

// FallbackInstruction is the system instruction used when no template is
// configured for an intent.
const FallbackInstruction = "You are a helpful library assistant. Answer the question using only the provided context, in the same language as the question. Reproduce any [PRIMARY_SOURCE: ...] markers from the context exactly as written and never invent new ones."

// Templates maps each intent to its static instruction text.
type Templates map[Intent]string

// Instruction returns the template for intent, or FallbackInstruction if the
// intent has no non-empty template.
func (t Templates) Instruction(intent Intent) string {
	if s, ok := t[intent]; ok && s != "" {
		return s
	}
	return FallbackInstruction
}
