// Package chat implements the question answering pipeline: translate and
// classify a question, retrieve context for it, assemble an intent-specific
// prompt, and generate a cited answer.
package chat
