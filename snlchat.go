// Package snlchat provides a retrieval-augmented assistant for library
// collections. A question is translated and classified by intent, answered
// from context retrieved out of a document index, and returned with
// machine-checkable citation markers.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, openai/, gemini/).
package snlchat
