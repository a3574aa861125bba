package snlchat

import (
	"context"
	"strings"
)

// Intent is the classified category of a question. It selects the
// instruction template that governs the answer.
type Intent string

// Intent constants. IntentUnknown is the fallback arm for anything the
// classifier could not place; callers that need a concrete intent use
// OrDefault.
const (
	IntentUnknown Intent = ""
	IntentWebsite Intent = "website"
	IntentThesis  Intent = "thesis"
	IntentBooks   Intent = "books"
	IntentPosters Intent = "posters"
)

// Intents lists the recognized intents in classification order.
var Intents = []Intent{IntentWebsite, IntentThesis, IntentBooks, IntentPosters}

// ParseIntent returns the intent named by token. Matching ignores case,
// surrounding whitespace, quotes, and markdown emphasis. The second return
// value is false when token is not one of the recognized intents.
func ParseIntent(token string) (Intent, bool) {
	s := strings.ToLower(strings.Trim(strings.TrimSpace(token), "*_`'\".:"))
	for _, intent := range Intents {
		if s == string(intent) {
			return intent, true
		}
	}
	return IntentUnknown, false
}

// OrDefault returns the intent, or IntentWebsite if it is unknown.
func (i Intent) OrDefault() Intent {
	if _, ok := ParseIntent(string(i)); !ok {
		return IntentWebsite
	}
	return i
}

// Classification is the result of translating and classifying a question.
type Classification struct {
	// Query is the question normalized to English.
	Query string `json:"query"`

	// Intent selects the answer template.
	Intent Intent `json:"intent"`

	// Language is the language the question was asked in, if known.
	Language string `json:"language,omitempty"`
}

// Classifier translates a question to English and classifies its intent.
type Classifier interface {
	// Classify returns a usable classification even when it also returns an
	// error; the error only reports that the result is degraded.
	Classify(ctx context.Context, text string) (Classification, error)
}

// NormalizeKey returns the cache key for text: trimmed and lowercased.
func NormalizeKey(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
