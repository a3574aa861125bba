package chat

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/snlchat"
)

// Ensure Classifier implements snlchat.Classifier at compile time.
var _ snlchat.Classifier = (*Classifier)(nil)

// Classifier translates and classifies a question with a single call to the
// generation service.
type Classifier struct {
	Chat snlchat.ChatService
}

// NewClassifier creates a new Classifier.
func NewClassifier(chat snlchat.ChatService) *Classifier {
	return &Classifier{Chat: chat}
}

// Classify returns the English translation and intent of text. On failure it
// returns the untranslated text with the website intent together with the error.
func (c *Classifier) Classify(ctx context.Context, text string) (snlchat.Classification, error) {
	if strings.TrimSpace(text) == "" {
		return degraded(text), nil
	}

	reply, err := c.Chat.Complete(ctx, []snlchat.Message{
		snlchat.UserMessage(BuildClassificationPrompt(text)),
	})
	if err != nil {
		return degraded(text), fmt.Errorf("classify: %w", err)
	}
	if reply == nil {
		return degraded(text), snlchat.Errorf(snlchat.EINTERNAL, "classify: generation service returned no reply")
	}

	return ParseClassification(text, snlchat.ExtractText(reply))
}

func degraded(text string) snlchat.Classification {
	return snlchat.Classification{Query: text, Intent: snlchat.IntentWebsite}
}

// BuildClassificationPrompt builds the combined translation and
// classification instruction for text.
func BuildClassificationPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("You have three tasks.\n\n")
	sb.WriteString("1. TRANSLATE: Translate the text below to English. If it is already in English, return it unchanged.\n")
	sb.WriteString("2. CLASSIFY: Choose exactly one query type using these rules:\n")
	sb.WriteString("   - thesis: the text mentions a thesis, theses, a dissertation, a PhD, doctoral research, a chapter or an abstract\n")
	sb.WriteString("   - books: the text mentions a book, an author, a novel, literature, a publisher or an ISBN\n")
	sb.WriteString("   - posters: the text mentions a poster, an exhibition, or how a poster was designed, printed or sized\n")
	sb.WriteString("   - website: anything else, such as opening hours, fees, registration, services, contact details or the catalogue\n")
	sb.WriteString("3. LANGUAGE: Name the language the text is written in, in English.\n\n")
	fmt.Fprintf(&sb, "Text: %s\n\n", text)
	sb.WriteString("Respond with exactly these three lines and nothing else:\n")
	sb.WriteString("TRANSLATION: <english text>\n")
	sb.WriteString("TYPE: <website|thesis|books|posters>\n")
	sb.WriteString("LANGUAGE: <language name>")
	return sb.String()
}

// ParseClassification parses a reply to the classification prompt. A missing
// or unrecognized TYPE line yields the degraded classification of original
// and an EINVALID error. A missing translation keeps original as the query.
func ParseClassification(original, reply string) (snlchat.Classification, error) {
	var translation, typ, language string
	var hasType bool

	for _, line := range strings.Split(reply, "\n") {
		label, value, ok := strings.Cut(strings.Trim(strings.TrimSpace(line), "*#>- "), ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(strings.Trim(strings.TrimSpace(value), "*"))
		switch strings.ToUpper(strings.Trim(strings.TrimSpace(label), "*")) {
		case "TRANSLATION":
			translation = strings.Trim(value, "\"")
		case "TYPE":
			typ, hasType = value, true
		case "LANGUAGE":
			language = normalizeLanguage(value)
		}
	}

	if !hasType {
		return degraded(original), snlchat.Errorf(snlchat.EINVALID, "classification reply has no TYPE line")
	}
	intent, ok := snlchat.ParseIntent(typ)
	if !ok {
		return degraded(original), snlchat.Errorf(snlchat.EINVALID, "unrecognized query type %q", typ)
	}

	if strings.TrimSpace(translation) == "" {
		translation = original
	}
	return snlchat.Classification{Query: translation, Intent: intent, Language: language}, nil
}

// normalizeLanguage maps common codes and endonyms to English language names.
func normalizeLanguage(s string) string {
	s = strings.Trim(strings.TrimSpace(s), ".\"")
	switch strings.ToLower(s) {
	case "":
		return ""
	case "en", "english":
		return "English"
	case "fr", "french", "français", "francais":
		return "French"
	case "de", "german", "deutsch":
		return "German"
	case "it", "italian", "italiano":
		return "Italian"
	case "rm", "romansh", "rumantsch":
		return "Romansh"
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
