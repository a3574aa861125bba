package fs

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/snlchat"
)

// TranscriptLayout names saved answer files by the time they were saved.
const TranscriptLayout = "20060102_150405"

// TranscriptPath returns the file name for an exchange saved at t.
func TranscriptPath(t time.Time) string {
	return "conversation_" + t.Format(TranscriptLayout) + ".md"
}

// FormatTranscript formats an exchange as markdown with YAML frontmatter.
func FormatTranscript(e *snlchat.Exchange) string {
	var b strings.Builder
	b.WriteString("---\n")
	if e.SessionID != "" {
		b.WriteString("session: ")
		b.WriteString(e.SessionID)
		b.WriteString("\n")
	}
	b.WriteString("saved: ")
	b.WriteString(e.CreatedAt.Format(time.RFC3339))
	b.WriteString("\n---\n\n")
	if q := strings.TrimSpace(e.Question); q != "" {
		b.WriteString("> ")
		b.WriteString(strings.ReplaceAll(q, "\n", "\n> "))
		b.WriteString("\n\n")
	}
	b.WriteString(e.Answer)
	b.WriteString("\n")
	return b.String()
}

// TranscriptWriter writes exchanges as markdown files to a directory.
type TranscriptWriter struct {
	baseDir string
}

// NewTranscriptWriter creates a TranscriptWriter that writes to baseDir.
func NewTranscriptWriter(baseDir string) *TranscriptWriter {
	return &TranscriptWriter{baseDir: baseDir}
}

// Save writes the exchange to disk and returns the file path. A zero
// CreatedAt is replaced with the current time.
func (w *TranscriptWriter) Save(e *snlchat.Exchange) (string, error) {
	if strings.TrimSpace(e.Answer) == "" {
		return "", snlchat.Errorf(snlchat.EINVALID, "nothing to save")
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(w.baseDir, TranscriptPath(e.CreatedAt))
	if err := os.WriteFile(path, []byte(FormatTranscript(e)), 0644); err != nil {
		return "", err
	}
	return path, nil
}
