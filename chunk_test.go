package snlchat_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/snlchat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChunk(t *testing.T) {
	t.Parallel()

	t.Run("extracts source URL from JSON object", func(t *testing.T) {
		t.Parallel()

		raw := `{"source_url": "https://a.ch", "body": "X", "year": 1973}`

		c := snlchat.ParseChunk(raw)

		assert.Equal(t, raw, c.Text)
		assert.Equal(t, "https://a.ch", c.SourceURL)
		require.NotNil(t, c.Fields)
		assert.Equal(t, "X", c.Fields["body"])
		assert.Equal(t, "1973", c.Fields["year"])
	})

	t.Run("keeps plain text as-is", func(t *testing.T) {
		t.Parallel()

		c := snlchat.ParseChunk("Opening hours: Mon-Fri 9-18")

		assert.Equal(t, "Opening hours: Mon-Fri 9-18", c.Text)
		assert.Nil(t, c.Fields)
		assert.Empty(t, c.SourceURL)
	})

	t.Run("JSON without source_url has no URL", func(t *testing.T) {
		t.Parallel()

		c := snlchat.ParseChunk(`{"title": "Poster"}`)

		assert.NotNil(t, c.Fields)
		assert.Empty(t, c.SourceURL)
	})

	t.Run("JSON array is treated as plain text", func(t *testing.T) {
		t.Parallel()

		c := snlchat.ParseChunk(`["a", "b"]`)

		assert.Nil(t, c.Fields)
		assert.Equal(t, `["a", "b"]`, c.Text)
	})

	t.Run("non-string source_url is ignored", func(t *testing.T) {
		t.Parallel()

		c := snlchat.ParseChunk(`{"source_url": 42}`)

		assert.Empty(t, c.SourceURL)
	})
}

func TestFormatContext(t *testing.T) {
	t.Parallel()

	t.Run("deduplicates source URLs and keeps both bodies", func(t *testing.T) {
		t.Parallel()

		chunks := []snlchat.Chunk{
			snlchat.ParseChunk(`{"source_url": "https://a.ch", "body": "X"}`),
			snlchat.ParseChunk(`{"source_url": "https://a.ch", "body": "Y"}`),
		}

		got := snlchat.FormatContext(chunks).String()

		assert.Contains(t, got, `"body": "X"`)
		assert.Contains(t, got, `"body": "Y"`)
		assert.Equal(t, 1, strings.Count(got, "[PRIMARY_SOURCE: https://a.ch]"))
	})

	t.Run("emits one marker per distinct URL", func(t *testing.T) {
		t.Parallel()

		chunks := []snlchat.Chunk{
			snlchat.ParseChunk(`{"source_url": "https://a.ch", "body": "X"}`),
			snlchat.ParseChunk("plain text chunk"),
			snlchat.ParseChunk(`{"source_url": "https://b.ch", "body": "Z"}`),
			snlchat.ParseChunk(`{"source_url": "https://b.ch", "body": "W"}`),
		}

		rc := snlchat.FormatContext(chunks)
		got := rc.String()

		assert.Equal(t, []string{"https://a.ch", "https://b.ch"}, rc.SourceURLs)
		assert.Equal(t, 2, strings.Count(got, "[PRIMARY_SOURCE:"))
		assert.Equal(t, 1, strings.Count(got, "[PRIMARY_SOURCE: https://a.ch]"))
		assert.Equal(t, 1, strings.Count(got, "[PRIMARY_SOURCE: https://b.ch]"))
		assert.Contains(t, got, "plain text chunk")
	})

	t.Run("separates chunks with blank lines and appends markers last", func(t *testing.T) {
		t.Parallel()

		chunks := []snlchat.Chunk{
			{Text: "first", SourceURL: "https://a.ch"},
			{Text: "second"},
		}

		got := snlchat.FormatContext(chunks).String()

		assert.Equal(t, "first\n\nsecond\n\n[PRIMARY_SOURCE: https://a.ch]", got)
	})

	t.Run("no markers without URLs", func(t *testing.T) {
		t.Parallel()

		got := snlchat.FormatContext([]snlchat.Chunk{{Text: "only text"}}).String()

		assert.Equal(t, "only text", got)
	})

	t.Run("empty chunks yield no results body", func(t *testing.T) {
		t.Parallel()

		rc := snlchat.FormatContext([]snlchat.Chunk{{Text: "  "}})

		assert.Equal(t, snlchat.NoResultsFound, rc.Body)
		assert.Empty(t, rc.SourceURLs)
	})
}

func TestRetrievalContext_String_Nil(t *testing.T) {
	t.Parallel()

	var rc *snlchat.RetrievalContext

	assert.Empty(t, rc.String())
}

func TestCitationMarker(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[PRIMARY_SOURCE: https://www.nb.admin.ch]", snlchat.CitationMarker("https://www.nb.admin.ch"))
}
