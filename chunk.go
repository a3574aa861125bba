package snlchat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Context placeholders used when retrieval yields nothing usable.
const (
	// NoInformation replaces the context block when the retrieval service fails.
	NoInformation = "There is no available information in the library collections for me to assist you."

	// NoResultsFound is the context body when retrieval succeeds with no chunks.
	NoResultsFound = "No relevant information found in the library collections."
)

// Chunk is one retrieved unit of text from the document index.
type Chunk struct {
	// Text is the raw chunk text exactly as the retrieval service returned it.
	Text string `json:"text"`

	// Fields holds the top-level fields when Text is a JSON object, nil otherwise.
	Fields map[string]string `json:"fields,omitempty"`

	// SourceURL is the citation URL carried by the chunk, if any.
	SourceURL string `json:"sourceUrl,omitempty"`
}

// ParseChunk parses raw chunk text. Text that decodes to a JSON object has its
// fields and source_url extracted; anything else is kept as plain text. The
// raw text is preserved in both cases.
func ParseChunk(text string) Chunk {
	c := Chunk{Text: text}

	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err != nil || obj == nil {
		return c
	}

	c.Fields = make(map[string]string, len(obj))
	for k, v := range obj {
		switch v := v.(type) {
		case string:
			c.Fields[k] = v
		case nil:
			c.Fields[k] = ""
		default:
			b, err := json.Marshal(v)
			if err != nil {
				c.Fields[k] = fmt.Sprint(v)
				continue
			}
			c.Fields[k] = string(b)
		}
	}
	if url, ok := obj["source_url"].(string); ok {
		c.SourceURL = strings.TrimSpace(url)
	}
	return c
}

// RetrievalContext is the context block inserted into the generation prompt.
type RetrievalContext struct {
	// Body is the concatenated chunk text.
	Body string `json:"body"`

	// SourceURLs are the distinct citation URLs in discovery order.
	SourceURLs []string `json:"sourceUrls,omitempty"`
}

// String renders the body followed by one citation marker per source URL.
func (c *RetrievalContext) String() string {
	if c == nil {
		return ""
	}
	if len(c.SourceURLs) == 0 {
		return c.Body
	}
	markers := make([]string, 0, len(c.SourceURLs))
	for _, url := range c.SourceURLs {
		markers = append(markers, CitationMarker(url))
	}
	return c.Body + "\n\n" + strings.Join(markers, "\n")
}

// CitationMarker returns the citation marker for url.
func CitationMarker(url string) string {
	return "[PRIMARY_SOURCE: " + url + "]"
}

// FormatContext builds a retrieval context from chunks. Chunk texts are
// separated by blank lines and source URLs are deduplicated. Chunks without
// text are skipped. An empty chunk list yields the NoResultsFound body.
func FormatContext(chunks []Chunk) *RetrievalContext {
	texts := make([]string, 0, len(chunks))
	seen := make(map[string]struct{})
	var urls []string

	for _, c := range chunks {
		if strings.TrimSpace(c.Text) == "" {
			continue
		}
		texts = append(texts, c.Text)
		if c.SourceURL == "" {
			continue
		}
		if _, ok := seen[c.SourceURL]; ok {
			continue
		}
		seen[c.SourceURL] = struct{}{}
		urls = append(urls, c.SourceURL)
	}

	if len(texts) == 0 {
		return &RetrievalContext{Body: NoResultsFound}
	}
	return &RetrievalContext{Body: strings.Join(texts, "\n\n"), SourceURLs: urls}
}

// SearchRequest is a query against the document retrieval service.
type SearchRequest struct {
	CollectionID string `json:"collectionId"`
	Query        string `json:"query"`
	MaxResults   int    `json:"maxResults"`
}

// SearchResult is one ranked chunk returned by the retrieval service.
type SearchResult struct {
	Text string `json:"text"`
}

// SearchService is the external document retrieval service.
type SearchService interface {
	// Search returns chunks ordered by relevance to the query.
	Search(ctx context.Context, req SearchRequest) ([]SearchResult, error)
}

// Retriever resolves a normalized query into a retrieval context.
type Retriever interface {
	// Retrieve returns EUNAVAILABLE if the retrieval service cannot be reached.
	Retrieve(ctx context.Context, query string) (*RetrievalContext, error)
}
