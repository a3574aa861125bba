package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/snlchat"
)

// DefaultMaxChunks is the number of chunks requested when MaxChunks is unset.
const DefaultMaxChunks = 3

// Ensure Retriever implements snlchat.Retriever at compile time.
var _ snlchat.Retriever = (*Retriever)(nil)

// Retriever fetches chunks from the retrieval service and formats them into
// a context block with citation markers.
type Retriever struct {
	Search       snlchat.SearchService
	CollectionID string
	MaxChunks    int
}

// NewRetriever creates a new Retriever.
func NewRetriever(search snlchat.SearchService, collectionID string, maxChunks int) *Retriever {
	return &Retriever{Search: search, CollectionID: collectionID, MaxChunks: maxChunks}
}

// Retrieve searches for query and returns the formatted context. Service
// errors are returned as-is; callers decide how to degrade.
func (r *Retriever) Retrieve(ctx context.Context, query string) (*snlchat.RetrievalContext, error) {
	maxChunks := r.MaxChunks
	if maxChunks <= 0 {
		maxChunks = DefaultMaxChunks
	}

	results, err := r.Search.Search(ctx, snlchat.SearchRequest{
		CollectionID: r.CollectionID,
		Query:        strings.TrimSpace(query),
		MaxResults:   maxChunks,
	})
	if err != nil {
		return nil, fmt.Errorf("retrieve: %w", err)
	}

	chunks := make([]snlchat.Chunk, 0, len(results))
	for _, res := range results {
		chunks = append(chunks, snlchat.ParseChunk(res.Text))
	}
	return snlchat.FormatContext(chunks), nil
}
