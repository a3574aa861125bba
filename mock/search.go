package mock

import (
	"context"

	"github.com/fwojciec/snlchat"
)

var _ snlchat.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of snlchat.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, req snlchat.SearchRequest) ([]snlchat.SearchResult, error)
}

func (s *SearchService) Search(ctx context.Context, req snlchat.SearchRequest) ([]snlchat.SearchResult, error) {
	return s.SearchFn(ctx, req)
}
