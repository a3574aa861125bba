package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/snlchat"
)

// Ensure LoggingSearchService implements snlchat.SearchService.
var _ snlchat.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with logging.
type LoggingSearchService struct {
	next   snlchat.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next snlchat.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// Search delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) Search(ctx context.Context, req snlchat.SearchRequest) (results []snlchat.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"collection", req.CollectionID,
			"query", req.Query,
			"limit", req.MaxResults,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, req)
}
