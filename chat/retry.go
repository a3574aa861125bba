package chat

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/snlchat"
)

var _ snlchat.SearchService = (*RetryingSearchService)(nil)

// RetryDelays returns n backoff delays doubling from base: base, 2*base, 4*base...
func RetryDelays(n int, base time.Duration) []time.Duration {
	delays := make([]time.Duration, 0, n)
	for i := 0; i < n; i++ {
		delays = append(delays, base<<i)
	}
	return delays
}

// RetryingSearchService retries searches that fail with EUNAVAILABLE. Other
// errors are returned immediately.
type RetryingSearchService struct {
	Next snlchat.SearchService

	// Delays holds the wait before each retry. Nil disables retries.
	Delays []time.Duration

	Logger *slog.Logger
}

// NewRetryingSearchService wraps search with len(delays) retries.
func NewRetryingSearchService(search snlchat.SearchService, delays []time.Duration, logger *slog.Logger) *RetryingSearchService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RetryingSearchService{Next: search, Delays: delays, Logger: logger}
}

func (s *RetryingSearchService) Search(ctx context.Context, req snlchat.SearchRequest) ([]snlchat.SearchResult, error) {
	maxAttempts := len(s.Delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		results, err := s.Next.Search(ctx, req)
		if err == nil {
			return results, nil
		}
		lastErr = err

		if snlchat.ErrorCode(err) != snlchat.EUNAVAILABLE || attempt >= maxAttempts-1 {
			break
		}

		s.Logger.Warn("retry search", "collection", req.CollectionID, "attempt", attempt+2, "err", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.Delays[attempt]):
		}
	}

	return nil, lastErr
}
