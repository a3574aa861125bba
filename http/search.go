package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/snlchat"
)

// DefaultBaseURL is the GroundX API root.
const DefaultBaseURL = "https://api.groundx.ai/api"

// searchVerbosity asks for result text alongside the scores.
const searchVerbosity = 2

// Ensure SearchService implements snlchat.SearchService at compile time.
var _ snlchat.SearchService = (*SearchService)(nil)

// SearchService queries a GroundX bucket over its REST API.
type SearchService struct {
	client  *http.Client
	baseURL string
	apiKey  string
	timeout time.Duration
}

// Option configures a SearchService.
type Option func(*SearchService)

// WithBaseURL overrides DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(s *SearchService) {
		s.baseURL = strings.TrimRight(u, "/")
	}
}

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *SearchService) {
		s.timeout = d
	}
}

// WithHTTPClient replaces the underlying client. The timeout option is
// ignored when a client is supplied.
func WithHTTPClient(c *http.Client) Option {
	return func(s *SearchService) {
		s.client = c
	}
}

// NewSearchService creates a SearchService authenticating with apiKey.
func NewSearchService(apiKey string, opts ...Option) *SearchService {
	s := &SearchService{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: s.timeout}
	}
	return s
}

type searchRequest struct {
	Query     string `json:"query"`
	N         int    `json:"n,omitempty"`
	Verbosity int    `json:"verbosity"`
}

type searchResponse struct {
	Search struct {
		Results []struct {
			Text string `json:"text"`
		} `json:"results"`
	} `json:"search"`
}

// Search runs a semantic search against the bucket named in req.
func (s *SearchService) Search(ctx context.Context, req snlchat.SearchRequest) ([]snlchat.SearchResult, error) {
	if req.CollectionID == "" {
		return nil, snlchat.Errorf(snlchat.EINVALID, "collection id required")
	}

	body, err := json.Marshal(searchRequest{
		Query:     req.Query,
		N:         req.MaxResults,
		Verbosity: searchVerbosity,
	})
	if err != nil {
		return nil, err
	}

	endpoint := s.baseURL + "/v1/search/" + url.PathEscape(req.CollectionID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-API-Key", s.apiKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, snlchat.Errorf(snlchat.EUNAVAILABLE, "search request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, snlchat.Errorf(snlchat.EUNAVAILABLE, "search returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, snlchat.Errorf(snlchat.EINTERNAL, "decode search response: %v", err)
	}

	results := make([]snlchat.SearchResult, 0, len(out.Search.Results))
	for _, r := range out.Search.Results {
		results = append(results, snlchat.SearchResult{Text: r.Text})
	}
	return results, nil
}
