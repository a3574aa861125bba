package chat_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/snlchat"
	"github.com/fwojciec/snlchat/chat"
	"github.com/fwojciec/snlchat/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetriever_Retrieve(t *testing.T) {
	t.Parallel()

	t.Run("requests configured collection and chunk limit", func(t *testing.T) {
		t.Parallel()

		var got snlchat.SearchRequest
		search := &mock.SearchService{
			SearchFn: func(_ context.Context, req snlchat.SearchRequest) ([]snlchat.SearchResult, error) {
				got = req
				return []snlchat.SearchResult{{Text: "chunk"}}, nil
			},
		}

		_, err := chat.NewRetriever(search, "69", 5).Retrieve(context.Background(), "  opening hours ")

		require.NoError(t, err)
		assert.Equal(t, snlchat.SearchRequest{CollectionID: "69", Query: "opening hours", MaxResults: 5}, got)
	})

	t.Run("defaults chunk limit", func(t *testing.T) {
		t.Parallel()

		var got snlchat.SearchRequest
		search := &mock.SearchService{
			SearchFn: func(_ context.Context, req snlchat.SearchRequest) ([]snlchat.SearchResult, error) {
				got = req
				return nil, nil
			},
		}

		_, err := chat.NewRetriever(search, "69", 0).Retrieve(context.Background(), "q")

		require.NoError(t, err)
		assert.Equal(t, chat.DefaultMaxChunks, got.MaxResults)
	})

	t.Run("two distinct URLs and one plain chunk yield two markers", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchService{
			SearchFn: func(context.Context, snlchat.SearchRequest) ([]snlchat.SearchResult, error) {
				return []snlchat.SearchResult{
					{Text: `{"source_url": "https://a.ch", "body": "A"}`},
					{Text: "no json here"},
					{Text: `{"source_url": "https://b.ch", "body": "B"}`},
				}, nil
			},
		}

		rc, err := chat.NewRetriever(search, "69", 3).Retrieve(context.Background(), "q")

		require.NoError(t, err)
		got := rc.String()
		assert.Equal(t, 2, strings.Count(got, "[PRIMARY_SOURCE:"))
		assert.Equal(t, 1, strings.Count(got, "[PRIMARY_SOURCE: https://a.ch]"))
		assert.Equal(t, 1, strings.Count(got, "[PRIMARY_SOURCE: https://b.ch]"))
		assert.Contains(t, got, "no json here")
	})

	t.Run("duplicate URL chunks keep both bodies and one marker", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchService{
			SearchFn: func(context.Context, snlchat.SearchRequest) ([]snlchat.SearchResult, error) {
				return []snlchat.SearchResult{
					{Text: "{\"source_url\": \"https://a.ch\", \"body\": \"X\"}"},
					{Text: "{\"source_url\": \"https://a.ch\", \"body\": \"Y\"}"},
				}, nil
			},
		}

		rc, err := chat.NewRetriever(search, "69", 3).Retrieve(context.Background(), "q")

		require.NoError(t, err)
		got := rc.String()
		assert.Contains(t, got, `"body": "X"`)
		assert.Contains(t, got, `"body": "Y"`)
		assert.Equal(t, 1, strings.Count(got, "[PRIMARY_SOURCE: https://a.ch]"))
	})

	t.Run("propagates service errors", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchService{
			SearchFn: func(context.Context, snlchat.SearchRequest) ([]snlchat.SearchResult, error) {
				return nil, snlchat.Errorf(snlchat.EUNAVAILABLE, "HTTP 503")
			},
		}

		rc, err := chat.NewRetriever(search, "69", 3).Retrieve(context.Background(), "q")

		require.Error(t, err)
		assert.Nil(t, rc)
		assert.Equal(t, snlchat.EUNAVAILABLE, snlchat.ErrorCode(err))
	})

	t.Run("wraps plain errors", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchService{
			SearchFn: func(context.Context, snlchat.SearchRequest) ([]snlchat.SearchResult, error) {
				return nil, errors.New("dial tcp: refused")
			},
		}

		_, err := chat.NewRetriever(search, "69", 3).Retrieve(context.Background(), "q")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "retrieve: dial tcp: refused")
	})
}
