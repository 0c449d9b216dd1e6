package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"searchpro/internal/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, zaptest.NewLogger(t)), &calls
}

func TestSearchPostsQueryAndType(t *testing.T) {
	var got requestBody
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"results":[
			{"title":"A","snippet":"s","url":"u","source":"x"},
			{"title":"B","snippet":"s2","url":"u2","source":"y","type":"music"},
			{"title":"C","snippet":"s3","url":"u3","source":"z","thumbnail":"t"}
		]}`))
	})

	results, err := client.Search(context.Background(), domain.SearchQuery{Text: "Новости", Mode: domain.ModeMusic})
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
	assert.Equal(t, "Новости", got.Query)
	assert.Equal(t, domain.ModeMusic, got.Type)
	require.Len(t, results, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{results[0].Title, results[1].Title, results[2].Title})
	assert.Equal(t, "music", results[1].Type)
	assert.Equal(t, "t", results[2].Thumbnail)
}

func TestSearchMissingResultsIsEmpty(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"query":"q","type":"web"}`))
	})

	results, err := client.Search(context.Background(), domain.SearchQuery{Text: "q", Mode: domain.ModeWeb})
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchNullResultsIsEmpty(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":null}`))
	})

	results, err := client.Search(context.Background(), domain.SearchQuery{Text: "q", Mode: domain.ModeWeb})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchAcceptsNullOptionalFields(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[
			{"title":"A","snippet":null,"url":"u","source":"x","type":null,"thumbnail":null}
		]}`))
	})

	results, err := client.Search(context.Background(), domain.SearchQuery{Text: "q", Mode: domain.ModeWeb})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "A", results[0].Title)
	assert.Empty(t, results[0].Snippet)
	assert.Empty(t, results[0].Type)
	assert.Empty(t, results[0].Thumbnail)
}

func TestSearchHTTPErrorReturnsStatusError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"backend down"}`))
	})

	_, err := client.Search(context.Background(), domain.SearchQuery{Text: "test", Mode: domain.ModeWeb})
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "backend down", statusErr.Body)
}

func TestSearchRejectsMalformedBodies(t *testing.T) {
	bodies := map[string]string{
		"not json":          `<html>oops</html>`,
		"results is object": `{"results":{"title":"A"}}`,
		"item is string":    `{"results":["A"]}`,
		"title is number":   `{"results":[{"title":5}]}`,
		"top level array":   `[{"title":"A"}]`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			})
			_, err := client.Search(context.Background(), domain.SearchQuery{Text: "q", Mode: domain.ModeWeb})
			assert.ErrorIs(t, err, ErrInvalidResponse)
		})
	}
}

func TestSearchBlankQueryNeverCallsEndpoint(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	})

	_, err := client.Search(context.Background(), domain.SearchQuery{Text: "   ", Mode: domain.ModeWeb})
	assert.True(t, errors.Is(err, domain.ErrEmptyQuery))
	assert.Equal(t, int32(0), atomic.LoadInt32(calls))
}

func TestSearchTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(block)

	client := NewClient(srv.URL, 50*time.Millisecond, zaptest.NewLogger(t))
	_, err := client.Search(context.Background(), domain.SearchQuery{Text: "slow", Mode: domain.ModeWeb})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search request failed")
}

func TestSearchConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, time.Second, zaptest.NewLogger(t))
	_, err := client.Search(context.Background(), domain.SearchQuery{Text: "q", Mode: domain.ModeWeb})
	require.Error(t, err)
}
