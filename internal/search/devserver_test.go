package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"searchpro/internal/domain"
)

func TestDevHandlerServesClient(t *testing.T) {
	srv := httptest.NewServer(NewDevHandler(zaptest.NewLogger(t)))
	defer srv.Close()
	client := NewClient(srv.URL, time.Second, zaptest.NewLogger(t))

	cases := []struct {
		mode  domain.SearchMode
		count int
	}{
		{domain.ModeWeb, 3},
		{domain.ModeVoice, 3},
		{domain.ModeMusic, 5},
		{domain.ModeImage, 8},
	}
	for _, tc := range cases {
		t.Run(string(tc.mode), func(t *testing.T) {
			results, err := client.Search(context.Background(), domain.SearchQuery{Text: "джаз", Mode: tc.mode})
			require.NoError(t, err)
			assert.Len(t, results, tc.count)
			assert.Contains(t, results[0].Title, "джаз")
		})
	}
}

func TestDevHandlerRejectsBlankQuery(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"query":"  ","type":"web"}`))
	NewDevHandler(nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Query is required")
}

func TestDevHandlerMethods(t *testing.T) {
	h := NewDevHandler(nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestClientSurfacesDevHandlerError(t *testing.T) {
	srv := httptest.NewServer(NewDevHandler(nil))
	defer srv.Close()

	// bypass the client-side blank check by sending a whitespace-only body directly
	resp, err := http.Post(srv.URL, "application/json", strings.NewReader(`{"query":""}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
