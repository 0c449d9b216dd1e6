//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type request struct {
	Query string `json:"query"`
	Type  string `json:"type"`
}

// fakeEndpoint answers every query with two results and records requests
type fakeEndpoint struct {
	mu       sync.Mutex
	requests []request
}

func (f *fakeEndpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"results": []map[string]string{
			{"title": "First hit for " + req.Query, "url": "https://example.com/1", "source": "Example"},
			{"title": "Second hit for " + req.Query, "url": "https://example.com/2", "source": "Example"},
		},
	})
}

func (f *fakeEndpoint) Requests() []request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]request(nil), f.requests...)
}

func startEndpoint(t *testing.T) (*fakeEndpoint, string) {
	t.Helper()
	f := &fakeEndpoint{}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return f, srv.URL + "/search"
}

func TestSearchFromSearchBar(t *testing.T) {
	t.Parallel()
	endpoint, url := startEndpoint(t)

	app := newSession(t)
	defer app.Close()

	require.NoError(t, app.Start("--endpoint", url))
	require.True(t, app.Ready(), "app should render")
	app.MustSee("Добро пожаловать", 3*time.Second)

	require.NoError(t, app.Search("golang"))

	app.MustSee("First hit for golang", 5*time.Second)

	reqs := endpoint.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, request{Query: "golang", Type: "web"}, reqs[0])

	require.NoError(t, app.Quit())
	assert.NoError(t, app.WaitExit(3*time.Second))
}

func TestInitialQueryFlag(t *testing.T) {
	t.Parallel()
	endpoint, url := startEndpoint(t)

	app := newSession(t)
	defer app.Close()

	require.NoError(t, app.Start("--endpoint", url, "--mode", "music", "--query", "jazz"))
	require.True(t, app.Ready(), "app should render")
	app.MustSee("First hit for jazz", 5*time.Second)

	reqs := endpoint.Requests()
	require.NotEmpty(t, reqs)
	assert.Equal(t, "music", reqs[0].Type)

	require.NoError(t, app.Send(KeyCtrlC))
	assert.NoError(t, app.WaitExit(3*time.Second))
}

func TestUnreachableEndpointShowsToast(t *testing.T) {
	t.Parallel()
	app := newSession(t)
	defer app.Close()

	require.NoError(t, app.Start("--endpoint", "http://127.0.0.1:1/search", "--query", "offline"))
	require.True(t, app.Ready(), "app should render")
	app.MustSee("Ошибка поиска", 5*time.Second)

	require.NoError(t, app.Quit())
	assert.NoError(t, app.WaitExit(3*time.Second))
}

func TestHelperSheetOpensAndCloses(t *testing.T) {
	t.Parallel()
	_, url := startEndpoint(t)

	app := newSession(t)
	defer app.Close()

	require.NoError(t, app.Start("--endpoint", url))
	require.True(t, app.Ready(), "app should render")

	require.NoError(t, app.Send(KeyHelper))
	app.MustSee("Горячие клавиши", 3*time.Second)

	require.NoError(t, app.Send(KeyEsc))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, app.Quit())
	assert.NoError(t, app.WaitExit(3*time.Second))
}

func TestSearchSubcommand(t *testing.T) {
	t.Parallel()
	_, url := startEndpoint(t)
	home := t.TempDir()

	cmd := exec.Command(binPath, "search", "--endpoint", url, "--json", "hello", "world")
	cmd.Env = []string{
		"HOME=" + home,
		"XDG_CONFIG_HOME=" + filepath.Join(home, ".config"),
		"SEARCHPRO_LOG_FILE=" + filepath.Join(home, "searchpro.log"),
	}
	out, err := cmd.Output()
	require.NoError(t, err)

	var got struct {
		Query   string `json:"query"`
		Results []struct {
			Title string `json:"title"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "hello world", got.Query)
	require.Len(t, got.Results, 2)
	assert.Equal(t, "First hit for hello world", got.Results[0].Title)
}
