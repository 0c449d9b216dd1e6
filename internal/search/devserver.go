package search

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"searchpro/internal/domain"
)

// DevHandler is a local stand-in for the search endpoint. It answers with
// canned results shaped like the production function so the UI can be
// exercised offline.
type DevHandler struct {
	log *zap.Logger
}

// NewDevHandler creates the handler
func NewDevHandler(log *zap.Logger) *DevHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &DevHandler{log: log.Named("devserver")}
}

func (h *DevHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	switch r.Method {
	case http.MethodOptions:
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		return
	}

	var req requestBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON body"})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Query is required"})
		return
	}
	if req.Type == "" {
		req.Type = domain.ModeWeb
	}

	var results []domain.SearchResult
	switch req.Type {
	case domain.ModeMusic:
		results = musicResults(req.Query)
	case domain.ModeImage:
		results = imageResults(req.Query)
	default:
		results = webResults(req.Query)
	}

	h.log.Debug("dev search", zap.String("type", string(req.Type)), zap.Int("results", len(results)))
	writeJSON(w, http.StatusOK, map[string]any{
		"query":   req.Query,
		"type":    req.Type,
		"results": results,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func musicResults(q string) []domain.SearchResult {
	out := make([]domain.SearchResult, 0, 5)
	for i := 1; i <= 5; i++ {
		out = append(out, domain.SearchResult{
			Title:   fmt.Sprintf("🎵 %s - Результат %d", q, i),
			Snippet: fmt.Sprintf("Музыкальный трек по запросу %q", q),
			URL:     "https://www.youtube.com/results?search_query=" + url.QueryEscape(q),
			Source:  "YouTube",
			Type:    string(domain.ModeMusic),
		})
	}
	return out
}

func imageResults(q string) []domain.SearchResult {
	out := make([]domain.SearchResult, 0, 8)
	for i := 1; i <= 8; i++ {
		out = append(out, domain.SearchResult{
			Title:     fmt.Sprintf("Изображение: %s #%d", q, i),
			Snippet:   fmt.Sprintf("Картинка по запросу %q", q),
			URL:       "https://www.google.com/search?tbm=isch&q=" + url.QueryEscape(q),
			Thumbnail: fmt.Sprintf("https://via.placeholder.com/300x200?text=%s+%d", url.QueryEscape(q), i),
			Source:    "Поиск картинок",
			Type:      string(domain.ModeImage),
		})
	}
	return out
}

func webResults(q string) []domain.SearchResult {
	return []domain.SearchResult{
		{
			Title:   "Результат поиска: " + q,
			Snippet: fmt.Sprintf("Информация по запросу %q. Найдено через поисковую систему.", q),
			URL:     "https://duckduckgo.com/?q=" + url.QueryEscape(q),
			Source:  "DuckDuckGo",
		},
		{
			Title:   q + " - Википедия",
			Snippet: "Энциклопедическая статья о " + q,
			URL:     "https://ru.wikipedia.org/wiki/" + url.PathEscape(q),
			Source:  "Wikipedia",
		},
		{
			Title:   q + " на YouTube",
			Snippet: "Видео и материалы про " + q,
			URL:     "https://www.youtube.com/results?search_query=" + url.QueryEscape(q),
			Source:  "YouTube",
		},
	}
}
