package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"searchpro/internal/domain"
)

// ErrInvalidResponse is returned when the endpoint answers with a body that is
// not a search response
var ErrInvalidResponse = errors.New("invalid search response")

// maxBodyBytes caps how much of a response is read
const maxBodyBytes = 4 << 20

// Searcher performs one outbound search
type Searcher interface {
	Search(ctx context.Context, q domain.SearchQuery) ([]domain.SearchResult, error)
}

// StatusError is returned for non-2xx responses
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("search endpoint returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("search endpoint returned HTTP %d: %s", e.StatusCode, e.Body)
}

type requestBody struct {
	Query string            `json:"query"`
	Type  domain.SearchMode `json:"type"`
}

type responseBody struct {
	Results []domain.SearchResult `json:"results"`
}

// responseSchema accepts any object whose optional "results" is a list of
// objects. Result fields may be null.
const responseSchema = `{
  "type": "object",
  "properties": {
    "results": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "properties": {
          "title":     {"type": ["string", "null"]},
          "snippet":   {"type": ["string", "null"]},
          "url":       {"type": ["string", "null"]},
          "source":    {"type": ["string", "null"]},
          "type":      {"type": ["string", "null"]},
          "thumbnail": {"type": ["string", "null"]}
        }
      }
    }
  }
}`

var compiledSchema = mustSchema(responseSchema)

func mustSchema(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(fmt.Sprintf("search: bad response schema: %v", err))
	}
	return schema
}

// Client posts queries to a fixed endpoint
type Client struct {
	endpoint   string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a client. A zero timeout means requests never time out.
func NewClient(endpoint string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log.Named("search"),
	}
}

// Endpoint returns the URL requests are sent to
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Search sends {query, type} and returns the results in server order.
// A response without "results" yields an empty, non-nil slice.
func (c *Client) Search(ctx context.Context, q domain.SearchQuery) ([]domain.SearchResult, error) {
	if strings.TrimSpace(q.Text) == "" {
		return nil, domain.ErrEmptyQuery
	}

	payload, err := json.Marshal(requestBody{Query: q.Text, Type: q.Mode})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	log := c.log.With(
		zap.String("request_id", requestID),
		zap.String("type", string(q.Mode)),
		zap.Int("query_len", len(q.Text)),
	)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("search request failed", zap.Error(err), zap.Duration("took", time.Since(start)))
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("search endpoint error", zap.Int("status", resp.StatusCode), zap.Duration("took", time.Since(start)))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: summarize(body)}
	}

	results, err := decode(body)
	if err != nil {
		log.Warn("search response rejected", zap.Error(err))
		return nil, err
	}

	log.Info("search completed", zap.Int("results", len(results)), zap.Duration("took", time.Since(start)))
	return results, nil
}

// decode validates the body against the response schema and extracts results
func decode(body []byte) ([]domain.SearchResult, error) {
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: body is not JSON", ErrInvalidResponse)
	}

	res, err := compiledSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidResponse, strings.Join(msgs, "; "))
	}

	var out responseBody
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if out.Results == nil {
		return []domain.SearchResult{}, nil
	}
	return out.Results, nil
}

// summarize trims an error body for display
func summarize(body []byte) string {
	s := strings.TrimSpace(string(body))
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &e) == nil && e.Error != "" {
		s = e.Error
	}
	if r := []rune(s); len(r) > 200 {
		s = string(r[:200]) + "…"
	}
	return s
}
