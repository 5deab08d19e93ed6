package emitter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"techbook-scraper/models"
)

// HTTPPoster submits the aggregated records as one JSON array in a
// single POST request
type HTTPPoster struct {
	endpoint string
	client   *http.Client
}

// NewHTTPPoster creates an HTTPPoster for the given endpoint
func NewHTTPPoster(endpoint string, timeout time.Duration) *HTTPPoster {
	return &HTTPPoster{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Emit implements the Emitter interface
func (p *HTTPPoster) Emit(books []models.Book) error {
	body, err := json.Marshal(books)
	if err != nil {
		return fmt.Errorf("failed to encode books: %w", err)
	}

	resp, err := p.client.Post(p.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return &EmitError{Endpoint: p.endpoint, Err: err}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &EmitError{Endpoint: p.endpoint, StatusCode: resp.StatusCode}
	}
	return nil
}
