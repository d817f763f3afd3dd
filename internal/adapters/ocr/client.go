// Package ocr talks to the external text-extraction service.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"blacklist/internal/ports"
)

const ErrExtractionUnavailable = errString("text extraction is not configured")

type errString string

func (e errString) Error() string { return string(e) }

// Client posts raw image bytes to the extraction endpoint and expects
// {"text": "..."} back.
type Client struct {
	endpoint string
	language string
	http     *http.Client
}

func New(endpoint, language string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{endpoint: endpoint, language: language, http: &http.Client{Timeout: timeout}}
}

var _ ports.TextExtractor = (*Client)(nil)

type response struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

func (c *Client) ExtractText(ctx context.Context, image []byte, contentType string) (string, error) {
	if c.endpoint == "" {
		return "", ErrExtractionUnavailable
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(image))
	if err != nil {
		return "", err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	if c.language != "" {
		q := req.URL.Query()
		q.Set("lang", c.language)
		req.URL.RawQuery = q.Encode()
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("ocr request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("ocr read: %w", err)
	}
	var out response
	if err := json.Unmarshal(body, &out); err != nil && resp.StatusCode == http.StatusOK {
		return "", fmt.Errorf("ocr decode: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if out.Error != "" {
			return "", fmt.Errorf("ocr: %s (status %d)", out.Error, resp.StatusCode)
		}
		return "", fmt.Errorf("ocr: unexpected status %d", resp.StatusCode)
	}
	return out.Text, nil
}
