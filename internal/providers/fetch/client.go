package fetch

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Client issues GET requests against JSON APIs and classifies failures
// into TransportError, RequestError and ParseError.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client. A zero timeout means requests never time out.
func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	return NewClientWithHTTP(&http.Client{Timeout: timeout}, logger)
}

// NewClientWithHTTP creates a client around an existing http.Client
func NewClientWithHTTP(httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     logger.With("component", "fetch"),
	}
}

// GetJSON fetches rawURL and decodes the body into out. A RequestError
// carries the response body as received; see TrimBody.
// action describes the step for error messages, e.g. "fetching IP".
func (c *Client) GetJSON(ctx context.Context, rawURL, action string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &TransportError{Action: action, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "url", rawURL, "error", err)
		return &TransportError{Action: action, Err: err}
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Action: action, Err: err}
	}

	c.logger.Debug("request completed",
		"url", rawURL,
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{
			Action:     action,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &ParseError{Action: action, Err: err}
	}

	return nil
}
