// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client talks to the VITECH backend REST API on behalf of one cadet.
type Client struct {
	baseURL    string
	telegramID int64
	httpClient *http.Client
}

// Option configures the client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the client timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithTransport sets the round tripper on the underlying HTTP client
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = rt
	}
}

// NewClient creates a backend client scoped to the given telegram id.
func NewClient(baseURL string, telegramID int64, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		telegramID: telegramID,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// TelegramID returns the id the client was created with.
func (c *Client) TelegramID() int64 { return c.telegramID }

// APIError is a failure reported by the backend, either as a non-2xx
// status or as a body-level error field in a 200 response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status != 0 && e.Status != http.StatusOK {
		return fmt.Sprintf("backend: HTTP %d: %s", e.Status, e.Message)
	}
	return "backend: " + e.Message
}

// apiErr normalizes a body-level error string into an *APIError, or nil
// when the string is empty.
func apiErr(msg string) error {
	if msg == "" {
		return nil
	}
	return &APIError{Status: http.StatusOK, Message: msg}
}

// doRequest performs an HTTP request and returns the raw response body.
// Non-2xx statuses become *APIError.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(respBody)}
	}

	return respBody, nil
}

// get performs a GET scoped to the client's telegram id, matching how the
// browser variants append telegram_id to every read.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("telegram_id", strconv.FormatInt(c.telegramID, 10))
	return c.doRequest(ctx, http.MethodGet, path, query, nil, "")
}
