// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package transport

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// InstallIDHeader carries the per-install client UUID on every request so
// the backend can tell installs apart without a login.
const InstallIDHeader = "X-Client-Install-ID"

// Logging wraps an http.RoundTripper with request logging.
type Logging struct {
	Next http.RoundTripper
}

func (l Logging) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	slog.Info("request started",
		"method", req.Method,
		"path", req.URL.Path,
	)

	next := l.Next
	if next == nil {
		next = http.DefaultTransport
	}

	resp, err := next.RoundTrip(req)

	duration := time.Since(start)
	if err != nil {
		slog.Error("request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"duration_ms", duration.Milliseconds(),
			"error", err,
		)
		return nil, err
	}

	slog.Info("request completed",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration_ms", duration.Milliseconds(),
	)
	return resp, nil
}

// InstallID wraps an http.RoundTripper and stamps the install-id header
// on every outgoing request.
type InstallID struct {
	ID   string
	Next http.RoundTripper
}

func (t InstallID) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.Next
	if next == nil {
		next = http.DefaultTransport
	}
	// Clone before mutating; RoundTrippers must not modify the caller's
	// request.
	r := req.Clone(req.Context())
	if t.ID != "" {
		r.Header.Set(InstallIDHeader, t.ID)
	}
	return next.RoundTrip(r)
}

// DecodeJSON parses a response body into the given struct.
func DecodeJSON(body io.Reader, v interface{}) error {
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
