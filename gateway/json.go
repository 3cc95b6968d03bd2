// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vitechbot/vitech-client/models"
	"github.com/vitechbot/vitech-client/transport"
)

// errorMessage extracts the backend's error envelope from a failed
// response body, falling back to the raw body text.
func errorMessage(body []byte) string {
	var envelope models.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Detail != "" {
			return envelope.Detail
		}
	}
	return string(body)
}

// decode unmarshals a response body, wrapping failures with context.
func decode(body []byte, v interface{}) error {
	if err := transport.DecodeJSON(bytes.NewReader(body), v); err != nil {
		return err
	}
	return nil
}

// postJSON marshals a request body and POSTs it to the given path.
func (c *Client) postJSON(ctx context.Context, path string, reqBody interface{}) ([]byte, error) {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	return c.doRequest(ctx, http.MethodPost, path, nil, bytes.NewReader(body), "application/json")
}

// patchJSON marshals a request body and PATCHes it to the given path.
func (c *Client) patchJSON(ctx context.Context, path string, reqBody interface{}) ([]byte, error) {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	return c.doRequest(ctx, http.MethodPatch, path, nil, bytes.NewReader(body), "application/json")
}
