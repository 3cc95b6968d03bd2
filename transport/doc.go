// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package transport provides http.RoundTripper middleware for the gateway's
HTTP client.

# Logging

Logging logs every outgoing request with method, path, status and
duration using log/slog:

	client := &http.Client{
		Transport: transport.Logging{Next: http.DefaultTransport},
	}

# Install ID

InstallID stamps the X-Client-Install-ID header on every request:

	transport.InstallID{ID: id, Next: transport.Logging{}}

The id is a stable per-install UUID created by the identity package. It
lets the backend distinguish installs without any login protocol.

# JSON

DecodeJSON decodes a response body into a struct and wraps decode
failures with context.
*/
package transport
