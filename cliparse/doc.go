// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - APIBaseURL: Backend API base URL (required)
  - TelegramID: Telegram user id (optional; a saved one is reused)
  - StateDir: Local state directory (default: ~/.vitech)
  - Timeout: Per-request timeout (default: 15s)
  - Verbose: Log every request

# CLI Flags

	-api      Backend API base URL
	-id       Telegram user id
	-state    Local state directory
	-timeout  Per-request timeout
	-v        Verbose request logging

# Environment Variables

Flags fall back to environment variables:

	VITECH_API_URL   → -api
	TELEGRAM_ID      → -id
	VITECH_STATE_DIR → -state
	VITECH_TIMEOUT   → -timeout

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if the API base URL is missing or a
numeric/duration value is malformed. A missing Telegram id is not an
error here: identity.Resolve falls back to the id saved in the store.

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	client := gateway.NewClient(cfg.APIBaseURL, id.TelegramID,
		gateway.WithTimeout(cfg.Timeout))
*/
package cliparse
