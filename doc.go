// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the VITECH client.

VITECH is a cadet logistics assistant: duty roster, task notes, class
schedule, a pairwise survey that weights duty objects by difficulty,
and a points rating. This program is the terminal client for the
VITECH backend API; the same controllers drive the Telegram Mini App.

# Starting the Client

The client needs the backend URL and, on first run, a Telegram id:

	VITECH_API_URL=https://api.example.org go run . -id 123456789

Or with flags:

	go run . -api https://api.example.org -id 123456789

The id, group and install id are remembered in a local SQLite store
(-state, default ~/.vitech), so later runs need no flags. A .env file
in the working directory is loaded before flags are parsed.

# Architecture

  - screen: tab navigation state machine and per-screen entry loads
  - survey: staged pairwise voting with resumable delivery
  - tasks: task note list with optimistic toggles
  - gateway: typed HTTP client for the backend API
  - transport: request logging and install-id round trippers
  - store: local SQLite state (identity, delivered votes)
  - duty, dates, course: roster and calendar formatting
  - xlsxcheck: local validation of schedule workbooks before upload
  - ui: terminal renderer and command loop

See package documentation for each component.
*/
package main
