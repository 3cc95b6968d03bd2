// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package testutil provides shared test helpers: an in-process fake
// of the VITECH backend with per-endpoint handlers and hit counters,
// and a temp-directory state store.
package testutil
