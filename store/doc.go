// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store persists client state in a local SQLite database.
//
// Two things live here: the saved identity (Telegram id, group,
// enrollment year, install id) so the user registers once, and the set
// of survey pair votes the backend has already acknowledged, so a
// failed stage submission can be retried without double-voting.
package store
