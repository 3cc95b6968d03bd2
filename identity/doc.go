// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package identity resolves which Telegram id the client acts as.
//
// Inside Telegram the Mini App receives the id from the platform; on
// the command line the user supplies it once and the client remembers
// it in the local store, together with a random install id used to
// tag requests from this machine.
package identity
