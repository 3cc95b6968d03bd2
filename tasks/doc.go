// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package tasks manages the personal task list behind the notes
// screen. A Manager caches the last loaded list, validates input
// before touching the network, and applies done-toggles optimistically
// with rollback on failure. Reminder input uses the "DD HH:MM" shape;
// a day already past rolls into the next month.
package tasks
