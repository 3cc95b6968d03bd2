// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package ui is the terminal front end: a screen.View that prints
// each screen as text, and a command loop that maps input lines to
// controller actions. Tab names switch screens; the remaining
// commands act on the current one.
package ui
