// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package dates holds the small calendar helpers shared by the
// screens: the days-left countdown, the lenient date input parser,
// and week boundaries for the schedule view. Every function takes the
// current time as an argument so tests run on a fixed clock.
package dates
