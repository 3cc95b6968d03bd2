// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package course derives a cadet's course number from their
// enrollment year. The academic year rolls over on August 15; cohorts
// past their fourth course are graduates.
package course
