// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package duty formats the duty roster for display: role code
// expansion, month labels, brigade grouping, and the role gate for
// schedule uploads.
package duty
