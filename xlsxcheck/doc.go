// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package xlsxcheck validates a duty-schedule workbook locally before
// it is uploaded. The sheet follows the unit's fixed grid: group in
// column E, cadet names in F..H, day numbers across row 5 and role
// codes beneath them. Validate reports every bad cell by address so
// the sergeant can fix the sheet instead of guessing.
package xlsxcheck
