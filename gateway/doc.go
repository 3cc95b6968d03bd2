// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package gateway is the HTTP client for the VITECH backend API.
//
// A Client is bound to one base URL and one Telegram id at construction
// time; every request carries the id automatically, as a telegram_id
// query parameter on GETs and as a body field on writes. Endpoints are
// grouped by file:
//
//	user.go     - profile read/update, notifications, rating
//	duties.go   - duty roster by month and by date, available months
//	tasks.go    - personal task list CRUD, done toggle, reminders
//	survey.go   - survey catalog, pairwise voting, results, custom polls
//	schedule.go - class schedule read, xlsx upload, template download
//	admin.go    - user list and role changes (admin only)
//
// The backend reports failures two ways: a non-2xx status, or a 200
// response whose JSON body carries a non-empty "error" field. Both are
// normalized into *APIError so callers only check one error shape.
// Every method takes a context; the Client also applies an overall
// request timeout (15s unless overridden with WithTimeout).
package gateway
