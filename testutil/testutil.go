// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/vitechbot/vitech-client/store"
)

// Backend is an in-process stand-in for the VITECH API. Handlers are
// registered per method+path; every hit is counted so tests can
// assert how often an endpoint was reached.
type Backend struct {
	t      *testing.T
	Server *httptest.Server

	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	hits     map[string]int
}

// NewBackend starts a fake backend. It is shut down with the test.
func NewBackend(t *testing.T) *Backend {
	t.Helper()

	b := &Backend{
		t:        t,
		handlers: make(map[string]http.HandlerFunc),
		hits:     make(map[string]int),
	}
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.Server.Close)
	return b
}

// URL returns the backend's base URL for gateway.NewClient.
func (b *Backend) URL() string { return b.Server.URL }

func key(method, path string) string { return method + " " + path }

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	k := key(r.Method, r.URL.Path)

	b.mu.Lock()
	b.hits[k]++
	h, ok := b.handlers[k]
	b.mu.Unlock()

	if !ok {
		b.t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		http.NotFound(w, r)
		return
	}
	h(w, r)
}

// Handle registers a handler for method and path.
func (b *Backend) Handle(method, path string, h http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[key(method, path)] = h
}

// HandleJSON registers a handler that replies 200 with v as JSON.
func (b *Backend) HandleJSON(method, path string, v interface{}) {
	b.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(b.t, w, http.StatusOK, v)
	})
}

// HandleError registers a handler that replies with the backend's
// body-level error envelope and the given status.
func (b *Backend) HandleError(method, path string, status int, message string) {
	b.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(b.t, w, status, map[string]string{"error": message})
	})
}

// Hits reports how many times an endpoint was called.
func (b *Backend) Hits(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[key(method, path)]
}

// WriteJSON encodes v into w with the given status.
func WriteJSON(t *testing.T, w http.ResponseWriter, status int, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

// DecodeBody decodes a request body into v, failing the test on
// malformed JSON.
func DecodeBody(t *testing.T, r *http.Request, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		t.Fatalf("decode request body: %v", err)
	}
}

// TempStore opens a state store in a per-test temp directory.
func TempStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open temp store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}
