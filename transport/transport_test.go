package transport

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestInstallIDHeaderSet(t *testing.T) {
	var seen string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(InstallIDHeader)
	}))
	defer server.Close()

	client := &http.Client{Transport: InstallID{ID: "abc-123"}}
	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	resp.Body.Close()

	if seen != "abc-123" {
		t.Errorf("install id header = %q, want abc-123", seen)
	}
}

func TestInstallIDDoesNotMutateOriginal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatal(err)
	}

	client := &http.Client{Transport: InstallID{ID: "abc-123"}}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	resp.Body.Close()

	if got := req.Header.Get(InstallIDHeader); got != "" {
		t.Errorf("original request mutated: header = %q", got)
	}
}

func TestInstallIDEmptySkipsHeader(t *testing.T) {
	var present bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header[InstallIDHeader]
	}))
	defer server.Close()

	client := &http.Client{Transport: InstallID{}}
	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if present {
		t.Error("empty install id still sent a header")
	}
}

func TestLoggingPassesThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	client := &http.Client{Transport: Logging{}}
	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusTeapot {
		t.Errorf("status = %d, want 418", resp.StatusCode)
	}
}

func TestChainedTransports(t *testing.T) {
	var seen string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(InstallIDHeader)
	}))
	defer server.Close()

	client := &http.Client{Transport: Logging{Next: InstallID{ID: "chained"}}}
	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if seen != "chained" {
		t.Errorf("install id through chain = %q, want chained", seen)
	}
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	if err := DecodeJSON(strings.NewReader(`{"name":"ok"}`), &v); err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}
	if v.Name != "ok" {
		t.Errorf("Name = %q", v.Name)
	}

	if err := DecodeJSON(strings.NewReader("not json"), &v); err == nil {
		t.Error("DecodeJSON() accepted malformed input")
	}
}
