package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

// FakeRegistry is an in-process npm registry serving /{name}/latest.
//
// Fields:
//   - Server: The underlying httptest server; use URL as the registry base
//   - Versions: Package name to latest version; unknown names get 404
type FakeRegistry struct {
	Server   *httptest.Server
	Versions map[string]string

	mu       sync.Mutex
	requests []string
	count    atomic.Int64
}

// NewFakeRegistry starts a fake registry that is closed when the test ends.
//
// Parameters:
//   - t: Testing instance for cleanup registration
//   - versions: Package name to latest version
//
// Returns:
//   - *FakeRegistry: The running registry
func NewFakeRegistry(t *testing.T, versions map[string]string) *FakeRegistry {
	t.Helper()

	r := &FakeRegistry{Versions: versions}
	r.Server = httptest.NewServer(http.HandlerFunc(r.serve))
	t.Cleanup(r.Server.Close)
	return r
}

// URL returns the base URL of the fake registry.
func (r *FakeRegistry) URL() string {
	return r.Server.URL
}

// RequestCount returns how many lookups the registry has served.
func (r *FakeRegistry) RequestCount() int {
	return int(r.count.Load())
}

// Requests returns the package names looked up so far, in arrival order.
func (r *FakeRegistry) Requests() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.requests...)
}

func (r *FakeRegistry) serve(w http.ResponseWriter, req *http.Request) {
	r.count.Add(1)

	escaped := strings.TrimSuffix(strings.TrimPrefix(req.URL.EscapedPath(), "/"), "/latest")
	name, err := url.PathUnescape(escaped)
	if err != nil {
		http.Error(w, `{"error":"bad name"}`, http.StatusBadRequest)
		return
	}

	r.mu.Lock()
	r.requests = append(r.requests, name)
	r.mu.Unlock()

	version, ok := r.Versions[name]
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Not found"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"name": name, "version": version})
}
