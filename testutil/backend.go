package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// RecordedRequest is what the fake backend saw for one call.
type RecordedRequest struct {
	Method      string
	Path        string
	RawQuery    string
	Body        string
	ContentType string
	RequestID   string
}

type route struct {
	status      int
	body        string
	contentType string
	delay       time.Duration
}

// Backend is an in-process stand-in for the cinema REST API. Routes are keyed
// by "METHOD /path"; anything unregistered answers 404 with a FastAPI style
// detail body.
type Backend struct {
	Server *httptest.Server

	mu       sync.Mutex
	routes   map[string]route
	requests []RecordedRequest
}

func NewBackend(t *testing.T) *Backend {
	t.Helper()

	backend := &Backend{
		Server:   nil,
		mu:       sync.Mutex{},
		routes:   make(map[string]route),
		requests: nil,
	}

	backend.Server = httptest.NewServer(http.HandlerFunc(backend.serve))
	t.Cleanup(backend.Server.Close)

	return backend
}

func (b *Backend) URL() string {
	return b.Server.URL
}

// JSON registers a JSON answer.
func (b *Backend) JSON(method, path string, status int, body string) *Backend {
	return b.register(method, path, route{status: status, body: body, contentType: "application/json", delay: 0})
}

// Text registers a non-JSON answer; an empty body sends no Content-Type at all.
func (b *Backend) Text(method, path string, status int, body string) *Backend {
	contentType := ""
	if body != "" {
		contentType = "text/plain; charset=utf-8"
	}

	return b.register(method, path, route{status: status, body: body, contentType: contentType, delay: 0})
}

// Slow registers a JSON answer that is sent only after delay.
func (b *Backend) Slow(method, path string, delay time.Duration, body string) *Backend {
	return b.register(method, path, route{status: http.StatusOK, body: body, contentType: "application/json", delay: delay})
}

func (b *Backend) Requests() []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]RecordedRequest(nil), b.requests...)
}

// LastRequest returns the most recent call to method and path.
func (b *Backend) LastRequest(t *testing.T, method, path string) RecordedRequest {
	t.Helper()

	requests := b.Requests()
	for idx := len(requests) - 1; idx >= 0; idx-- {
		if requests[idx].Method == method && requests[idx].Path == path {
			return requests[idx]
		}
	}

	t.Fatalf("no %s %s request recorded", method, path)

	return RecordedRequest{}
}

func (b *Backend) Count(method, path string) int {
	count := 0

	for _, req := range b.Requests() {
		if req.Method == method && req.Path == path {
			count++
		}
	}

	return count
}

func (b *Backend) register(method, path string, r route) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.routes[strings.ToUpper(method)+" "+path] = r

	return b
}

func (b *Backend) serve(w http.ResponseWriter, req *http.Request) {
	body, _ := io.ReadAll(req.Body)

	b.mu.Lock()
	b.requests = append(b.requests, RecordedRequest{
		Method:      req.Method,
		Path:        req.URL.Path,
		RawQuery:    req.URL.RawQuery,
		Body:        string(body),
		ContentType: req.Header.Get("Content-Type"),
		RequestID:   req.Header.Get("X-Request-ID"),
	})
	r, ok := b.routes[req.Method+" "+req.URL.Path]
	b.mu.Unlock()

	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Not Found"}`))

		return
	}

	if r.delay > 0 {
		select {
		case <-time.After(r.delay):
		case <-req.Context().Done():
			return
		}
	}

	if r.contentType != "" {
		w.Header().Set("Content-Type", r.contentType)
	}

	w.WriteHeader(r.status)

	if r.body != "" {
		_, _ = w.Write([]byte(r.body))
	}
}
