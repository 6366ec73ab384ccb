package httpclient

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Registry holds one Client per named backend. Clients registered through it
// share the registry's default options.
type Registry struct {
	mu          sync.RWMutex
	backends    map[string]*Client
	healthPaths map[string]string
	defaultOpts []Option
}

func NewRegistry(defaultOpts ...Option) *Registry {
	return &Registry{
		mu:          sync.RWMutex{},
		backends:    make(map[string]*Client),
		healthPaths: make(map[string]string),
		defaultOpts: defaultOpts,
	}
}

// Register adds or replaces a backend. healthPath is what Ping requests; an
// empty value means the base URL root.
func (r *Registry) Register(name, baseURL, healthPath string, opts ...Option) *Client {
	allOpts := make([]Option, 0, len(r.defaultOpts)+len(opts))
	allOpts = append(allOpts, r.defaultOpts...)
	allOpts = append(allOpts, opts...)

	client := New(baseURL, allOpts...)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.backends[name] = client
	r.healthPaths[name] = healthPath

	return client
}

func (r *Registry) MustClient(name string) *Client {
	client, ok := r.Client(name)
	if !ok {
		panic(fmt.Sprintf("httpclient: backend %q not registered", name))
	}

	return client
}

func (r *Registry) Client(name string) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.backends[name]

	return client, ok
}

func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.backends[name]
	delete(r.backends, name)
	delete(r.healthPaths, name)

	return ok
}

// Names returns the registered backend names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.backends))
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.backends)
}

// PingAll probes every backend sequentially and reports the failures by name.
// A nil map entry never appears; healthy backends are simply absent.
func (r *Registry) PingAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	clients := maps.Clone(r.backends)
	paths := maps.Clone(r.healthPaths)
	r.mu.RUnlock()

	failures := make(map[string]error)

	for _, name := range slices.Sorted(maps.Keys(clients)) {
		if err := clients[name].Ping(ctx, paths[name]); err != nil {
			failures[name] = err
		}
	}

	return failures
}
