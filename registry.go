package storekit

import (
	"context"
	"sync"
	"time"

	"github.com/keelworks/storekit/errors"
)

// pingTimeout bounds a collective health check.
const pingTimeout = 5 * time.Second

// Registry manages multiple named stores and their health. It is safe for
// concurrent use.
type Registry struct {
	mu     sync.RWMutex
	stores map[string]Store
}

// NewRegistry creates a new store registry.
func NewRegistry() *Registry {
	return &Registry{
		stores: make(map[string]Store),
	}
}

// Register registers a store under the given name.
func (r *Registry) Register(name string, store Store) error {
	if name == "" {
		return errors.New(errors.CodeInvalidArgument, "store name is required")
	}
	if store == nil {
		return errors.New(errors.CodeInvalidArgument, "store cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.stores[name]; exists {
		return errors.Newf(errors.CodeInvalidArgument, "store %q already registered", name)
	}

	r.stores[name] = store
	return nil
}

// Unregister removes a store from the registry.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.stores[name]; !exists {
		return errors.Newf(errors.CodeInvalidArgument, "store %q not found", name)
	}

	delete(r.stores, name)
	return nil
}

// Ping performs health checks on all registered stores under a bounded
// timeout and reports every failure.
func (r *Registry) Ping(ctx context.Context) error {
	r.mu.RLock()
	stores := make(map[string]Store, len(r.stores))
	for name, store := range r.stores {
		stores[name] = store
	}
	r.mu.RUnlock()

	if len(stores) == 0 {
		return nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	var errs []error
	for name, store := range stores {
		if err := store.Ping(pingCtx); err != nil {
			errs = append(errs, errors.Wrapf(errors.CodeIO, "registry.ping", err, "store %q", name))
		}
	}

	return errors.Join(errs...)
}

// Close closes all registered stores and reports every failure.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for name, store := range r.stores {
		if err := store.Close(); err != nil {
			errs = append(errs, errors.Wrapf(errors.CodeIO, "registry.close", err, "store %q", name))
		}
	}

	return errors.Join(errs...)
}

// List returns the names of all registered stores.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.stores))
	for name := range r.stores {
		names = append(names, name)
	}
	return names
}

// Get returns a registered store by name.
func (r *Registry) Get(name string) (Store, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	store, exists := r.stores[name]
	return store, exists
}
