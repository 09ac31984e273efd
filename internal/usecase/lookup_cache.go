package usecase

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// lookupCache is an explicit read-through cache for boundary lookups
// (catalog, clients, sellers). It replaces the ambient shared lists the
// wizard would otherwise depend on: callers always go through Get, a
// singleflight group suppresses duplicate fetches while one is
// outstanding, and a failed refresh leaves the previous snapshot intact.
type lookupCache[T any] struct {
	mu     sync.Mutex
	loaded bool
	items  []T

	group singleflight.Group
	fetch func(ctx context.Context) ([]T, error)
}

func newLookupCache[T any](fetch func(ctx context.Context) ([]T, error)) *lookupCache[T] {
	return &lookupCache[T]{fetch: fetch}
}

// Get returns the cached snapshot, fetching it on first use. Concurrent
// callers during a fetch share the single in-flight request.
func (c *lookupCache[T]) Get(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	if c.loaded {
		items := c.items
		c.mu.Unlock()
		return items, nil
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do("fetch", func() (any, error) {
		items, err := c.fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.items = items
		c.loaded = true
		c.mu.Unlock()
		return items, nil
	})
	if err != nil {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.loaded {
			// A stale snapshot beats a destructive clear-on-error.
			return c.items, nil
		}
		return nil, err
	}
	return v.([]T), nil
}

// Invalidate drops the snapshot; the next Get fetches again.
func (c *lookupCache[T]) Invalidate() {
	c.mu.Lock()
	c.loaded = false
	c.items = nil
	c.mu.Unlock()
}
