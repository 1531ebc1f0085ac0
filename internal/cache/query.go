package cache

import (
	"context"
	"sync"
)

// Query binds one fetchable result to a registry key: it holds the last
// successfully fetched value, fetches lazily on first read, and refetches
// whenever a mutation invalidates its key while it is subscribed.
type Query[T any] struct {
	mu     sync.RWMutex
	fetch  func(ctx context.Context) (T, error)
	value  T
	loaded bool
	sub    *Subscription
}

// NewQuery subscribes a query for key on registry. Close it when the backing
// view unmounts.
func NewQuery[T any](registry *Registry, key Key, fetch func(ctx context.Context) (T, error)) *Query[T] {
	q := &Query[T]{fetch: fetch}
	q.sub = registry.Subscribe(key, q.refresh)
	return q
}

// Get returns the cached value, fetching it first if the query has never
// loaded. A fetch failure leaves any previous value in place.
func (q *Query[T]) Get(ctx context.Context) (T, error) {
	q.mu.RLock()
	if q.loaded {
		value := q.value
		q.mu.RUnlock()
		return value, nil
	}
	q.mu.RUnlock()

	if err := q.refresh(ctx); err != nil {
		var zero T
		return zero, err
	}
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.value, nil
}

// Value returns the cached value without fetching; ok is false before the
// first successful load.
func (q *Query[T]) Value() (T, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.value, q.loaded
}

// Close unsubscribes the query; its key is no longer eagerly refreshed.
func (q *Query[T]) Close() {
	q.sub.Close()
}

func (q *Query[T]) refresh(ctx context.Context) error {
	value, err := q.fetch(ctx)
	if err != nil {
		return err
	}
	q.mu.Lock()
	q.value = value
	q.loaded = true
	q.mu.Unlock()
	return nil
}
