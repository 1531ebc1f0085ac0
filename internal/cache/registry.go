// Package cache implements the refetch-based cache-consistency protocol:
// views subscribe to keyed query results, mutations declare the keys they
// affect, and on server acknowledgment the registry asks every active
// subscriber of a declared key to re-issue its own fetch. Failed mutations
// never touch the cache, and inactive keys stay stale until their next
// subscription (lazy consistency).
package cache

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/orgtrack/orgtrack_client/internal/platform/applog"
)

// Key identifies one cached query result: resource kind plus scope parts,
// e.g. "transactions/42" or "organization/42/members".
type Key string

// NewKey builds a key from a resource kind and its scope parts.
func NewKey(kind string, parts ...string) Key {
	if len(parts) == 0 {
		return Key(kind)
	}
	return Key(kind + "/" + strings.Join(parts, "/"))
}

func GoalsKey() Key                   { return NewKey("goals") }
func GoalKey(goalID int64) Key        { return NewKey("goal", formatID(goalID)) }
func MeKey() Key                      { return NewKey("me") }
func TransactionsKey(orgID int64) Key { return NewKey("transactions", formatID(orgID)) }
func DashboardKey(orgID int64) Key    { return NewKey("dashboard", formatID(orgID)) }
func OrganizationKey(orgID int64) Key { return NewKey("organization", formatID(orgID)) }
func MembersKey(orgID int64) Key      { return NewKey("organization", formatID(orgID), "members") }

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// FetchFunc re-issues a subscriber's own fetch and stores the fresh result
// on the subscriber's side. It runs only after a successful mutation names
// the subscriber's key.
type FetchFunc func(ctx context.Context) error

// Registry is the session-wide invalidation hub. Any component may trigger a
// refresh of a key; none may mutate cached values outside of a successful
// refetch.
type Registry struct {
	mu   sync.Mutex
	subs map[Key]map[int64]*Subscription
	next int64
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{subs: make(map[Key]map[int64]*Subscription)}
}

// Subscription marks a key as active (backing a mounted view) until Close.
type Subscription struct {
	registry *Registry
	key      Key
	id       int64
	fetch    FetchFunc
}

// Key returns the cache key this subscription backs.
func (s *Subscription) Key() Key {
	return s.key
}

// Close deactivates the subscription. The key's cached result is then
// refreshed lazily on the next subscribe instead of eagerly on invalidation.
func (s *Subscription) Close() {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()
	if set, ok := s.registry.subs[s.key]; ok {
		delete(set, s.id)
		if len(set) == 0 {
			delete(s.registry.subs, s.key)
		}
	}
}

// Subscribe registers fetch as the refetch handler for key and marks the key
// active.
func (r *Registry) Subscribe(key Key, fetch FetchFunc) *Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	sub := &Subscription{registry: r, key: key, id: r.next, fetch: fetch}
	set, ok := r.subs[key]
	if !ok {
		set = make(map[int64]*Subscription)
		r.subs[key] = set
	}
	set[sub.id] = sub
	return sub
}

// Active reports whether any mounted view currently backs key.
func (r *Registry) Active(key Key) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs[key]) > 0
}

// Invalidate refetches exactly the declared keys that are currently active.
// It must be called only after the mutation's server acknowledgment; callers
// that failed must not call it at all. Refetch failures are logged and do
// not fail the mutation: the subscriber simply keeps its previous value and
// stays stale until the next trigger.
func (r *Registry) Invalidate(ctx context.Context, keys ...Key) {
	r.mu.Lock()
	var pending []*Subscription
	for _, key := range keys {
		for _, sub := range r.subs[key] {
			pending = append(pending, sub)
		}
	}
	r.mu.Unlock()

	logger := applog.FromContext(ctx)
	for _, sub := range pending {
		if err := sub.fetch(ctx); err != nil {
			logger.Warn("cache refetch failed",
				slog.String("key", string(sub.key)),
				slog.String("error", err.Error()))
		}
	}
}
