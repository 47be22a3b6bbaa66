package posts

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// ListCache memoizes list-posts results per user for a fixed window. The key
// is the authenticated user's id — never anything request-derived — so two
// users can never share a slot. Entries are valid for ttl from first
// population; there is no active invalidation on post creation or deletion,
// so a user's list view may be stale by up to the TTL after a mutation.
//
// The cache is the service's only shared mutable state. Reads and writes are
// mutex-guarded, and a singleflight group guarantees at most one
// recomputation in flight per key.
type ListCache struct {
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu      sync.RWMutex
	entries map[int]listEntry
}

type listEntry struct {
	posts    []Post
	storedAt time.Time
}

// NewListCache creates a cache with the given entry validity window. A nil
// now falls back to time.Now; tests inject a fake clock here.
func NewListCache(ttl time.Duration, now func() time.Time) *ListCache {
	if now == nil {
		now = time.Now
	}
	return &ListCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[int]listEntry),
	}
}

// Get returns the cached list for userID when the entry is inside its
// window, otherwise recomputes it via fetch and repopulates the slot.
// Concurrent misses for the same user share a single fetch.
func (c *ListCache) Get(ctx context.Context, userID int, fetch func(context.Context) ([]Post, error)) ([]Post, error) {
	if posts, ok := c.lookup(userID); ok {
		return posts, nil
	}

	v, err, _ := c.group.Do(strconv.Itoa(userID), func() (interface{}, error) {
		// Another caller may have repopulated the slot while this one
		// waited on the group.
		if posts, ok := c.lookup(userID); ok {
			return posts, nil
		}
		posts, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[userID] = listEntry{posts: posts, storedAt: c.now()}
		c.mu.Unlock()
		return posts, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Post), nil
}

func (c *ListCache) lookup(userID int) ([]Post, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[userID]
	if !ok || c.now().Sub(entry.storedAt) >= c.ttl {
		return nil, false
	}
	return entry.posts, true
}

// Clear drops every entry. It exists for tests and administrative resets,
// not for request-path invalidation.
func (c *ListCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[int]listEntry)
	c.mu.Unlock()
}
