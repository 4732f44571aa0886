package services

import (
	"fmt"
	"sync"
	"time"
)

// IdempotencyTTL is how long a cached response stays replayable.
const IdempotencyTTL = 24 * time.Hour

// IdempotentResponse is the replayed result of a prior create/resume call.
type IdempotentResponse struct {
	Status int
	Body   []byte
}

type idempotencyEntry struct {
	response  IdempotentResponse
	expiresAt time.Time
}

// IdempotencyCache is a process-local TTL cache keyed by
// (operation, target_id, key). Entries expire lazily on read.
type IdempotencyCache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]idempotencyEntry
}

// NewIdempotencyCache creates a cache with the given TTL. A non-positive
// ttl falls back to the 24h default.
func NewIdempotencyCache(ttl time.Duration) *IdempotencyCache {
	if ttl <= 0 {
		ttl = IdempotencyTTL
	}
	return &IdempotencyCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]idempotencyEntry),
	}
}

func cacheKey(operation, targetID, key string) string {
	return fmt.Sprintf("%s\x00%s\x00%s", operation, targetID, key)
}

// Get returns the cached response for the key, if present and unexpired.
func (c *IdempotencyCache) Get(operation, targetID, key string) (IdempotentResponse, bool) {
	if key == "" {
		return IdempotentResponse{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	k := cacheKey(operation, targetID, key)
	entry, ok := c.entries[k]
	if !ok {
		return IdempotentResponse{}, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, k)
		return IdempotentResponse{}, false
	}
	return entry.response, true
}

// Sweep drops expired entries and returns how many were removed. Expiry
// is otherwise lazy, so long-idle caches rely on the janitor calling this.
func (c *IdempotencyCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for k, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// Put stores a response body for replay. Empty keys are ignored.
func (c *IdempotencyCache) Put(operation, targetID, key string, status int, body []byte) {
	if key == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(operation, targetID, key)] = idempotencyEntry{
		response:  IdempotentResponse{Status: status, Body: body},
		expiresAt: c.now().Add(c.ttl),
	}
}
