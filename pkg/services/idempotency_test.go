package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyCache_Replay(t *testing.T) {
	cache := NewIdempotencyCache(time.Hour)

	body := []byte(`{"run_id":"r1","status":"queued"}`)
	cache.Put("run_create", "session-1", "key-1", 201, body)

	resp, ok := cache.Get("run_create", "session-1", "key-1")
	require.True(t, ok)
	assert.Equal(t, 201, resp.Status)
	assert.Equal(t, body, resp.Body)

	// The key is scoped by operation and target.
	_, ok = cache.Get("run_resume", "session-1", "key-1")
	assert.False(t, ok)
	_, ok = cache.Get("run_create", "session-2", "key-1")
	assert.False(t, ok)
}

func TestIdempotencyCache_EmptyKeyIgnored(t *testing.T) {
	cache := NewIdempotencyCache(time.Hour)
	cache.Put("run_create", "session-1", "", 201, []byte("x"))
	_, ok := cache.Get("run_create", "session-1", "")
	assert.False(t, ok)
}

func TestIdempotencyCache_Expiry(t *testing.T) {
	cache := NewIdempotencyCache(time.Minute)
	current := time.Now()
	cache.now = func() time.Time { return current }

	cache.Put("run_create", "s", "k", 201, []byte("x"))

	current = current.Add(30 * time.Second)
	_, ok := cache.Get("run_create", "s", "k")
	assert.True(t, ok)

	current = current.Add(31 * time.Second)
	_, ok = cache.Get("run_create", "s", "k")
	assert.False(t, ok)
}

func TestIdempotencyCache_Sweep(t *testing.T) {
	cache := NewIdempotencyCache(time.Minute)
	current := time.Now()
	cache.now = func() time.Time { return current }

	cache.Put("run_create", "s", "k1", 201, []byte("a"))
	cache.Put("run_create", "s", "k2", 201, []byte("b"))

	current = current.Add(2 * time.Minute)
	cache.Put("run_create", "s", "k3", 201, []byte("c"))

	assert.Equal(t, 2, cache.Sweep())
	assert.Zero(t, cache.Sweep())

	_, ok := cache.Get("run_create", "s", "k3")
	assert.True(t, ok)
}

func TestIdempotencyCache_DefaultTTL(t *testing.T) {
	cache := NewIdempotencyCache(0)
	assert.Equal(t, IdempotencyTTL, cache.ttl)
}
