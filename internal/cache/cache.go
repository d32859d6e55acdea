// Package cache provides a generic LRU cache with TTL expiration
package cache

import (
	"time"

	"github.com/bluele/gcache"
)

// Cache is a typed, thread-safe view over a gcache LRU store
type Cache[T any] struct {
	store gcache.Cache
	ttl   time.Duration
}

// New creates a cache holding at most size entries, each expiring after ttl
func New[T any](size int, ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		store: gcache.New(size).
			LRU().
			Expiration(ttl).
			Build(),
		ttl: ttl,
	}
}

// Get retrieves a value, returning (value, true) if found and not expired
func (c *Cache[T]) Get(key string) (T, bool) {
	var zero T

	cached, err := c.store.Get(key)
	if err != nil {
		return zero, false
	}

	value, ok := cached.(T)
	if !ok {
		return zero, false
	}
	return value, true
}

// Set stores a value with the cache's TTL
func (c *Cache[T]) Set(key string, value T) {
	// gcache only fails Set for a nil serializer, which we never configure
	_ = c.store.Set(key, value)
}

// Delete removes a key from the cache
func (c *Cache[T]) Delete(key string) {
	c.store.Remove(key)
}

// Clear removes all items from the cache
func (c *Cache[T]) Clear() {
	c.store.Purge()
}

// Size returns the number of unexpired items
func (c *Cache[T]) Size() int {
	return c.store.Len(true)
}

// TTL returns the per-entry expiration
func (c *Cache[T]) TTL() time.Duration {
	return c.ttl
}
