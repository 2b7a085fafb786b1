// File: cache.go
// Title: Bounded Shared Cache
// Description: Thread-safe generic map with a size limit that is cleared
//              wholesale on overflow, used for compiled formatters and
//              resolved zones.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package cache provides the bounded map shared by the formatter and zone
// caches. The lock is held only around map access, so a slow constructor
// never blocks lookups of other keys.
package cache

import "sync"

// Cache is a thread-safe map with an optional size limit
type Cache[K comparable, V any] struct {
	mu    sync.Mutex
	items map[K]V
	limit int

	// Metrics
	hits   int64
	misses int64
	resets int64
}

// New creates a cache holding at most limit entries. A limit of zero or less
// means unbounded. When an insert would exceed the limit the whole map is
// cleared first.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		items: make(map[K]V),
		limit: limit,
	}
}

// Get retrieves a value from the cache
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return v, ok
}

// Set stores a value, replacing any previous entry for key
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(key, value)
}

// setLocked must be called with the lock held
func (c *Cache[K, V]) setLocked(key K, value V) {
	if _, exists := c.items[key]; !exists && c.limit > 0 && len(c.items) >= c.limit {
		c.clearLocked()
	}
	c.items[key] = value
}

// GetOrSet returns the cached value for key, or computes it with fn and
// stores it. fn runs without the lock; when two callers race on the same key
// both compute, and the last one to store wins.
func (c *Cache[K, V]) GetOrSet(key K, fn func() (V, error)) (V, error) {
	if val, ok := c.Get(key); ok {
		return val, nil
	}

	val, err := fn()
	if err != nil {
		var zero V
		return zero, err
	}

	c.Set(key, val)
	return val, nil
}

// Delete removes a value from the cache
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Clear removes all items from the cache and counts a reset
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearLocked()
}

func (c *Cache[K, V]) clearLocked() {
	c.items = make(map[K]V)
	c.resets++
}

// SetLimit changes the size limit. A cache already over the new limit is
// cleared.
func (c *Cache[K, V]) SetLimit(limit int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.limit = limit
	if limit > 0 && len(c.items) > limit {
		c.clearLocked()
	}
}

// Limit returns the size limit
func (c *Cache[K, V]) Limit() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.limit
}

// Size returns the number of items in the cache
func (c *Cache[K, V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stats holds cache statistics
type Stats struct {
	Hits    int64
	Misses  int64
	Resets  int64
	HitRate float64
}

// Stats returns cache statistics
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := Stats{Hits: c.hits, Misses: c.misses, Resets: c.resets}
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRate = float64(s.Hits) / float64(total) * 100
	}
	return s
}
