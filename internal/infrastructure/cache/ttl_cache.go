package cache

import (
	"sync"
	"time"
)

// Cache is the minimal TTL cache used by hot-path lookups.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V, ttl time.Duration)
	Delete(key K)
}

type cacheEntry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLCache stores values in memory with per-entry TTLs. A ttl <= 0 never
// expires.
type TTLCache[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]cacheEntry[V]
	now   func() time.Time
}

func NewTTLCache[K comparable, V any]() *TTLCache[K, V] {
	return &TTLCache[K, V]{items: make(map[K]cacheEntry[V]), now: time.Now}
}

// WithClock swaps the time source; tests only.
func (c *TTLCache[K, V]) WithClock(now func() time.Time) *TTLCache[K, V] {
	c.now = now
	return c
}

func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	var zero V
	if c == nil {
		return zero, false
	}
	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return zero, false
	}
	if c.expired(entry) {
		c.Delete(key)
		return zero, false
	}
	return entry.value, true
}

func (c *TTLCache[K, V]) Set(key K, value V, ttl time.Duration) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.items[key] = cacheEntry[V]{value: value, expiresAt: c.deadline(ttl)}
	c.mu.Unlock()
}

// Update runs fn under the write lock with the current value (if live).
// fn returns the new value and whether to keep it; keep=false deletes the key.
// The entry TTL is renewed on every kept write.
func (c *TTLCache[K, V]) Update(key K, ttl time.Duration, fn func(current V, found bool) (next V, keep bool)) V {
	var zero V
	if c == nil {
		return zero
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, found := c.items[key]
	if found && c.expired(entry) {
		entry, found = cacheEntry[V]{}, false
	}
	next, keep := fn(entry.value, found)
	if !keep {
		delete(c.items, key)
		return zero
	}
	c.items[key] = cacheEntry[V]{value: next, expiresAt: c.deadline(ttl)}
	return next
}

func (c *TTLCache[K, V]) Delete(key K) {
	if c == nil {
		return
	}
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// Len counts entries including expired ones not yet evicted.
func (c *TTLCache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Sweep evicts every expired entry.
func (c *TTLCache[K, V]) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for k, e := range c.items {
		if c.expired(e) {
			delete(c.items, k)
			n++
		}
	}
	return n
}

func (c *TTLCache[K, V]) expired(e cacheEntry[V]) bool {
	return !e.expiresAt.IsZero() && c.now().After(e.expiresAt)
}

func (c *TTLCache[K, V]) deadline(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return c.now().Add(ttl)
}
