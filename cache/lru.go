package cache

import (
	"context"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// EvictFunc is called with an entry dropped to make room for another.
type EvictFunc[K comparable, V any] func(key K, value V)

// LRU is a fixed-capacity in-memory cache with least-recently-used eviction.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	entries  *simplelru.LRU[K, V]
	capacity int
	onEvict  EvictFunc[K, V]
}

// NewLRU creates a cache holding at most policy.Capacity entries.
// onEvict may be nil. It runs outside the cache lock, and only for capacity
// evictions, never for Delete or Purge.
func NewLRU[K comparable, V any](policy Policy, onEvict EvictFunc[K, V]) (*LRU[K, V], error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if !policy.ShouldCache() {
		return nil, ErrInvalidCapacity
	}

	entries, err := simplelru.NewLRU[K, V](policy.Capacity, nil)
	if err != nil {
		return nil, err
	}
	return &LRU[K, V]{
		entries:  entries,
		capacity: policy.Capacity,
		onEvict:  onEvict,
	}, nil
}

// Get retrieves a value and marks it most recently used.
func (c *LRU[K, V]) Get(_ context.Context, key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Get(key)
}

// Peek retrieves a value without touching its recency.
func (c *LRU[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Peek(key)
}

// Set stores a value, evicting the least recently used entry when full.
func (c *LRU[K, V]) Set(_ context.Context, key K, value V) error {
	var (
		oldKey   K
		oldValue V
		evicted  bool
	)

	c.mu.Lock()
	if !c.entries.Contains(key) && c.entries.Len() >= c.capacity {
		oldKey, oldValue, evicted = c.entries.RemoveOldest()
	}
	c.entries.Add(key, value)
	c.mu.Unlock()

	if evicted && c.onEvict != nil {
		c.onEvict(oldKey, oldValue)
	}
	return nil
}

// Delete removes a value from the cache. Idempotent - no error on miss.
func (c *LRU[K, V]) Delete(_ context.Context, key K) error {
	c.mu.Lock()
	c.entries.Remove(key)
	c.mu.Unlock()
	return nil
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// Capacity returns the maximum number of entries.
func (c *LRU[K, V]) Capacity() int {
	return c.capacity
}

// Keys returns the cached keys from least to most recently used.
func (c *LRU[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Keys()
}

// Purge removes every entry.
func (c *LRU[K, V]) Purge() {
	c.mu.Lock()
	c.entries.Purge()
	c.mu.Unlock()
}

// Ensure LRU implements Cache
var _ Cache[string, int] = (*LRU[string, int])(nil)
