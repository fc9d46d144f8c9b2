package cache

import (
	"context"
	"errors"
)

// Sentinel errors for cache operations.
var (
	ErrNilCache        = errors.New("cache: cache is nil")
	ErrInvalidKey      = errors.New("cache: key is invalid")
	ErrKeyTooLong      = errors.New("cache: key exceeds max length")
	ErrInvalidCapacity = errors.New("cache: capacity must not be negative")
)

// Cache is the interface for caching built year sets.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Recency: Get counts as a use for eviction ordering.
// - Errors: Get never errors; it returns (zero, false) on miss.
type Cache[K comparable, V any] interface {
	// Get retrieves a cached value. Returns (zero, false) on miss.
	Get(ctx context.Context, key K) (V, bool)

	// Set stores a value, evicting the least recently used entry when full.
	Set(ctx context.Context, key K, value V) error

	// Delete removes a cached value. Idempotent - no error on miss.
	Delete(ctx context.Context, key K) error

	// Len returns the number of cached entries.
	Len() int
}
