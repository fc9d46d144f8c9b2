package cache

import "context"

// Nop is a cache that stores nothing. Every Get misses.
type Nop[K comparable, V any] struct{}

// Get always misses.
func (Nop[K, V]) Get(context.Context, K) (V, bool) {
	var zero V
	return zero, false
}

// Set discards the value.
func (Nop[K, V]) Set(context.Context, K, V) error { return nil }

// Delete is a no-op.
func (Nop[K, V]) Delete(context.Context, K) error { return nil }

// Len is always zero.
func (Nop[K, V]) Len() int { return 0 }

var _ Cache[string, int] = Nop[string, int]{}
