package cache

import (
	"context"

	"golang.org/x/sync/singleflight"
)

// LoadFunc builds the value for key on a cache miss.
type LoadFunc[V any] func(ctx context.Context, key Key) (V, error)

// Hooks observe cache traffic. Nil hooks are skipped.
type Hooks struct {
	OnHit  func(ctx context.Context, key Key)
	OnMiss func(ctx context.Context, key Key)
}

// Loader wraps a cache with load-on-miss.
//
// Concurrent misses on the same key share one LoadFunc call. Errors are NOT
// cached. OnMiss fires once per LoadFunc call; callers that find the value
// cached, including ones that waited on another caller's load and then find
// it stored, fire OnHit. Callers that share an in-flight load fire neither.
type Loader[V any] struct {
	cache Cache[Key, V]
	group singleflight.Group
	hooks Hooks
}

// NewLoader creates a loader over c.
func NewLoader[V any](c Cache[Key, V], hooks Hooks) (*Loader[V], error) {
	if c == nil {
		return nil, ErrNilCache
	}
	return &Loader[V]{cache: c, hooks: hooks}, nil
}

// Get returns the cached value for key, calling load on a miss.
func (l *Loader[V]) Get(ctx context.Context, key Key, load LoadFunc[V]) (V, error) {
	var zero V

	if err := ValidateKey(key); err != nil {
		return zero, err
	}

	if v, ok := l.cache.Get(ctx, key); ok {
		l.hit(ctx, key)
		return v, nil
	}

	res, err, _ := l.group.Do(key.String(), func() (any, error) {
		// A load that finished while we waited for the group already filled it
		if v, ok := l.cache.Get(ctx, key); ok {
			l.hit(ctx, key)
			return v, nil
		}
		if l.hooks.OnMiss != nil {
			l.hooks.OnMiss(ctx, key)
		}

		v, err := load(ctx, key)
		if err != nil {
			// Don't cache errors
			return nil, err
		}
		_ = l.cache.Set(ctx, key, v)
		return v, nil
	})
	if err != nil {
		return zero, err
	}
	return res.(V), nil
}

func (l *Loader[V]) hit(ctx context.Context, key Key) {
	if l.hooks.OnHit != nil {
		l.hooks.OnHit(ctx, key)
	}
}

// Cache returns the underlying cache.
func (l *Loader[V]) Cache() Cache[Key, V] {
	return l.cache
}
