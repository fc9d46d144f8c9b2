package cache

import "fmt"

// AutoCapacity leaves the capacity to the cache owner, which resolves it to
// the number of keys it can produce so nothing is ever evicted.
const AutoCapacity = -1

// Policy configures caching behavior.
type Policy struct {
	// Capacity is the maximum number of cached entries.
	// If zero, caching is disabled.
	Capacity int
}

// DefaultPolicy returns a policy sized by its owner.
// Capacity: AutoCapacity
func DefaultPolicy() Policy {
	return Policy{Capacity: AutoCapacity}
}

// NoCachePolicy returns a policy that disables caching entirely.
func NoCachePolicy() Policy {
	return Policy{Capacity: 0}
}

// Resolve returns p with AutoCapacity replaced by keys.
func (p Policy) Resolve(keys int) Policy {
	if p.Capacity == AutoCapacity {
		p.Capacity = max(keys, 0)
	}
	return p
}

// ShouldCache returns true if caching is enabled by this policy.
// An unresolved AutoCapacity does not cache.
func (p Policy) ShouldCache() bool {
	return p.Capacity > 0
}

// Validate checks the policy.
func (p Policy) Validate() error {
	if p.Capacity < AutoCapacity {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, p.Capacity)
	}
	return nil
}
