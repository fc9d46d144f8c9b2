// Package cache provides the bounded year cache behind holiday queries.
//
// It provides a generic Cache interface with an LRU implementation, a Key
// type identifying one (exchange, year) pair, and a Loader that turns a
// cache miss into a single load even when many goroutines miss at once.
//
// Cached values are derived data. Any entry may be dropped and rebuilt, so
// there is no TTL and no invalidation protocol.
package cache
