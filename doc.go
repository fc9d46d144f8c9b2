// Package tradingdays answers trading-holiday queries for a fixed set of
// stock exchanges over a bounded window of years.
//
// A Store derives each (exchange, year) holiday set on first use from the
// declarative rule tables in package exchange, caches it in a bounded LRU
// and serves point and year queries from the cache.
//
// # Quick Start
//
//	store, err := tradingdays.New(tradingdays.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	nyse, err := store.Exchange("NYSE")
//	if err != nil {
//		return err
//	}
//	closed, err := nyse.IsDateHoliday(ctx, rules.NewDate(2024, time.July, 4))
//
// # Caching
//
// One cache is shared by every exchange and keyed by (exchange, year). The
// default capacity is sized to every configured calendar across the window,
// so steady-state usage never evicts. Concurrent misses on one key share a
// single build. Errors are never cached.
//
// # Observability
//
// Builds and cache traffic are reported through an observe.Middleware.
// Use WithObserver or WithMiddleware to attach one; the default records
// nothing.
//
// # Errors
//
// Queries fail with ErrUnknownExchange, ErrYearOutOfRange or
// ErrUnsupportedYear, checked with errors.Is. No partial results are
// returned.
package tradingdays
