// Package health reports whether a holiday store can serve its window.
//
// A Checker reports a Status: Healthy, Degraded or Unhealthy. The package
// ships two checkers for a tradingdays.Store:
//
//   - WindowChecker builds every exchange for every year of the window and
//     is Unhealthy when any build fails.
//   - CacheChecker inspects the cache counters and is Degraded once the
//     cache has evicted, meaning the capacity is below the working set.
//
// # Aggregating Checks
//
//	agg := health.NewAggregator()
//	agg.Register(health.NewWindowChecker(store))
//	agg.Register(health.NewCacheChecker(store))
//
//	report := agg.CheckAll(ctx)
//	if report.Status != health.StatusHealthy {
//		log.Printf("holiday store %s", report.Status)
//	}
package health
