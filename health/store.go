package health

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonwraymond/tradingdays"
	"github.com/jonwraymond/tradingdays/calendar"
	"github.com/jonwraymond/tradingdays/exchange"
)

// Checker names.
const (
	WindowCheckName = "holidays.window"
	CacheCheckName  = "holidays.cache"
)

// Store is the part of a tradingdays.Store the checkers use.
type Store interface {
	Window() calendar.Window
	Calendars() []*exchange.Calendar
	HolidaysForYear(ctx context.Context, id string, year int) ([]tradingdays.Holiday, error)
	Stats() tradingdays.Stats
}

var _ Store = (*tradingdays.Store)(nil)

// WindowChecker verifies that every exchange builds for every window year.
type WindowChecker struct {
	store Store
}

// NewWindowChecker creates a WindowChecker for store.
func NewWindowChecker(store Store) *WindowChecker {
	return &WindowChecker{store: store}
}

// Name returns WindowCheckName.
func (c *WindowChecker) Name() string { return WindowCheckName }

// Check builds (or reads from cache) each (exchange, year) set.
func (c *WindowChecker) Check(ctx context.Context) Result {
	window := c.store.Window()
	cals := c.store.Calendars()

	var (
		errs     []error
		holidays int
	)
	for _, cal := range cals {
		for _, year := range window.Years() {
			if err := ctx.Err(); err != nil {
				return Unhealthy("window check interrupted", err)
			}
			set, err := c.store.HolidaysForYear(ctx, cal.ID().String(), year)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			holidays += len(set)
		}
	}

	details := map[string]any{
		"exchanges": len(cals),
		"window":    window.String(),
		"holidays":  holidays,
		"failures":  len(errs),
	}
	if len(errs) > 0 {
		err := fmt.Errorf("%w: %w", ErrCheckFailed, errors.Join(errs...))
		return Unhealthy(fmt.Sprintf("%d exchange years failed to build", len(errs)), err).WithDetails(details)
	}
	return Healthy(fmt.Sprintf("%d exchanges build across %s", len(cals), window)).WithDetails(details)
}

// CacheChecker reports Degraded once the store's cache has evicted.
type CacheChecker struct {
	store Store
}

// NewCacheChecker creates a CacheChecker for store.
func NewCacheChecker(store Store) *CacheChecker {
	return &CacheChecker{store: store}
}

// Name returns CacheCheckName.
func (c *CacheChecker) Name() string { return CacheCheckName }

// Check inspects the cache counters.
func (c *CacheChecker) Check(_ context.Context) Result {
	stats := c.store.Stats()

	var ratio float64
	if total := stats.Hits + stats.Misses; total > 0 {
		ratio = float64(stats.Hits) / float64(total)
	}
	details := map[string]any{
		"builds":    stats.Builds,
		"hits":      stats.Hits,
		"misses":    stats.Misses,
		"evictions": stats.Evictions,
		"entries":   stats.Entries,
		"hit_ratio": ratio,
	}

	if stats.Evictions > 0 {
		return Degraded(fmt.Sprintf("cache evicted %d entries; capacity is below the working set", stats.Evictions)).
			WithDetails(details)
	}
	return Healthy(fmt.Sprintf("%d entries cached", stats.Entries)).WithDetails(details)
}
