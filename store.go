package tradingdays

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/jonwraymond/tradingdays/cache"
	"github.com/jonwraymond/tradingdays/calendar"
	"github.com/jonwraymond/tradingdays/exchange"
	"github.com/jonwraymond/tradingdays/observe"
	"github.com/jonwraymond/tradingdays/rules"
)

// Holiday is one observed non-trading date and its label.
type Holiday = calendar.Holiday

// Option configures a Store.
type Option func(*options)

type options struct {
	calendars  []*exchange.Calendar
	middleware *observe.Middleware
	observer   observe.Observer
}

// WithCalendars replaces the built-in exchanges with cals.
func WithCalendars(cals ...*exchange.Calendar) Option {
	return func(o *options) {
		o.calendars = slices.Clone(cals)
	}
}

// WithMiddleware reports builds and cache traffic through mw.
func WithMiddleware(mw *observe.Middleware) Option {
	return func(o *options) {
		o.middleware = mw
	}
}

// WithObserver reports builds and cache traffic through obs.
// It takes precedence over WithMiddleware.
func WithObserver(obs observe.Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// Stats is a snapshot of store activity.
type Stats struct {
	Builds    int64 // holiday sets built
	Hits      int64 // year lookups served from the cache
	Misses    int64 // year lookups that started a build
	Evictions int64 // sets dropped to make room
	Entries   int   // sets currently cached
}

// Store serves holiday queries for a set of exchanges.
//
// Contract:
//   - Concurrency: safe for concurrent use. Concurrent misses on the same
//     (exchange, year) share one build and count as one miss.
//   - Transparency: cached and freshly built results are identical.
//   - Errors: no partial results; failed builds are not cached.
type Store struct {
	window    calendar.Window
	calendars []*exchange.Calendar
	cache     cache.Cache[cache.Key, *calendar.YearSet]
	loader    *cache.Loader[*calendar.YearSet]
	mw        *observe.Middleware

	builds    atomic.Int64
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

// New creates a store for cfg. Without WithCalendars it serves the
// built-in exchanges.
func New(cfg Config, opts ...Option) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{calendars: exchange.All()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateCalendars(o.calendars); err != nil {
		return nil, err
	}

	mw := o.middleware
	if o.observer != nil {
		var err error
		if mw, err = observe.MiddlewareFromObserver(o.observer); err != nil {
			return nil, err
		}
	}
	if mw == nil {
		mw = observe.NopMiddleware()
	}

	s := &Store{
		window:    cfg.Window(),
		calendars: o.calendars,
		mw:        mw,
	}

	policy := cfg.cachePolicy(len(o.calendars))
	if policy.ShouldCache() {
		lru, err := cache.NewLRU[cache.Key, *calendar.YearSet](policy, s.onEvict)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		s.cache = lru
	} else {
		s.cache = cache.Nop[cache.Key, *calendar.YearSet]{}
	}

	loader, err := cache.NewLoader(s.cache, cache.Hooks{
		OnHit:  s.onHit,
		OnMiss: s.onMiss,
	})
	if err != nil {
		return nil, err
	}
	s.loader = loader

	return s, nil
}

// validateCalendars rejects sets where a query could match more than one
// calendar: every identifier and MIC must be unique across the set.
func validateCalendars(cals []*exchange.Calendar) error {
	if len(cals) == 0 {
		return fmt.Errorf("%w: no calendars", ErrInvalidConfig)
	}
	owner := make(map[string]exchange.ID, 2*len(cals))
	for _, c := range cals {
		if c == nil {
			return fmt.Errorf("%w: nil calendar", ErrInvalidConfig)
		}
		if c.ID() == "" {
			return fmt.Errorf("%w: calendar without identifier", ErrInvalidConfig)
		}
		for _, key := range c.Keys() {
			if prev, dup := owner[key]; dup {
				return fmt.Errorf("%w: %s and %s both answer to %q", ErrInvalidConfig, prev, c.ID(), key)
			}
			owner[key] = c.ID()
		}
	}
	return nil
}

// IsHoliday reports whether d is a holiday on exchange id.
func (s *Store) IsHoliday(ctx context.Context, id string, d rules.Date) (bool, error) {
	h, err := s.Exchange(id)
	if err != nil {
		return false, err
	}
	return h.IsDateHoliday(ctx, d)
}

// HolidaysForYear returns the holidays of exchange id in year, ascending.
func (s *Store) HolidaysForYear(ctx context.Context, id string, year int) ([]Holiday, error) {
	h, err := s.Exchange(id)
	if err != nil {
		return nil, err
	}
	return h.GetHolidaysByYear(ctx, year)
}

// AllHolidays returns the holidays of exchange id for every year of the
// window, ascending.
func (s *Store) AllHolidays(ctx context.Context, id string) ([]Holiday, error) {
	h, err := s.Exchange(id)
	if err != nil {
		return nil, err
	}
	return h.GetHolidays(ctx)
}

// Exchange returns a query handle bound to one exchange.
func (s *Store) Exchange(id string) (*Holidays, error) {
	cal, err := s.calendar(id)
	if err != nil {
		return nil, err
	}
	return &Holidays{store: s, cal: cal}, nil
}

// Warm builds every year of the window for every exchange.
func (s *Store) Warm(ctx context.Context) error {
	var errs []error
	for _, cal := range s.calendars {
		for _, year := range s.window.Years() {
			if _, err := s.yearSet(ctx, cal, year); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Stats returns a snapshot of the store counters.
func (s *Store) Stats() Stats {
	return Stats{
		Builds:    s.builds.Load(),
		Hits:      s.hits.Load(),
		Misses:    s.misses.Load(),
		Evictions: s.evictions.Load(),
		Entries:   s.cache.Len(),
	}
}

// Window returns the queryable year window.
func (s *Store) Window() calendar.Window {
	return s.window
}

// Calendars returns the served exchanges in configuration order.
func (s *Store) Calendars() []*exchange.Calendar {
	return slices.Clone(s.calendars)
}

func (s *Store) calendar(id string) (*exchange.Calendar, error) {
	return exchange.Find(s.calendars, id)
}

func (s *Store) isHoliday(ctx context.Context, cal *exchange.Calendar, d rules.Date) (bool, error) {
	set, err := s.yearSet(ctx, cal, d.Year)
	if err != nil {
		return false, err
	}
	return set.Contains(d), nil
}

func (s *Store) holidaysForYear(ctx context.Context, cal *exchange.Calendar, year int) ([]Holiday, error) {
	set, err := s.yearSet(ctx, cal, year)
	if err != nil {
		return nil, err
	}
	return set.Entries(), nil
}

func (s *Store) allHolidays(ctx context.Context, cal *exchange.Calendar) ([]Holiday, error) {
	var all []Holiday
	for _, year := range s.window.Years() {
		set, err := s.yearSet(ctx, cal, year)
		if err != nil {
			return nil, err
		}
		all = append(all, set.Entries()...)
	}
	return all, nil
}

// yearSet returns the cached set for (cal, year), building it on a miss.
func (s *Store) yearSet(ctx context.Context, cal *exchange.Calendar, year int) (*calendar.YearSet, error) {
	if !s.window.Contains(year) {
		return nil, fmt.Errorf("%w: %s %d not in %s", ErrYearOutOfRange, cal.ID(), year, s.window)
	}
	key := cache.Key{Exchange: cal.ID().String(), Year: year}
	return s.loader.Get(ctx, key, func(ctx context.Context, key cache.Key) (*calendar.YearSet, error) {
		return s.load(ctx, cal, key.Year)
	})
}

// load builds one year of cal under the build middleware. Misses are rare
// enough that wrapping per call costs nothing measurable.
func (s *Store) load(ctx context.Context, cal *exchange.Calendar, year int) (*calendar.YearSet, error) {
	build := s.mw.Wrap(func(context.Context, observe.QueryMeta) (any, error) {
		s.builds.Add(1)
		set, err := calendar.Build(cal, year, s.window)
		if err != nil {
			return nil, err
		}
		return set, nil
	})
	res, err := build(ctx, observe.QueryMeta{Exchange: cal.ID().String(), Year: year, Op: observe.OpBuild})
	if err != nil {
		return nil, err
	}
	return res.(*calendar.YearSet), nil
}

func (s *Store) onHit(ctx context.Context, key cache.Key) {
	s.hits.Add(1)
	s.mw.CacheHit(ctx, metaOf(key))
}

func (s *Store) onMiss(ctx context.Context, key cache.Key) {
	s.misses.Add(1)
	s.mw.CacheMiss(ctx, metaOf(key))
}

// onEvict runs on the goroutine whose Set caused the eviction, which has no
// context to hand over.
func (s *Store) onEvict(key cache.Key, _ *calendar.YearSet) {
	s.evictions.Add(1)
	s.mw.Eviction(context.Background(), metaOf(key))
}

func metaOf(key cache.Key) observe.QueryMeta {
	return observe.QueryMeta{Exchange: key.Exchange, Year: key.Year}
}
