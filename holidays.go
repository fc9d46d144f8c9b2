package tradingdays

import (
	"context"

	"github.com/jonwraymond/tradingdays/exchange"
	"github.com/jonwraymond/tradingdays/observe"
	"github.com/jonwraymond/tradingdays/rules"
)

// Holidays is a query handle for one exchange of a Store.
// It shares the store's cache and is safe for concurrent use.
type Holidays struct {
	store *Store
	cal   *exchange.Calendar
}

// Calendar returns the exchange definition the handle queries.
func (h *Holidays) Calendar() *exchange.Calendar {
	return h.cal
}

// IsDateHoliday reports whether d is a holiday.
func (h *Holidays) IsDateHoliday(ctx context.Context, d rules.Date) (holiday bool, err error) {
	err = h.query(ctx, observe.OpIsDay, d.Year, func(ctx context.Context) error {
		holiday, err = h.store.isHoliday(ctx, h.cal, d)
		return err
	})
	return holiday, err
}

// GetHolidaysByYear returns the holidays of year in ascending order.
func (h *Holidays) GetHolidaysByYear(ctx context.Context, year int) (hs []Holiday, err error) {
	err = h.query(ctx, observe.OpYear, year, func(ctx context.Context) error {
		hs, err = h.store.holidaysForYear(ctx, h.cal, year)
		return err
	})
	return hs, err
}

// GetHolidays returns the holidays of every year in the window.
func (h *Holidays) GetHolidays(ctx context.Context) (hs []Holiday, err error) {
	err = h.query(ctx, observe.OpAllYears, 0, func(ctx context.Context) error {
		hs, err = h.store.allHolidays(ctx, h.cal)
		return err
	})
	return hs, err
}

// query runs fn in a span for op; the year builds fn triggers nest under it.
func (h *Holidays) query(ctx context.Context, op string, year int, fn func(context.Context) error) error {
	meta := observe.QueryMeta{Exchange: h.cal.ID().String(), Year: year, Op: op}
	return h.store.mw.Query(ctx, meta, fn)
}
