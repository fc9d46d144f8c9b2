package rules

import "fmt"

// LunarTable maps a year to the precomputed dates of a lunar-calendar
// holiday. Lunar dates cannot be derived by formula, so the populated years
// are the supported years of any rule that uses the table.
//
// A year may map to several dates (a multi-day closure); the first date is
// the festival itself. A present but empty entry means the holiday adds no
// closure that year.
type LunarTable map[int][]MonthDay

// Lookup returns the table dates for year in table order.
func (t LunarTable) Lookup(year int) ([]Date, error) {
	days, ok := t[year]
	if !ok {
		return nil, fmt.Errorf("%w: no lunar table entry for %d", ErrUnsupportedYear, year)
	}

	dates := make([]Date, len(days))
	for i, md := range days {
		dates[i] = md.In(year)
	}
	return dates, nil
}

// Years returns the lowest and highest populated years.
// ok is false for an empty table.
func (t LunarTable) Years() (lo, hi int, ok bool) {
	for y := range t {
		if !ok || y < lo {
			lo = y
		}
		if !ok || y > hi {
			hi = y
		}
		ok = true
	}
	return lo, hi, ok
}

// MultiDaySpan returns span consecutive dates starting at base.
// A span below 1 is treated as a single day.
func MultiDaySpan(base Date, span int) []Date {
	if span < 1 {
		span = 1
	}
	dates := make([]Date, span)
	for i := range dates {
		dates[i] = base.AddDays(i)
	}
	return dates
}
