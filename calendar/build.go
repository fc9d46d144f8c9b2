package calendar

import (
	"fmt"
	"slices"

	"github.com/jonwraymond/tradingdays/exchange"
	"github.com/jonwraymond/tradingdays/rules"
)

// Build expands cal into the holidays of year.
//
// It fails with ErrYearOutOfRange when year is outside w and with
// rules.ErrUnsupportedYear when a rule has no data for year. No partial set
// is returned on error.
func Build(cal *exchange.Calendar, year int, w Window) (*YearSet, error) {
	if cal == nil {
		return nil, ErrNilCalendar
	}
	if !w.Contains(year) {
		return nil, fmt.Errorf("%w: %s %d not in %s", ErrYearOutOfRange, cal.ID(), year, w)
	}

	var raw []rules.Occurrence
	for _, r := range cal.Rules() {
		occ, err := r.Occurrences(year)
		if err != nil {
			return nil, fmt.Errorf("calendar: build %s %d: %w", cal.ID(), year, err)
		}
		raw = append(raw, occ...)
	}

	named := make(map[rules.Date]struct{}, len(raw))
	for _, o := range raw {
		if o.Named {
			named[o.Date] = struct{}{}
		}
	}
	isNamed := func(d rules.Date) bool {
		_, ok := named[d]
		return ok
	}

	// Primary dates claim their slot before any substitute does, so a
	// substitute landing on a span day keeps the span label.
	policy := cal.Policy()
	var primary, extra []rules.Occurrence
	for _, o := range raw {
		if !o.Named {
			primary = append(primary, o)
			continue
		}
		observed := policy(o, isNamed)
		if len(observed) == 0 {
			continue
		}
		primary = append(primary, observed[0])
		extra = append(extra, observed[1:]...)
	}

	seen := make(map[rules.Date]struct{}, len(primary)+len(extra))
	entries := make([]Holiday, 0, len(primary)+len(extra))
	for _, o := range slices.Concat(primary, extra) {
		if o.Date.Year != year {
			continue
		}
		if _, dup := seen[o.Date]; dup {
			continue
		}
		seen[o.Date] = struct{}{}
		entries = append(entries, Holiday{Date: o.Date, Label: o.Label})
	}

	slices.SortFunc(entries, func(a, b Holiday) int {
		return a.Date.Compare(b.Date)
	})

	return newYearSet(cal.ID(), year, entries), nil
}
