package calendar

import (
	"slices"

	"github.com/jonwraymond/tradingdays/exchange"
	"github.com/jonwraymond/tradingdays/rules"
)

// Holiday is one observed non-trading date and the label of the rule that
// produced it.
type Holiday struct {
	Date  rules.Date
	Label string
}

// String returns "YYYY-MM-DD label".
func (h Holiday) String() string {
	return h.Date.String() + " " + h.Label
}

// YearSet is the materialized holiday set of one exchange in one year.
//
// Contract:
// - Entries are unique by date, inside Year, and sorted ascending.
// - Immutability: a YearSet never changes once built; accessors return copies.
// - Concurrency: safe for concurrent readers.
type YearSet struct {
	exchange exchange.ID
	year     int
	entries  []Holiday
	index    map[rules.Date]int
}

func newYearSet(id exchange.ID, year int, entries []Holiday) *YearSet {
	index := make(map[rules.Date]int, len(entries))
	for i, h := range entries {
		index[h.Date] = i
	}
	return &YearSet{exchange: id, year: year, entries: entries, index: index}
}

// Exchange returns the exchange the set was built for.
func (s *YearSet) Exchange() exchange.ID { return s.exchange }

// Year returns the year the set was built for.
func (s *YearSet) Year() int { return s.year }

// Len returns the number of holidays.
func (s *YearSet) Len() int { return len(s.entries) }

// Entries returns a copy of the holidays in ascending date order.
func (s *YearSet) Entries() []Holiday {
	return slices.Clone(s.entries)
}

// Contains reports whether d is a holiday in the set.
func (s *YearSet) Contains(d rules.Date) bool {
	_, ok := s.index[d]
	return ok
}

// Label returns the label of the holiday on d.
func (s *YearSet) Label(d rules.Date) (string, bool) {
	i, ok := s.index[d]
	if !ok {
		return "", false
	}
	return s.entries[i].Label, true
}
