package rules

import (
	"fmt"
	"maps"
	"time"
)

// Kind identifies how a Rule computes its base date.
type Kind int

const (
	// KindFixed is a fixed month and day.
	KindFixed Kind = iota
	// KindNthWeekday is the nth (or last) weekday of a month.
	KindNthWeekday
	// KindEaster is an offset from Western Easter Sunday.
	KindEaster
	// KindEquinox is an offset from the vernal or autumnal equinox.
	KindEquinox
	// KindLunar is a per-year lookup table.
	KindLunar
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindNthWeekday:
		return "nth-weekday"
	case KindEaster:
		return "easter"
	case KindEquinox:
		return "equinox"
	case KindLunar:
		return "lunar"
	default:
		return "unknown"
	}
}

// Rule is a declarative holiday definition.
//
// Only the fields relevant to Kind are read. Use the constructors
// (Fixed, NthWeekdayOf, EasterOffset, Equinox, Lunar) rather than literals.
type Rule struct {
	Kind  Kind
	Label string

	// SpanLabel labels every day after the first of a multi-day holiday.
	// Empty means the days share Label.
	SpanLabel string

	Month   time.Month
	Day     int
	Weekday time.Weekday
	N       int
	Offset  int
	Season  Season
	Table   LunarTable

	// Span is the number of consecutive days observed; 0 or 1 is one day.
	// Lunar rules take their days from the table instead.
	Span int

	// From and Until bound the years the rule applies to; 0 is unbounded.
	From  int
	Until int

	// Moved relocates the holiday in specific years.
	Moved map[int]MonthDay

	// NoObserve keeps the observance policy away from this rule.
	NoObserve bool
}

// Occurrence is one raw date produced by a rule.
type Occurrence struct {
	Date  Date
	Label string

	// Named marks a date the observance policy may act on. Continuation days
	// of a span and exempt rules are not named.
	Named bool
}

// Fixed returns a rule for the same month and day every year.
func Fixed(label string, month time.Month, day int) Rule {
	return Rule{Kind: KindFixed, Label: label, Month: month, Day: day}
}

// NthWeekdayOf returns a rule for the nth weekday of month (n = -1 is last).
func NthWeekdayOf(label string, month time.Month, weekday time.Weekday, n int) Rule {
	return Rule{Kind: KindNthWeekday, Label: label, Month: month, Weekday: weekday, N: n}
}

// EasterOffset returns a rule days away from Western Easter Sunday.
func EasterOffset(label string, days int) Rule {
	return Rule{Kind: KindEaster, Label: label, Offset: days}
}

// Equinox returns a rule on the equinox of season plus offset days.
func Equinox(label string, season Season, offset int) Rule {
	return Rule{Kind: KindEquinox, Label: label, Season: season, Offset: offset}
}

// Lunar returns a rule whose dates come from table.
// spanLabel labels the table dates after the first; empty reuses label.
func Lunar(label, spanLabel string, table LunarTable) Rule {
	return Rule{Kind: KindLunar, Label: label, SpanLabel: spanLabel, Table: table}
}

// MultiDay returns a copy of r observed over span consecutive days,
// the days after the first labelled spanLabel.
func MultiDay(r Rule, span int, spanLabel string) Rule {
	r.Span = span
	r.SpanLabel = spanLabel
	return r
}

// Since returns a copy of r that applies from year onwards.
func (r Rule) Since(year int) Rule {
	r.From = year
	return r
}

// Through returns a copy of r that applies up to and including year.
func (r Rule) Through(year int) Rule {
	r.Until = year
	return r
}

// MovedIn returns a copy of r that falls on month/day in year instead of
// its computed date.
func (r Rule) MovedIn(year int, month time.Month, day int) Rule {
	moved := make(map[int]MonthDay, len(r.Moved)+1)
	maps.Copy(moved, r.Moved)
	moved[year] = MonthDay{Month: month, Day: day}
	r.Moved = moved
	return r
}

// Exempt returns a copy of r that is never shifted or substituted.
func (r Rule) Exempt() Rule {
	r.NoObserve = true
	return r
}

// ActiveIn reports whether r applies in year.
func (r Rule) ActiveIn(year int) bool {
	if r.From != 0 && year < r.From {
		return false
	}
	if r.Until != 0 && year > r.Until {
		return false
	}
	return true
}

// Occurrences evaluates r for year. Inactive rules yield nothing.
func (r Rule) Occurrences(year int) ([]Occurrence, error) {
	if !r.ActiveIn(year) {
		return nil, nil
	}

	dates, err := r.dates(year)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.Label, err)
	}

	occ := make([]Occurrence, len(dates))
	for i, d := range dates {
		occ[i] = Occurrence{Date: d, Label: r.Label, Named: !r.NoObserve}
		if i > 0 {
			occ[i].Named = false
			if r.SpanLabel != "" {
				occ[i].Label = r.SpanLabel
			}
		}
	}
	return occ, nil
}

func (r Rule) dates(year int) ([]Date, error) {
	if r.Kind == KindLunar {
		return r.Table.Lookup(year)
	}

	base, err := r.baseDate(year)
	if err != nil {
		return nil, err
	}
	return MultiDaySpan(base, r.Span), nil
}

func (r Rule) baseDate(year int) (Date, error) {
	if md, ok := r.Moved[year]; ok {
		return md.In(year), nil
	}

	switch r.Kind {
	case KindFixed:
		return NewDate(year, r.Month, r.Day), nil
	case KindNthWeekday:
		return NthWeekday(year, r.Month, r.Weekday, r.N), nil
	case KindEaster:
		return EasterDate(year, r.Offset), nil
	case KindEquinox:
		d, err := EquinoxDate(year, r.Season)
		if err != nil {
			return Date{}, err
		}
		return d.AddDays(r.Offset), nil
	default:
		return Date{}, fmt.Errorf("rules: unknown rule kind %d", r.Kind)
	}
}
