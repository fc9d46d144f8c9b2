package rules

import (
	"time"

	cal "github.com/rickar/cal/v2"
)

// Policy decides how a named occurrence is observed.
//
// It receives the occurrence and a lookup reporting whether a date is
// already a named holiday that year, and returns the occurrences that replace
// it: unchanged, shifted, or accompanied by a substitute.
//
// Contract:
// - Determinism: the same inputs must produce the same output.
// - Concurrency: policies must be safe for concurrent use.
type Policy func(o Occurrence, named func(Date) bool) []Occurrence

// SubstituteSuffix is appended to the label of a substitute holiday.
const SubstituteSuffix = " observed"

// NoShift keeps every holiday on its nominal date, weekend or not.
func NoShift(o Occurrence, _ func(Date) bool) []Occurrence {
	return []Occurrence{o}
}

// weekendAlt observes Saturday holidays on Friday and Sunday holidays on
// Monday.
var weekendAlt = []cal.AltDay{
	{Day: time.Saturday, Offset: -1},
	{Day: time.Sunday, Offset: 1},
}

// WeekendShift moves a Saturday holiday to Friday and a Sunday holiday to
// Monday. The label is kept.
func WeekendShift(o Occurrence, _ func(Date) bool) []Occurrence {
	h := cal.Holiday{
		Month:    o.Date.Month,
		Day:      o.Date.Day,
		Observed: weekendAlt,
		Func:     cal.CalcDayOfMonth,
	}
	_, observed := h.Calc(o.Date.Year)
	o.Date = DateOf(observed)
	return []Occurrence{o}
}

// SundaySubstitute keeps the holiday and, when it falls on a Sunday, adds a
// substitute on the next day that is not itself a named holiday.
// Saturday holidays get no substitute.
func SundaySubstitute(o Occurrence, named func(Date) bool) []Occurrence {
	if o.Date.Weekday() != time.Sunday {
		return []Occurrence{o}
	}

	sub := o.Date.AddDays(1)
	for named(sub) {
		sub = sub.AddDays(1)
	}

	return []Occurrence{o, {
		Date:  sub,
		Label: o.Label + SubstituteSuffix,
	}}
}
