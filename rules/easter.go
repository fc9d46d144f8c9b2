package rules

import cal "github.com/rickar/cal/v2"

// EasterSunday returns Western (Gregorian) Easter Sunday for year.
func EasterSunday(year int) Date {
	return EasterDate(year, 0)
}

// EasterDate returns Easter Sunday for year shifted by days.
// -2 is Good Friday, -48 Carnival Monday, +60 Corpus Christi.
func EasterDate(year, days int) Date {
	h := cal.Holiday{Offset: days, Func: cal.CalcEasterOffset}
	actual, _ := h.Calc(year)
	return DateOf(actual)
}
