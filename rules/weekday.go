package rules

import (
	"time"

	cal "github.com/rickar/cal/v2"
)

// NthWeekday returns the nth occurrence of weekday in month of year.
// n counts from 1; n = -1 selects the last occurrence in the month.
// n must not be zero.
func NthWeekday(year int, month time.Month, weekday time.Weekday, n int) Date {
	return DateOf(cal.WeekdayN(year, month, weekday, n))
}
