package exchange

import (
	"time"

	"github.com/jonwraymond/tradingdays/rules"
)

// usRules is shared by NYSE and CME.
var usRules = []rules.Rule{
	rules.Fixed("New year", time.January, 1),
	rules.NthWeekdayOf("Martin Luther King, Jr. Day", time.January, time.Monday, 3),
	rules.NthWeekdayOf("Washington's Birthday", time.February, time.Monday, 3),
	rules.EasterOffset("Good Friday", -2),
	rules.NthWeekdayOf("Memorial Day", time.May, time.Monday, -1),
	rules.Fixed("Juneteenth National Independence Day", time.June, 19).Since(2022),
	rules.Fixed("Independence Day", time.July, 4),
	rules.NthWeekdayOf("Labor Day", time.September, time.Monday, 1),
	rules.NthWeekdayOf("Thanksgiving Day", time.November, time.Thursday, 4),
	rules.Fixed("Christmas Day", time.December, 25),
	rules.Fixed("Last day of year", time.December, 31).Exempt(),
}
