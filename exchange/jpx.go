package exchange

import (
	"time"

	"github.com/jonwraymond/tradingdays/rules"
)

// Marine, Sports and Mountain Day moved around the Tokyo Olympics in 2020
// and 2021.
var jpxRules = []rules.Rule{
	rules.MultiDay(rules.Fixed("New Year's Day", time.January, 1), 3, "New Year's Holiday"),
	rules.NthWeekdayOf("Coming of Age Day", time.January, time.Monday, 2),
	rules.Fixed("National Foundation Day", time.February, 11),
	rules.Fixed("Emperor's Birthday", time.February, 23).Since(2020),
	rules.Equinox("Vernal Equinox Day", rules.Vernal, 0),
	rules.Fixed("Showa Day", time.April, 29),
	rules.Fixed("Constitution Memorial Day", time.May, 3),
	rules.Fixed("Greenery Day", time.May, 4),
	rules.Fixed("Children's Day", time.May, 5),
	rules.NthWeekdayOf("Marine Day", time.July, time.Monday, 3).
		MovedIn(2020, time.July, 23).
		MovedIn(2021, time.July, 22),
	rules.Fixed("Mountain Day", time.August, 11).
		MovedIn(2020, time.August, 10).
		MovedIn(2021, time.August, 8),
	rules.NthWeekdayOf("Respect for the Aged Day", time.September, time.Monday, 3),
	rules.Equinox("Autumnal Equinox Day", rules.Autumnal, 0),
	rules.NthWeekdayOf("Health and Sports Day", time.October, time.Monday, 2).
		MovedIn(2020, time.July, 24).
		MovedIn(2021, time.July, 23),
	rules.Fixed("Culture Day", time.November, 3),
	rules.Fixed("Labor Thanksgiving Day", time.November, 23),
	rules.Fixed("New Year's Eve", time.December, 31).Exempt(),
}
