package exchange

import (
	"time"

	"github.com/jonwraymond/tradingdays/rules"
)

// The State Council publishes the Chinese holiday schedule one year at a
// time, so the lunar festivals and the bridge days around fixed holidays are
// tables. A year missing from any table is unsupported for SSE.

func md(month time.Month, days ...int) []rules.MonthDay {
	out := make([]rules.MonthDay, len(days))
	for i, d := range days {
		out[i] = rules.MonthDay{Month: month, Day: d}
	}
	return out
}

var sseNewYearBridge = rules.LunarTable{
	2020: nil,
	2021: nil,
	2022: md(time.January, 3),
	2023: md(time.January, 2),
	2024: nil,
	2025: nil,
}

var sseSpringFestival = rules.LunarTable{
	2020: md(time.January, 24, 27, 28, 29, 30),
	2021: md(time.February, 11, 12, 15, 16, 17),
	2022: append(md(time.January, 31), md(time.February, 1, 2, 3, 4)...),
	2023: md(time.January, 23, 24, 25, 26, 27),
	2024: md(time.February, 10, 11, 12, 13, 14),
	2025: append(md(time.January, 29, 30, 31), md(time.February, 3, 4)...),
}

var sseQingmingBridge = rules.LunarTable{
	2020: md(time.April, 6),
	2021: md(time.April, 5),
	2022: md(time.April, 4),
	2023: nil,
	2024: md(time.April, 5),
	2025: nil,
}

var sseLabourBridge = rules.LunarTable{
	2020: md(time.May, 4, 5),
	2021: md(time.May, 3, 4, 5),
	2022: md(time.May, 2, 3, 4),
	2023: md(time.May, 2, 3),
	2024: md(time.May, 2, 3),
	2025: md(time.May, 2, 5),
}

var sseDragonBoat = rules.LunarTable{
	2020: md(time.June, 25, 26),
	2021: md(time.June, 14),
	2022: md(time.June, 3),
	2023: md(time.June, 22, 23),
	2024: md(time.June, 10),
	2025: md(time.May, 31),
}

var sseNationalBridge = rules.LunarTable{
	2020: md(time.October, 2, 5, 6, 7, 8),
	2021: md(time.October, 4, 5, 6, 7),
	2022: md(time.October, 3, 4, 5, 6, 7),
	2023: md(time.October, 2, 3, 4, 5, 6),
	2024: md(time.October, 2, 3, 4, 7),
	2025: md(time.October, 2, 3, 6, 7),
}

var sseMidAutumn = rules.LunarTable{
	2020: md(time.October, 1),
	2021: md(time.September, 20, 21),
	2022: md(time.September, 12),
	2023: md(time.September, 29),
	2024: md(time.September, 17),
	2025: md(time.October, 6),
}

// Mid-Autumn comes after National Day so shared dates keep the National Day
// label.
var sseRules = []rules.Rule{
	rules.Fixed("New Year's Day", time.January, 1),
	rules.Lunar("New Year Holiday", "", sseNewYearBridge),
	rules.Lunar("Chinese New Year", "Chinese New Year Holiday", sseSpringFestival),
	rules.Equinox("Qingming Festival", rules.Vernal, 15),
	rules.Lunar("Qingming Festival Holiday", "", sseQingmingBridge),
	rules.Fixed("Labour Day", time.May, 1),
	rules.Lunar("Labour Day Holiday", "", sseLabourBridge),
	rules.Lunar("Dragon Boat Festival", "Dragon Boat Festival Holiday", sseDragonBoat),
	rules.Fixed("National Day", time.October, 1),
	rules.Lunar("National Day Holiday", "", sseNationalBridge),
	rules.Lunar("Mid-Autumn Festival", "Mid-Autumn Festival Holiday", sseMidAutumn),
}
