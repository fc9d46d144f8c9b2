package exchange

import (
	"time"

	"github.com/jonwraymond/tradingdays/rules"
)

// São Paulo municipal and state holidays stopped closing B3 after 2021.
const lastSaoPauloClosure = 2021

var b3Rules = []rules.Rule{
	rules.Fixed("New year", time.January, 1),
	rules.Fixed("Anniversary of the city of São Paulo", time.January, 25).Through(lastSaoPauloClosure),
	rules.MultiDay(rules.EasterOffset("Carnaval Monday", -48), 2, "Carnaval"),
	rules.EasterOffset("Good Friday", -2),
	rules.Fixed("Tiradentes' Day", time.April, 21),
	rules.Fixed("Labour Day", time.May, 1),
	rules.EasterOffset("Corpus Christi", 60),
	rules.Fixed("Constitutional Revolution of 1932", time.July, 9).Through(lastSaoPauloClosure),
	rules.Fixed("Independence Day", time.September, 7),
	rules.Fixed("Our Lady of Aparecida", time.October, 12),
	rules.Fixed("All Souls' Day", time.November, 2),
	rules.Fixed("Republic Day", time.November, 15),
	rules.Fixed("Christmas Day", time.December, 25),
	rules.Fixed("Last day of year", time.December, 31),
}
