package rules

import (
	"testing"
	"time"

	cal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/aa"
	"github.com/rickar/cal/v2/br"
	"github.com/rickar/cal/v2/jp"
	"github.com/rickar/cal/v2/us"
)

// actualDate evaluates h on a copy so holidays whose calculation writes
// back into the definition stay untouched.
func actualDate(h *cal.Holiday, year int) Date {
	actual, _ := h.Clone(nil).Calc(year)
	return DateOf(actual)
}

func TestPrimitives_AgreeWithPublishedHolidays(t *testing.T) {
	for year := 2020; year <= 2025; year++ {
		weekdays := []struct {
			holiday *cal.Holiday
			got     Date
		}{
			{us.MlkDay, NthWeekday(year, time.January, time.Monday, 3)},
			{us.MemorialDay, NthWeekday(year, time.May, time.Monday, -1)},
			{us.ThanksgivingDay, NthWeekday(year, time.November, time.Thursday, 4)},
			{jp.ComingOfAgeDay, NthWeekday(year, time.January, time.Monday, 2)},
			{jp.RespectForTheAgedDay, NthWeekday(year, time.September, time.Monday, 3)},
		}
		for _, tt := range weekdays {
			if want := actualDate(tt.holiday, year); tt.got != want {
				t.Errorf("%s %d = %v, want %v", tt.holiday.Name, year, tt.got, want)
			}
		}

		easter := []struct {
			holiday *cal.Holiday
			offset  int
		}{
			{aa.Easter, 0},
			{aa.GoodFriday, -2},
			{br.Carnaval, -47},
			{br.CorpusChristi, 60},
		}
		for _, tt := range easter {
			if got, want := EasterDate(year, tt.offset), actualDate(tt.holiday, year); got != want {
				t.Errorf("%s %d = %v, want %v", tt.holiday.Name, year, got, want)
			}
		}

		equinoxes := []struct {
			holiday *cal.Holiday
			season  Season
		}{
			{jp.VernalEquinoxDay, Vernal},
			{jp.AutumnalEquinoxDay, Autumnal},
		}
		for _, tt := range equinoxes {
			got, err := EquinoxDate(year, tt.season)
			if err != nil {
				t.Fatalf("EquinoxDate(%d, %v) error = %v", year, tt.season, err)
			}
			if want := actualDate(tt.holiday, year); got != want {
				t.Errorf("%s %d = %v, want %v", tt.holiday.Name, year, got, want)
			}
		}

		o := Occurrence{Date: NewDate(year, time.July, 4), Label: "Independence Day", Named: true}
		_, observed := us.IndependenceDay.Calc(year)
		if got := WeekendShift(o, noneNamed)[0].Date; got != DateOf(observed) {
			t.Errorf("Independence Day %d observed = %v, want %v", year, got, DateOf(observed))
		}
	}
}
