package calendar

import (
	"testing"

	cal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/br"
	"github.com/rickar/cal/v2/jp"
	"github.com/rickar/cal/v2/us"

	"github.com/jonwraymond/tradingdays/rules"
)

// publishedDates returns the dates of h that fall in year: the observed
// date, plus the actual date unless observedOnly. h is evaluated on a copy
// because some definitions write their computed day back into the holiday.
func publishedDates(h *cal.Holiday, year int, observedOnly bool) []rules.Date {
	actual, observed := h.Clone(nil).Calc(year)
	var dates []rules.Date
	if observed.Year() == year {
		dates = append(dates, rules.DateOf(observed))
	}
	if !observedOnly && actual.Year() == year && !observed.Equal(actual) {
		dates = append(dates, rules.DateOf(actual))
	}
	return dates
}

// Each built-in table must contain every date of the national holidays it
// shares with rickar/cal's published definitions. The US exchanges close
// on the observed date only; B3 and JPX close on the holiday itself too.
func TestBuild_MatchesPublishedCalendars(t *testing.T) {
	tests := []struct {
		exchange     string
		from         int
		observedOnly bool
		holidays     []*cal.Holiday
	}{
		{"NYSE", 2022, true, []*cal.Holiday{
			us.NewYear,
			us.MlkDay,
			us.PresidentsDay,
			us.MemorialDay,
			us.Juneteenth,
			us.IndependenceDay,
			us.LaborDay,
			us.ThanksgivingDay,
			us.ChristmasDay,
		}},
		{"B3", MinSupportedYear, false, []*cal.Holiday{
			br.AnoNovo,
			br.Carnaval,
			br.SextaFeiraSanta,
			br.Tiradentes,
			br.Trabalhador,
			br.CorpusChristi,
			br.Independencia,
			br.NossaSenhoraAparecida,
			br.Finados,
			br.Republica,
			br.Natal,
		}},
		{"JPX", MinSupportedYear, false, []*cal.Holiday{
			jp.NewYear,
			jp.ComingOfAgeDay,
			jp.NationalFoundationDay,
			jp.TheEmperorsBirthday,
			jp.VernalEquinoxDay,
			jp.ShowaDay,
			jp.ConstitutionMemorialDay,
			jp.GreeneryDay,
			jp.ChildrensDay,
			jp.MarineDay,
			jp.MountainDay,
			jp.RespectForTheAgedDay,
			jp.AutumnalEquinoxDay,
			jp.SportsDay,
			jp.CultureDay,
			jp.LaborThanksgivingDay,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.exchange, func(t *testing.T) {
			for year := tt.from; year <= MaxSupportedYear; year++ {
				set := mustBuild(t, tt.exchange, year)
				for _, h := range tt.holidays {
					for _, d := range publishedDates(h, year, tt.observedOnly) {
						if !set.Contains(d) {
							t.Errorf("%s %d: %s on %s missing", tt.exchange, year, h.Name, d)
						}
					}
				}
			}
		})
	}
}
