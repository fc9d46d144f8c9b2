package rules

import (
	"fmt"

	"github.com/rickar/cal/v2/jp"
)

// Season selects an equinox.
type Season int

const (
	// Vernal is the March equinox.
	Vernal Season = iota
	// Autumnal is the September equinox.
	Autumnal
)

// String returns the season name.
func (s Season) String() string {
	switch s {
	case Vernal:
		return "vernal"
	case Autumnal:
		return "autumnal"
	default:
		return "unknown"
	}
}

// Validated range of the equinox approximation.
const (
	EquinoxMinYear = 1980
	EquinoxMaxYear = 2099
)

// EquinoxDate returns the calendar date of the equinox for year as observed
// in Japan Standard Time, using the Japanese almanac approximation.
// Years outside 1980..2099 return ErrUnsupportedYear.
func EquinoxDate(year int, season Season) (Date, error) {
	if year < EquinoxMinYear || year > EquinoxMaxYear {
		return Date{}, fmt.Errorf("%w: equinox approximation not validated for %d", ErrUnsupportedYear, year)
	}

	day := jp.VernalEquinoxDay
	if season == Autumnal {
		day = jp.AutumnalEquinoxDay
	}
	// The jp calculations write the computed day into the holiday they run
	// on, so each call works on its own copy.
	actual, _ := day.Clone(nil).Calc(year)
	return DateOf(actual), nil
}
