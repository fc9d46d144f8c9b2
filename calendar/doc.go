// Package calendar expands an exchange.Calendar into the concrete holidays of
// one year.
//
// Build evaluates every rule of the calendar, applies the exchange's
// observance policy, drops dates that leave the requested year, collapses
// duplicates (the earliest rule keeps its label) and sorts the result. It is
// stateless: the same calendar, year and window always produce the same
// YearSet.
//
// Years are bounded by a Window. The default window is [2020, 2025]; the
// equinox approximation and the lunar tables are only validated inside it.
package calendar
