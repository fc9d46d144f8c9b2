// Package rules provides the date primitives and holiday rule types used to
// derive exchange holiday calendars.
//
// Every primitive is a pure function of the year: Easter offsets, equinox
// approximations, nth-weekday dates, lunar table lookups and multi-day spans.
// A Rule is a declarative holiday definition (one of the Kind variants plus a
// label) and a Policy decides how an occurrence is observed when it lands on
// a weekend.
//
// # Basic Usage
//
//	goodFriday := rules.EasterOffset("Good Friday", -2)
//	occ, err := goodFriday.Occurrences(2024)
//	// occ[0].Date == rules.NewDate(2024, time.March, 29)
//
// Rules are values. Modifiers such as Since, Through, MovedIn and Exempt return
// a modified copy, so a table of rules can be shared by concurrent readers
// without locking.
package rules
