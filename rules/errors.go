package rules

import "errors"

var (
	// ErrUnsupportedYear indicates a rule has no data for the requested year,
	// for example a lunar table that does not cover it.
	ErrUnsupportedYear = errors.New("rules: unsupported year")

	// ErrInvalidDate indicates a date string could not be parsed.
	ErrInvalidDate = errors.New("rules: invalid date")
)
