package tradingdays

import (
	"errors"

	"github.com/jonwraymond/tradingdays/calendar"
	"github.com/jonwraymond/tradingdays/exchange"
	"github.com/jonwraymond/tradingdays/rules"
)

// Errors returned by Store queries. They alias the errors of the packages
// that raise them so errors.Is works against either name.
var (
	// ErrUnknownExchange indicates an exchange the store has no calendar for.
	ErrUnknownExchange = exchange.ErrUnknownExchange

	// ErrYearOutOfRange indicates a year outside the configured window.
	ErrYearOutOfRange = calendar.ErrYearOutOfRange

	// ErrUnsupportedYear indicates a rule table has no data for the year.
	ErrUnsupportedYear = rules.ErrUnsupportedYear
)

// ErrInvalidConfig indicates a Config that fails validation.
var ErrInvalidConfig = errors.New("tradingdays: invalid config")
