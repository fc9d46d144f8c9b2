package exchange

import "errors"

// ErrUnknownExchange indicates an identifier that names no supported exchange.
var ErrUnknownExchange = errors.New("exchange: unknown exchange")
