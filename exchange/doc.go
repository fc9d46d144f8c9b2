// Package exchange defines the holiday rule tables of the supported stock
// exchanges.
//
// Each Calendar is pure data: an ordered list of rules.Rule values plus one
// rules.Policy. The calendar.Build function interprets any Calendar, so a new
// exchange needs a new table and nothing else.
//
// Supported exchanges:
//
//   - NYSE: New York Stock Exchange (XNYS)
//   - CME: Chicago Mercantile Exchange (XCME), same rules as NYSE
//   - B3: Brasil Bolsa Balcão (BVMF)
//   - SSE: Shanghai Stock Exchange (XSHG)
//   - JPX: Japan Exchange Group (XJPX)
//
// # Lookup
//
//	cal, err := exchange.Lookup("xnys")
//	if errors.Is(err, exchange.ErrUnknownExchange) {
//	    // not one of the five
//	}
//
// Calendars are immutable and safe to share between goroutines.
package exchange
