package exchange

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jonwraymond/tradingdays/rules"
)

// ID identifies an exchange.
type ID string

// Supported exchanges.
const (
	NYSE ID = "NYSE"
	CME  ID = "CME"
	B3   ID = "B3"
	SSE  ID = "SSE"
	JPX  ID = "JPX"
)

// String returns the identifier.
func (id ID) String() string {
	return string(id)
}

// Calendar is the holiday definition of one exchange.
//
// Contract:
// - Immutability: a Calendar never changes after New returns.
// - Concurrency: safe for concurrent use without locking.
type Calendar struct {
	id     ID
	name   string
	mic    string
	rules  []rules.Rule
	policy rules.Policy
}

// New returns a calendar evaluating rs in order under policy.
// The identifier and MIC are stored upper-cased so lookups ignore case.
// A nil policy means rules.NoShift.
func New(id ID, name, mic string, policy rules.Policy, rs ...rules.Rule) *Calendar {
	if policy == nil {
		policy = rules.NoShift
	}
	return &Calendar{
		id:     ID(normalize(string(id))),
		name:   name,
		mic:    normalize(mic),
		rules:  slices.Clone(rs),
		policy: policy,
	}
}

// ID returns the exchange identifier.
func (c *Calendar) ID() ID { return c.id }

// Name returns the exchange's display name.
func (c *Calendar) Name() string { return c.name }

// MIC returns the ISO 10383 market identifier code.
func (c *Calendar) MIC() string { return c.mic }

// Rules returns a copy of the rule table in definition order.
func (c *Calendar) Rules() []rules.Rule { return slices.Clone(c.rules) }

// Policy returns the observance policy.
func (c *Calendar) Policy() rules.Policy { return c.policy }

// String returns the exchange identifier.
func (c *Calendar) String() string { return string(c.id) }

// Keys returns the strings Find matches the calendar by.
func (c *Calendar) Keys() []string {
	if c.mic == "" || c.mic == string(c.id) {
		return []string{string(c.id)}
	}
	return []string{string(c.id), c.mic}
}

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

var builtin = []*Calendar{
	New(NYSE, "New York Stock Exchange", "XNYS", rules.WeekendShift, usRules...),
	New(CME, "Chicago Mercantile Exchange", "XCME", rules.WeekendShift, usRules...),
	New(B3, "Brasil Bolsa Balcão", "BVMF", rules.NoShift, b3Rules...),
	New(SSE, "Shanghai Stock Exchange", "XSHG", rules.NoShift, sseRules...),
	New(JPX, "Japan Exchange Group", "XJPX", rules.SundaySubstitute, jpxRules...),
}

// Lookup returns the built-in calendar for id. Matching ignores case and
// surrounding space and accepts MIC codes.
func Lookup(id string) (*Calendar, error) {
	return Find(builtin, id)
}

// Find returns the calendar in cals matching id by identifier or MIC code.
func Find(cals []*Calendar, id string) (*Calendar, error) {
	key := normalize(id)
	for _, c := range cals {
		if c == nil {
			continue
		}
		if key == string(c.id) || (c.mic != "" && key == c.mic) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownExchange, id)
}

// All returns the built-in calendars in a fixed order.
func All() []*Calendar {
	return slices.Clone(builtin)
}

// IDs returns the identifiers of the built-in calendars.
func IDs() []ID {
	ids := make([]ID, len(builtin))
	for i, c := range builtin {
		ids[i] = c.id
	}
	return ids
}
