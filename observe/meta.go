package observe

import "fmt"

// Operations recorded in QueryMeta.Op. Queries run in a span named after
// their operation; the builds they trigger nest underneath.
const (
	OpBuild    = "build"
	OpIsDay    = "is_holiday"
	OpYear     = "holidays_for_year"
	OpAllYears = "all_holidays"
)

// QueryMeta identifies the exchange year a telemetry event belongs to.
type QueryMeta struct {
	Exchange string // Exchange identifier
	Year     int    // Calendar year; 0 when the event spans years
	Op       string // Operation name; empty means OpBuild
}

// SpanName returns the deterministic span name.
// Format: holidays.<op>.<exchange>
func (m QueryMeta) SpanName() string {
	op := m.Op
	if op == "" {
		op = OpBuild
	}
	return "holidays." + op + "." + m.Exchange
}

// String returns "<exchange>/<year>" or the exchange alone.
func (m QueryMeta) String() string {
	if m.Year == 0 {
		return m.Exchange
	}
	return fmt.Sprintf("%s/%d", m.Exchange, m.Year)
}
