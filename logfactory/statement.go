package logfactory

// Statement describes one pending log event. It is built fresh for every
// log call, handed to the filter chain, and discarded once the line is
// written or suppressed. Text is the raw message template, before any
// argument interpolation.
type Statement struct {
	Level Level
	Text  string
	Args  []any
}

// Filter decides whether a statement may be emitted. Filters must be pure
// predicates; they are consulted on every write, in registration order,
// and a single false suppresses the line.
type Filter func(Statement) bool

// allow reports whether every filter accepts the statement. An empty chain
// accepts everything.
func allow(filters []Filter, st Statement) bool {
	for _, f := range filters {
		if !f(st) {
			return false
		}
	}
	return true
}
