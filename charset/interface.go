// Package charset provides predicates over runes, used by the matching
// engine to describe which characters may start or follow a rule.
//
// Besides ordinary input characters, two sentinel runes participate in set
// computations: EOI (end of input) and Empty (the "may match nothing"
// marker). See chars.go.
package charset

// Matcher is a predicate that returns true for certain runes.
//
// For the sake of all that is good and holy, implementations of Matcher
// must *not* change their state on a call to Match.
//
type Matcher interface {
	// Match returns true iff rune r is in the set.
	Match(r rune) bool

	// AppendRunes appends each rune in the set to out, in ascending
	// order, and returns the updated slice. The second return value is
	// false iff the set cannot be enumerated (it is infinite or defined
	// by exclusion), in which case out is returned unchanged.
	AppendRunes(out []rune) ([]rune, bool)

	// Optimize returns a Matcher that matches the same set of runes, but
	// possibly in a more efficient way. If no better implementation can
	// be found, returns this matcher.
	Optimize() Matcher

	// String returns a string representation of the set.
	String() string
}

// Runes returns the full contents of m as a fresh slice, or nil and false
// if m cannot be enumerated.
func Runes(m Matcher) ([]rune, bool) {
	return m.AppendRunes(nil)
}
