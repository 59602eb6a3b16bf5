package peg

import (
	"github.com/codeaudit/parboiled/charset"
)

// TestMatcher does not consume any input. It tries its sub-matcher against
// the current position and succeeds iff the sub-matcher would succeed (not
// inverted) or would fail (inverted). Neither the cursor nor the parse
// tree are affected from the caller's point of view: the predicate frame
// and everything below it produce no nodes.
type TestMatcher struct {
	baseMatcher
	sub      Matcher
	inverted bool
}

var _ Matcher = (*TestMatcher)(nil)

// Test creates a positive syntactic predicate over the given rule.
func Test(rule Matcher) *TestMatcher {
	return &TestMatcher{baseMatcher{label: "&(" + rule.Label() + ")"}, rule, false}
}

// TestNot creates a negative syntactic predicate over the given rule.
func TestNot(rule Matcher) *TestMatcher {
	return &TestMatcher{baseMatcher{label: "!(" + rule.Label() + ")"}, rule, true}
}

func (m *TestMatcher) Match(ctx *MatcherContext) bool {
	lastLocation := ctx.CurrentLocation()
	matched := ctx.BindSub(m.sub).RunMatcher()
	if matched && ctx.CurrentLocation() == lastLocation && lastLocation.Char() != charset.EOI {
		failGrammar("The inner rule of Test/TestNot rule '%s' must not allow empty matches", ctx.Path())
	}
	// reset location, test matchers never advance
	ctx.SetCurrentLocation(lastLocation)

	if m.inverted {
		return !matched
	}
	return matched
}

func (m *TestMatcher) StarterChars() charset.Matcher {
	chars := m.sub.StarterChars()
	ensureGrammar(!chars.Match(charset.Empty), "Rule '%s' allows empty matches, "+
		"unlikely to be correct as a sub rule of a Test/TestNot-Rule", m.sub.Label())
	if m.inverted {
		return charset.And(charset.Not(chars), charset.Not(charset.Exactly(charset.Empty)))
	}
	return chars
}

func (m *TestMatcher) Children() []Matcher { return []Matcher{m.sub} }
