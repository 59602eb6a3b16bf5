package peg

import (
	"github.com/codeaudit/parboiled/charset"
)

// ZeroOrMoreMatcher repeatedly tries its sub-matcher against the input.
// Always succeeds.
type ZeroOrMoreMatcher struct {
	baseMatcher
	sub Matcher
}

var (
	_ Matcher       = (*ZeroOrMoreMatcher)(nil)
	_ FollowMatcher = (*ZeroOrMoreMatcher)(nil)
)

// ZeroOrMore creates a rule matching the given rule any number of times,
// including none.
func ZeroOrMore(rule Matcher) *ZeroOrMoreMatcher {
	return &ZeroOrMoreMatcher{baseMatcher{label: "zeroOrMore"}, rule}
}

func (m *ZeroOrMoreMatcher) Match(ctx *MatcherContext) bool {
	ctx.ClearEnforcement()

	lastLocation := ctx.CurrentLocation()
	for ctx.BindSub(m.sub).RunMatcher() {
		currentLocation := ctx.CurrentLocation()
		if currentLocation == lastLocation {
			failGrammar("The inner rule of ZeroOrMore rule '%s' must not allow empty matches", ctx.Path())
		}
		lastLocation = currentLocation
	}

	ctx.CreateNode()
	return true
}

func (m *ZeroOrMoreMatcher) StarterChars() charset.Matcher {
	chars := m.sub.StarterChars()
	ensureGrammar(!chars.Match(charset.Empty),
		"Rule '%s' must not allow empty matches as sub-rule of a ZeroOrMore-rule", m.sub.Label())
	return charset.Or(chars, charset.Exactly(charset.Empty))
}

func (m *ZeroOrMoreMatcher) FollowerChars(ctx *MatcherContext) charset.Matcher {
	return charset.Or(m.StarterChars(), charset.Exactly(charset.Empty))
}

func (m *ZeroOrMoreMatcher) Children() []Matcher { return []Matcher{m.sub} }

// OneOrMoreMatcher tries its sub-matcher once; on success it keeps
// repeating it like ZeroOrMoreMatcher does.
type OneOrMoreMatcher struct {
	baseMatcher
	sub Matcher
}

var (
	_ Matcher       = (*OneOrMoreMatcher)(nil)
	_ FollowMatcher = (*OneOrMoreMatcher)(nil)
)

// OneOrMore creates a rule matching the given rule at least once.
func OneOrMore(rule Matcher) *OneOrMoreMatcher {
	return &OneOrMoreMatcher{baseMatcher{label: "oneOrMore"}, rule}
}

func (m *OneOrMoreMatcher) Match(ctx *MatcherContext) bool {
	ctx.ClearEnforcement()

	if !ctx.BindSub(m.sub).RunMatcher() {
		return false
	}

	lastLocation := ctx.CurrentLocation()
	for ctx.BindSub(m.sub).RunMatcher() {
		currentLocation := ctx.CurrentLocation()
		if currentLocation == lastLocation {
			failGrammar("The inner rule of OneOrMore rule '%s' must not allow empty matches", ctx.Path())
		}
		lastLocation = currentLocation
	}

	ctx.CreateNode()
	return true
}

func (m *OneOrMoreMatcher) StarterChars() charset.Matcher {
	chars := m.sub.StarterChars()
	ensureGrammar(!chars.Match(charset.Empty),
		"Rule '%s' must not allow empty matches as sub-rule of a OneOrMore-rule", m.sub.Label())
	return chars
}

func (m *OneOrMoreMatcher) FollowerChars(ctx *MatcherContext) charset.Matcher {
	// after the first iteration the remainder is optional
	return charset.Or(m.StarterChars(), charset.Exactly(charset.Empty))
}

func (m *OneOrMoreMatcher) Children() []Matcher { return []Matcher{m.sub} }
