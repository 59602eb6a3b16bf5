package peg

import (
	"github.com/codeaudit/parboiled/charset"
)

// OptionalMatcher tries its sub-matcher against the input. Always
// succeeds, whether the sub-matcher advanced or not.
type OptionalMatcher struct {
	baseMatcher
	sub Matcher
}

var (
	_ Matcher       = (*OptionalMatcher)(nil)
	_ FollowMatcher = (*OptionalMatcher)(nil)
)

// Optional creates a rule matching the given rule zero or one times.
func Optional(rule Matcher) *OptionalMatcher {
	return &OptionalMatcher{baseMatcher{label: "optional"}, rule}
}

func (m *OptionalMatcher) Match(ctx *MatcherContext) bool {
	ctx.BindSub(m.sub).RunMatcher()
	ctx.CreateNode()
	return true
}

func (m *OptionalMatcher) StarterChars() charset.Matcher {
	return charset.Or(m.sub.StarterChars(), charset.Exactly(charset.Empty))
}

func (m *OptionalMatcher) FollowerChars(ctx *MatcherContext) charset.Matcher {
	// the body cannot restart, so the optional itself puts no
	// constraint on what comes next
	return charset.Exactly(charset.Empty)
}

func (m *OptionalMatcher) Children() []Matcher { return []Matcher{m.sub} }
