package peg

import (
	"github.com/codeaudit/parboiled/charset"
)

// FirstOfMatcher tries its sub-matchers in order and succeeds with the
// first one that matches (committed choice). Because a failing child never
// commits its cursor upward, each alternative starts from the original
// input position without any explicit rollback. The alternatives run
// without enforcement; under enforcement only the failure of the choice as
// a whole is routed through the error handler.
type FirstOfMatcher struct {
	baseMatcher
	children []Matcher
}

var _ Matcher = (*FirstOfMatcher)(nil)

// FirstOf creates an ordered-choice rule over the given alternatives.
func FirstOf(rules ...Matcher) *FirstOfMatcher {
	return &FirstOfMatcher{baseMatcher{label: "firstOf"}, rules}
}

func (m *FirstOfMatcher) Match(ctx *MatcherContext) bool {
	enforced := ctx.IsEnforced()
	ctx.ClearEnforcement()
	for _, child := range m.children {
		if ctx.BindSub(child).RunMatcher() {
			ctx.CreateNode()
			return true
		}
	}
	if enforced {
		ctx.SetEnforcement()
	}
	return false
}

func (m *FirstOfMatcher) StarterChars() charset.Matcher {
	chars := charset.None()
	for _, child := range m.children {
		chars = charset.Or(chars, child.StarterChars())
	}
	return chars.Optimize()
}

func (m *FirstOfMatcher) Children() []Matcher { return m.children }
