package peg

import (
	"github.com/codeaudit/parboiled/charset"
)

// ActionFunc is a user-supplied semantic routine. It is invoked with the
// context of its own frame; the enclosing rule's frame is reachable via
// ctx.Parent(). The boolean result is the match outcome. A non-nil error
// aborts the match and is recorded as a parse error by the driver.
type ActionFunc func(ctx *MatcherContext) (bool, error)

// ActionMatcher runs a semantic action against the current context. It
// consumes no input and produces no parse-tree node.
type ActionMatcher struct {
	baseMatcher
	fn ActionFunc
}

var _ Matcher = (*ActionMatcher)(nil)

// Do creates a rule running the given semantic action.
func Do(fn ActionFunc) *ActionMatcher {
	return &ActionMatcher{baseMatcher{label: "action"}, fn}
}

func (m *ActionMatcher) Match(ctx *MatcherContext) bool {
	ok, err := m.fn(ctx)
	if err != nil {
		if ae, isAction := err.(*ActionError); isAction {
			panic(ae)
		}
		panic(&ActionError{Message: err.Error()})
	}
	return ok
}

func (m *ActionMatcher) StarterChars() charset.Matcher {
	return charset.Exactly(charset.Empty)
}

func (m *ActionMatcher) Children() []Matcher { return nil }
