package peg

import (
	"github.com/codeaudit/parboiled/charset"
)

// SequenceMatcher matches all of its sub-matchers in order. It may carry a
// cut point: once the child at the cut index has matched, the remaining
// children run under enforcement, so their failures are routed through the
// error handler, which may recover them; an unrecovered failure still fails
// the sequence.
type SequenceMatcher struct {
	baseMatcher
	children []Matcher
	cut      int
}

var _ Matcher = (*SequenceMatcher)(nil)

// Sequence creates a rule matching all of the given rules in order.
func Sequence(rules ...Matcher) *SequenceMatcher {
	return &SequenceMatcher{baseMatcher{label: "sequence"}, rules, -1}
}

// SequenceCut creates a sequence whose children after index cut are
// matched under enforcement once the child at cut has succeeded.
func SequenceCut(cut int, rules ...Matcher) *SequenceMatcher {
	ensureGrammar(cut >= 0 && cut < len(rules), "sequence cut index %d out of range", cut)
	return &SequenceMatcher{baseMatcher{label: "sequence"}, rules, cut}
}

func (m *SequenceMatcher) Match(ctx *MatcherContext) bool {
	enforced := ctx.IsEnforced()
	for i, child := range m.children {
		if !ctx.BindSub(child).RunMatcher() {
			if !enforced {
				// the cut enforces the remaining children, not the
				// sequence's own failure
				ctx.ClearEnforcement()
			}
			return false
		}
		if i == m.cut {
			ctx.SetEnforcement()
		}
	}
	ctx.CreateNode()
	return true
}

func (m *SequenceMatcher) StarterChars() charset.Matcher {
	chars := charset.None()
	for _, child := range m.children {
		sub := child.StarterChars()
		chars = charset.Or(chars, withoutEmpty(sub))
		if !sub.Match(charset.Empty) {
			return chars.Optimize()
		}
	}
	// every child can match empty, so the sequence can too
	return charset.Or(chars, charset.Exactly(charset.Empty)).Optimize()
}

func (m *SequenceMatcher) Children() []Matcher { return m.children }
