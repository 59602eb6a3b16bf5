package peg

import (
	"fmt"
	"strconv"

	"github.com/codeaudit/parboiled/charset"
)

func charLabel(c rune) string {
	if c == charset.EOI {
		return "EOI"
	}
	return strconv.QuoteRune(c)
}

// CharMatcher matches one specific character.
type CharMatcher struct {
	baseMatcher
	char rune
}

var _ Matcher = (*CharMatcher)(nil)

// Ch creates a rule matching the single character c.
func Ch(c rune) *CharMatcher {
	return &CharMatcher{baseMatcher{label: charLabel(c)}, c}
}

// Eoi creates a rule matching the end of the input.
func Eoi() *CharMatcher {
	return Ch(charset.EOI)
}

func (m *CharMatcher) Match(ctx *MatcherContext) bool {
	if ctx.CurrentChar() != m.char {
		return false
	}
	ctx.AdvanceInputLocation()
	ctx.CreateNode()
	return true
}

func (m *CharMatcher) StarterChars() charset.Matcher {
	return charset.Exactly(m.char)
}

func (m *CharMatcher) Children() []Matcher { return nil }

// CharRangeMatcher matches any character from an inclusive range.
type CharRangeMatcher struct {
	baseMatcher
	lo, hi rune
}

var _ Matcher = (*CharRangeMatcher)(nil)

// CharRange creates a rule matching any character c with lo <= c <= hi.
func CharRange(lo, hi rune) *CharRangeMatcher {
	label := fmt.Sprintf("%s..%s", charLabel(lo), charLabel(hi))
	return &CharRangeMatcher{baseMatcher{label: label}, lo, hi}
}

func (m *CharRangeMatcher) Match(ctx *MatcherContext) bool {
	c := ctx.CurrentChar()
	if c < m.lo || c > m.hi {
		return false
	}
	ctx.AdvanceInputLocation()
	ctx.CreateNode()
	return true
}

func (m *CharRangeMatcher) StarterChars() charset.Matcher {
	return charset.Ranges(charset.Range{Lo: m.lo, Hi: m.hi})
}

func (m *CharRangeMatcher) Children() []Matcher { return nil }

// CharSetMatcher matches any character from an arbitrary character set.
type CharSetMatcher struct {
	baseMatcher
	set charset.Matcher
}

var _ Matcher = (*CharSetMatcher)(nil)

// AnyOf creates a rule matching any of the characters in chars.
func AnyOf(chars string) *CharSetMatcher {
	return &CharSetMatcher{baseMatcher{label: strconv.Quote(chars)}, charset.Set([]rune(chars)...)}
}

// OneOf creates a rule matching any character accepted by the given set.
// The set must not contain the EOI or Empty sentinels.
func OneOf(set charset.Matcher, label string) *CharSetMatcher {
	return &CharSetMatcher{baseMatcher{label: label}, set}
}

func (m *CharSetMatcher) Match(ctx *MatcherContext) bool {
	c := ctx.CurrentChar()
	if c == charset.EOI || !m.set.Match(c) {
		return false
	}
	ctx.AdvanceInputLocation()
	ctx.CreateNode()
	return true
}

func (m *CharSetMatcher) StarterChars() charset.Matcher {
	return m.set
}

func (m *CharSetMatcher) Children() []Matcher { return nil }

// AnyMatcher matches any single character except EOI.
type AnyMatcher struct {
	baseMatcher
}

var _ Matcher = (*AnyMatcher)(nil)

// Any creates a rule matching any single input character.
func Any() *AnyMatcher {
	return &AnyMatcher{baseMatcher{label: "ANY"}}
}

func (m *AnyMatcher) Match(ctx *MatcherContext) bool {
	if ctx.CurrentChar() == charset.EOI {
		return false
	}
	ctx.AdvanceInputLocation()
	ctx.CreateNode()
	return true
}

func (m *AnyMatcher) StarterChars() charset.Matcher {
	return charset.And(charset.All(), charset.Not(charset.Set(charset.EOI, charset.Empty)))
}

func (m *AnyMatcher) Children() []Matcher { return nil }

// StringMatcher matches a fixed sequence of characters.
type StringMatcher struct {
	baseMatcher
	runes []rune
}

var _ Matcher = (*StringMatcher)(nil)

// Str creates a rule matching the given text character by character.
func Str(text string) *StringMatcher {
	return &StringMatcher{baseMatcher{label: strconv.Quote(text)}, []rune(text)}
}

func (m *StringMatcher) Match(ctx *MatcherContext) bool {
	for _, c := range m.runes {
		if ctx.CurrentChar() != c {
			return false
		}
		ctx.AdvanceInputLocation()
	}
	ctx.CreateNode()
	return true
}

func (m *StringMatcher) StarterChars() charset.Matcher {
	if len(m.runes) == 0 {
		return charset.Exactly(charset.Empty)
	}
	return charset.Exactly(m.runes[0])
}

func (m *StringMatcher) Children() []Matcher { return nil }
