package peg

import (
	"github.com/codeaudit/parboiled/charset"
)

// Matcher is a node in the grammar graph. The graph is directed and may be
// cyclic (via Proxy indirections); matchers must be effectively immutable
// once grammar construction is complete, so a single graph can serve any
// number of concurrent parses.
type Matcher interface {
	// Label returns the display name of this matcher, either the rule
	// name it was given or an operator-synthesised string.
	Label() string

	// Match runs this matcher inside the given context. It returns true
	// iff the match succeeded. On failure the context's parent cursor is
	// left untouched (the driver only commits on success).
	Match(ctx *MatcherContext) bool

	// IsLeaf reports whether the parse tree below this matcher is
	// suppressed. Sub-contexts of a leaf matcher run below leaf level
	// and produce no nodes.
	IsLeaf() bool

	// IsWithoutNode reports whether this matcher suppresses its own
	// parse-tree node. Its children are adopted by the parent instead.
	IsWithoutNode() bool

	// StarterChars returns the set of characters that can begin a
	// successful match of this matcher. The set contains charset.Empty
	// iff the matcher can succeed without consuming input. Test and
	// TestNot are the exception: they never consume input, and their set
	// holds the characters at which they can succeed, without Empty.
	StarterChars() charset.Matcher

	// Children returns the sub-matchers of this matcher, if any.
	Children() []Matcher
}

// FollowMatcher is implemented by matchers that can describe which
// characters may legally follow at their level of the context stack while
// one of their sub-matchers is active. The error handler walks the live
// stack and unions these sets to build its resynchronisation alphabet.
type FollowMatcher interface {
	Matcher

	// FollowerChars returns the set of characters that may follow at the
	// stack level of ctx. The set contains charset.Empty iff this
	// matcher does not constrain what comes next.
	FollowerChars(ctx *MatcherContext) charset.Matcher
}

// baseMatcher carries the label and tree-shaping flags shared by all
// matcher variants.
type baseMatcher struct {
	label       string
	leaf        bool
	withoutNode bool
}

func (m *baseMatcher) Label() string       { return m.label }
func (m *baseMatcher) IsLeaf() bool        { return m.leaf }
func (m *baseMatcher) IsWithoutNode() bool { return m.withoutNode }

func (m *baseMatcher) base() *baseMatcher { return m }

type hasBase interface {
	base() *baseMatcher
}

// Label assigns a rule name to the given matcher and returns it.
func Label(m Matcher, label string) Matcher {
	m.(hasBase).base().label = label
	return m
}

// AsLeaf marks the matcher as a leaf rule: the matcher itself still
// produces a parse-tree node, but everything below it runs below leaf
// level and produces none.
func AsLeaf(m Matcher) Matcher {
	m.(hasBase).base().leaf = true
	return m
}

// Suppress marks the matcher as node-less: on success its collected child
// nodes are forwarded into the parent instead of a node of its own.
func Suppress(m Matcher) Matcher {
	m.(hasBase).base().withoutNode = true
	return m
}

// withoutEmpty strips the Empty marker from a starter or follower set.
func withoutEmpty(m charset.Matcher) charset.Matcher {
	return charset.And(m, charset.Not(charset.Exactly(charset.Empty)))
}
