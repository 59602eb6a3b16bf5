package peg

import (
	"github.com/codeaudit/parboiled/charset"
)

// ProxyMatcher is a lazy indirection used to break cycles while the
// grammar graph is under construction: a rule can reference a proxy before
// the rule it stands for exists, and arm it later. Proxies are transparent
// at parse time, they are unwrapped when a sub-context is bound and are
// never visible to Match.
type ProxyMatcher struct {
	target Matcher
}

var _ Matcher = (*ProxyMatcher)(nil)

// NewProxy creates an unarmed proxy. Arm must be called before parsing.
func NewProxy() *ProxyMatcher {
	return &ProxyMatcher{}
}

// Arm points the proxy at its real target.
func (m *ProxyMatcher) Arm(target Matcher) {
	m.target = target
}

func (m *ProxyMatcher) armed() Matcher {
	ensureGrammar(m.target != nil, "proxy matcher used before being armed")
	return m.target
}

func (m *ProxyMatcher) Label() string                  { return m.armed().Label() }
func (m *ProxyMatcher) Match(ctx *MatcherContext) bool { return m.armed().Match(ctx) }
func (m *ProxyMatcher) IsLeaf() bool                   { return m.armed().IsLeaf() }
func (m *ProxyMatcher) IsWithoutNode() bool            { return m.armed().IsWithoutNode() }
func (m *ProxyMatcher) StarterChars() charset.Matcher  { return m.armed().StarterChars() }
func (m *ProxyMatcher) Children() []Matcher            { return m.armed().Children() }

// unwrapProxy strips any chain of proxies from around a matcher.
func unwrapProxy(m Matcher) Matcher {
	for {
		proxy, ok := m.(*ProxyMatcher)
		if !ok {
			return m
		}
		m = proxy.armed()
	}
}
