package charset

// Or returns a Matcher that matches iff any of the given Matchers match.
//
// • Match performance: moderate (limited by inner matchers)
//
// • Enumerable: iff all inner matchers are
//
// • Usefulness: broad
//
func Or(ms ...Matcher) Matcher {
	l := make([]Matcher, len(ms))
	copy(l, ms)
	return &mUnion{List: l}
}

type mUnion struct {
	List []Matcher
}

var _ Matcher = (*mUnion)(nil)

func (m *mUnion) Match(r rune) bool {
	for _, sub := range m.List {
		if sub.Match(r) {
			return true
		}
	}
	return false
}

func (m *mUnion) AppendRunes(out []rune) ([]rune, bool) {
	merged, ok := mergeRunes(m.List)
	if !ok {
		return out, false
	}
	return append(out, merged...), true
}

func (m *mUnion) Optimize() Matcher {
	if len(m.List) == 0 {
		return None()
	}
	if len(m.List) == 1 {
		return m.List[0].Optimize()
	}
	if merged, ok := mergeRunes(m.List); ok {
		return Set(merged...).Optimize()
	}
	return m
}

func (m *mUnion) String() string {
	return genericString(m)
}
