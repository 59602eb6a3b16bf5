package charset

// And returns a Matcher that matches iff all of the given Matchers match.
//
// • Match performance: moderate (limited by inner matchers)
//
// • Enumerable: iff at least one inner matcher is
//
// • Usefulness: situational
//
func And(ms ...Matcher) Matcher {
	l := make([]Matcher, len(ms))
	copy(l, ms)
	return &mIntersection{List: l}
}

type mIntersection struct {
	List []Matcher
}

var _ Matcher = (*mIntersection)(nil)

func (m *mIntersection) Match(r rune) bool {
	for _, sub := range m.List {
		if !sub.Match(r) {
			return false
		}
	}
	return true
}

func (m *mIntersection) AppendRunes(out []rune) ([]rune, bool) {
	if len(m.List) == 0 {
		return out, false
	}
	var first []rune
	var rest []Matcher
	found := false
	for i, sub := range m.List {
		if rs, ok := sub.AppendRunes(nil); ok {
			first = rs
			rest = append(append([]Matcher(nil), m.List[:i]...), m.List[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return out, false
	}
	for _, r := range first {
		keep := true
		for _, sub := range rest {
			if !sub.Match(r) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, r)
		}
	}
	return out, true
}

func (m *mIntersection) Optimize() Matcher {
	if len(m.List) == 0 {
		return All()
	}
	if len(m.List) == 1 {
		return m.List[0].Optimize()
	}
	if merged, ok := m.AppendRunes(nil); ok {
		return Set(merged...).Optimize()
	}
	return m
}

func (m *mIntersection) String() string {
	return genericString(m)
}
