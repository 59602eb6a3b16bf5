package charset

// Exactly returns a Matcher that matches one specific rune.
//
// • Match performance: fast
//
// • Enumerable: yes
//
// • Usefulness: situational
//
// This is the best choice if you want to match exactly one rune.
//
func Exactly(r rune) Matcher {
	return &mExact{Rune: r}
}

type mExact struct{ Rune rune }

var _ Matcher = (*mExact)(nil)

func (m *mExact) Match(r rune) bool {
	return r == m.Rune
}

func (m *mExact) AppendRunes(out []rune) ([]rune, bool) {
	return append(out, m.Rune), true
}

func (m *mExact) Optimize() Matcher {
	return m
}

func (m *mExact) String() string {
	return genericString(m)
}
