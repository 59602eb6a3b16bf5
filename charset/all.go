package charset

// All returns a Matcher that matches every rune, including the EOI and
// Empty sentinels.
//
// • Match performance: fast
//
// • Enumerable: no
//
// • Usefulness: situational
//
func All() Matcher { return singletonAll }

type mAll struct{}

var _ Matcher = (*mAll)(nil)
var singletonAll = &mAll{}

func (m *mAll) Match(r rune) bool                     { return true }
func (m *mAll) AppendRunes(out []rune) ([]rune, bool) { return out, false }
func (m *mAll) Optimize() Matcher                     { return singletonAll }
func (m *mAll) String() string                        { return "." }
