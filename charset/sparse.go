package charset

import (
	"sort"
)

// Set returns a Matcher that matches any of the given runes.
//
// • Match performance: fast
//
// • Enumerable: yes
//
// • Usefulness: broad
//
// This is usually the best choice if your set is small-ish and is mostly
// made of non-consecutive runes.
//
func Set(given ...rune) Matcher {
	set := make(map[rune]struct{}, len(given))
	for _, r := range given {
		set[r] = struct{}{}
	}
	return &mSparse{Set: set}
}

type mSparse struct {
	Set map[rune]struct{}
}

var _ Matcher = (*mSparse)(nil)

func (m *mSparse) Match(r rune) bool {
	_, found := m.Set[r]
	return found
}

func (m *mSparse) AppendRunes(out []rune) ([]rune, bool) {
	sorted := make([]rune, 0, len(m.Set))
	for r := range m.Set {
		sorted = append(sorted, r)
	}
	sort.Sort(runeSlice(sorted))
	return append(out, sorted...), true
}

func (m *mSparse) Optimize() Matcher {
	if len(m.Set) == 0 {
		return None()
	}
	if len(m.Set) == 1 {
		for r := range m.Set {
			return Exactly(r)
		}
	}
	return m
}

func (m *mSparse) String() string {
	return genericString(m)
}
