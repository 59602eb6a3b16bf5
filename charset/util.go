package charset

import (
	"bytes"
	"fmt"
	"sort"
	"unicode"
)

type runeSlice []rune

var _ sort.Interface = (runeSlice)(nil)

func (x runeSlice) Len() int           { return len(x) }
func (x runeSlice) Less(i, j int) bool { return x[i] < x[j] }
func (x runeSlice) Swap(i, j int)      { x[i], x[j] = x[j], x[i] }

type rangeSlice []Range

var _ sort.Interface = (rangeSlice)(nil)

func (x rangeSlice) Len() int           { return len(x) }
func (x rangeSlice) Less(i, j int) bool { return x[i].Lo < x[j].Lo }
func (x rangeSlice) Swap(i, j int)      { x[i], x[j] = x[j], x[i] }

// mergeRunes enumerates each matcher in ms and returns the deduplicated,
// sorted union. Returns false if any matcher cannot be enumerated.
func mergeRunes(ms []Matcher) ([]rune, bool) {
	seen := make(map[rune]struct{})
	for _, sub := range ms {
		rs, ok := sub.AppendRunes(nil)
		if !ok {
			return nil, false
		}
		for _, r := range rs {
			seen[r] = struct{}{}
		}
	}
	merged := make([]rune, 0, len(seen))
	for r := range seen {
		merged = append(merged, r)
	}
	sort.Sort(runeSlice(merged))
	return merged, true
}

func genericString(m Matcher) string {
	rs, ok := m.AppendRunes(nil)
	if !ok {
		return "[?]"
	}
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, r := range rs {
		if i > 0 {
			buf.WriteByte(' ')
		}
		writeRuneLiteral(&buf, r)
	}
	buf.WriteByte(']')
	return buf.String()
}

func writeRuneLiteral(buf *bytes.Buffer, r rune) {
	switch r {
	case EOI:
		buf.WriteString("EOI")
		return
	case Empty:
		buf.WriteString("ε")
		return
	case '\n':
		buf.WriteString(`'\n'`)
		return
	case '\r':
		buf.WriteString(`'\r'`)
		return
	case '\t':
		buf.WriteString(`'\t'`)
		return
	}
	if r == '\\' || r == '\'' {
		buf.WriteByte('\'')
		buf.WriteByte('\\')
		buf.WriteRune(r)
		buf.WriteByte('\'')
	} else if unicode.IsPrint(r) {
		buf.WriteByte('\'')
		buf.WriteRune(r)
		buf.WriteByte('\'')
	} else {
		fmt.Fprintf(buf, "$%04x", r)
	}
}
