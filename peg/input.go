package peg

import (
	"sort"

	"github.com/codeaudit/parboiled/charset"
)

// InputBuffer is a random-access view of the text being parsed. Reads past
// the end of the text yield charset.EOI. The buffer is immutable for the
// duration of a parse.
type InputBuffer struct {
	text       []rune
	lineStarts []int
}

// NewInputBuffer wraps the given text for parsing.
func NewInputBuffer(text string) *InputBuffer {
	runes := []rune(text)
	starts := []int{0}
	for i, r := range runes {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &InputBuffer{text: runes, lineStarts: starts}
}

// CharAt returns the rune at the given index, or charset.EOI if the index
// lies at or past the end of the text.
func (b *InputBuffer) CharAt(index int) rune {
	if index < 0 || index >= len(b.text) {
		return charset.EOI
	}
	return b.text[index]
}

// Len returns the number of runes in the buffer.
func (b *InputBuffer) Len() int {
	return len(b.text)
}

// Text extracts the input text between the two locations. Indices are
// clamped to the buffer bounds.
func (b *InputBuffer) Text(start, end *InputLocation) string {
	if start == nil || end == nil {
		return ""
	}
	lo, hi := start.index, end.index
	if lo < 0 {
		lo = 0
	}
	if hi > len(b.text) {
		hi = len(b.text)
	}
	if lo >= hi {
		return ""
	}
	return string(b.text[lo:hi])
}

// LineText returns the text of the given zero-based line, without its
// trailing newline.
func (b *InputBuffer) LineText(row int) string {
	if row < 0 || row >= len(b.lineStarts) {
		return ""
	}
	start := b.lineStarts[row]
	end := len(b.text)
	if row+1 < len(b.lineStarts) {
		end = b.lineStarts[row+1] - 1
	}
	if start > end {
		start = end
	}
	return string(b.text[start:end])
}

// Position maps a linear index to its zero-based (row, column) pair.
func (b *InputBuffer) Position(index int) (row, column int) {
	if index < 0 {
		return 0, 0
	}
	row = sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > index
	}) - 1
	return row, index - b.lineStarts[row]
}

// InputLocation is a cursor into an InputBuffer. Locations are immutable;
// advancing an ordinary location and inserting a virtual character always
// return a new location, while advancing a virtual location returns the
// existing location it was inserted in front of.
// Two *InputLocation values denote the same position iff they are the same
// pointer, which is the emptiness probe used by the repetition and
// predicate matchers.
type InputLocation struct {
	index  int
	row    int
	column int
	char   rune

	// next links a virtual location back to the location it was inserted
	// in front of. Nil for ordinary locations.
	next *InputLocation
}

// NewInputLocation returns a location pointing at the start of the buffer.
func NewInputLocation(buf *InputBuffer) *InputLocation {
	return &InputLocation{char: buf.CharAt(0)}
}

// Index returns the linear rune index of this location.
func (l *InputLocation) Index() int { return l.index }

// Row returns the zero-based line number of this location.
func (l *InputLocation) Row() int { return l.row }

// Column returns the zero-based column of this location.
func (l *InputLocation) Column() int { return l.column }

// Char returns the character at this location, or charset.EOI past the end
// of the input.
func (l *InputLocation) Char() rune { return l.char }

// Advance returns the location one character further into the input. For a
// virtual location it returns the location the virtual character was
// inserted in front of.
func (l *InputLocation) Advance(buf *InputBuffer) *InputLocation {
	if l.next != nil {
		return l.next
	}
	row, column := l.row, l.column+1
	if l.char == '\n' {
		row, column = l.row+1, 0
	}
	return &InputLocation{
		index:  l.index + 1,
		row:    row,
		column: column,
		char:   buf.CharAt(l.index + 1),
	}
}

// InsertVirtualChar returns a location presenting c as the current
// character without consuming any real input. Advancing past it resumes at
// this location.
func (l *InputLocation) InsertVirtualChar(c rune) *InputLocation {
	return &InputLocation{
		index:  l.index,
		row:    l.row,
		column: l.column,
		char:   c,
		next:   l,
	}
}

// InsertVirtualText returns a location presenting each character of text in
// order before resuming at this location.
func (l *InputLocation) InsertVirtualText(text string) *InputLocation {
	runes := []rune(text)
	loc := l
	for i := len(runes) - 1; i >= 0; i-- {
		loc = loc.InsertVirtualChar(runes[i])
	}
	return loc
}
