package charset

import (
	"testing"
)

type matchRow struct {
	Input    rune
	Expected bool
}

func runMatchTests(t *testing.T, m Matcher, data []matchRow) {
	t.Helper()
	for i, row := range data {
		actual := m.Match(row.Input)
		if row.Expected != actual {
			t.Errorf("%s/%03d: %q: expected %v, got %v", t.Name(), i, row.Input, row.Expected, actual)
		}
	}
}

func runAppendTests(t *testing.T, m Matcher, expected []rune, expectedOK bool) {
	t.Helper()
	actual, ok := m.AppendRunes(nil)
	if ok != expectedOK {
		t.Errorf("%s: expected ok=%v, got %v", t.Name(), expectedOK, ok)
		return
	}
	if string(actual) != string(expected) {
		t.Errorf("%s: expected %q, got %q", t.Name(), string(expected), string(actual))
	}
}

func TestAll_Match(t *testing.T) {
	m := All()
	runMatchTests(t, m, []matchRow{
		{'0', true},
		{'A', true},
		{'z', true},
		{' ', true},
		{'é', true},
		{EOI, true},
		{Empty, true},
	})
}

func TestAll_AppendRunes(t *testing.T) {
	runAppendTests(t, All(), nil, false)
}

func TestAll_String(t *testing.T) {
	if actual := All().String(); actual != "." {
		t.Errorf("%s: expected %q, got %q", t.Name(), ".", actual)
	}
}

func TestNone_Match(t *testing.T) {
	m := None()
	runMatchTests(t, m, []matchRow{
		{'0', false},
		{'A', false},
		{EOI, false},
		{Empty, false},
	})
}

func TestNone_AppendRunes(t *testing.T) {
	runAppendTests(t, None(), nil, true)
}

func TestNone_String(t *testing.T) {
	if actual := None().String(); actual != "!." {
		t.Errorf("%s: expected %q, got %q", t.Name(), "!.", actual)
	}
}

func TestExactly_Match(t *testing.T) {
	m := Exactly('x')
	runMatchTests(t, m, []matchRow{
		{'x', true},
		{'X', false},
		{'y', false},
		{EOI, false},
	})
}

func TestExactly_AppendRunes(t *testing.T) {
	runAppendTests(t, Exactly('x'), []rune{'x'}, true)
}

func TestRanges_Match(t *testing.T) {
	m := Ranges(Range{'0', '9'}, Range{'a', 'f'})
	runMatchTests(t, m, []matchRow{
		{'0', true},
		{'5', true},
		{'9', true},
		{'a', true},
		{'f', true},
		{'g', false},
		{'A', false},
		{'/', false},
		{':', false},
	})
}

func TestRanges_Coalesce(t *testing.T) {
	// adjacent and overlapping ranges merge into one
	m := Ranges(Range{'a', 'c'}, Range{'d', 'f'}, Range{'b', 'e'}).(*mRange)
	if len(m.Ranges) != 1 {
		t.Fatalf("%s: expected 1 coalesced range, got %d", t.Name(), len(m.Ranges))
	}
	if m.Ranges[0].Lo != 'a' || m.Ranges[0].Hi != 'f' {
		t.Errorf("%s: expected [a..f], got [%c..%c]", t.Name(), m.Ranges[0].Lo, m.Ranges[0].Hi)
	}
}

func TestRanges_AppendRunes(t *testing.T) {
	runAppendTests(t, Ranges(Range{'a', 'c'}), []rune{'a', 'b', 'c'}, true)
}

func TestRanges_Optimize(t *testing.T) {
	if _, ok := Ranges().Optimize().(*mNone); !ok {
		t.Errorf("%s: empty ranges should optimize to None", t.Name())
	}
	if _, ok := Ranges(Range{'x', 'x'}).Optimize().(*mExact); !ok {
		t.Errorf("%s: single-rune range should optimize to Exactly", t.Name())
	}
}

func TestSet_Match(t *testing.T) {
	m := Set('+', '-', EOI)
	runMatchTests(t, m, []matchRow{
		{'+', true},
		{'-', true},
		{EOI, true},
		{'*', false},
		{Empty, false},
	})
}

func TestSet_AppendRunes(t *testing.T) {
	runAppendTests(t, Set('c', 'a', 'b', 'a'), []rune{'a', 'b', 'c'}, true)
}

func TestSet_Optimize(t *testing.T) {
	if _, ok := Set().Optimize().(*mNone); !ok {
		t.Errorf("%s: empty set should optimize to None", t.Name())
	}
	if _, ok := Set('q').Optimize().(*mExact); !ok {
		t.Errorf("%s: single-rune set should optimize to Exactly", t.Name())
	}
}

func TestOr_Match(t *testing.T) {
	m := Or(Exactly('a'), Ranges(Range{'0', '9'}))
	runMatchTests(t, m, []matchRow{
		{'a', true},
		{'0', true},
		{'9', true},
		{'b', false},
	})
}

func TestOr_AppendRunes(t *testing.T) {
	runAppendTests(t, Or(Exactly('b'), Exactly('a'), Exactly('b')), []rune{'a', 'b'}, true)
	runAppendTests(t, Or(Exactly('a'), All()), nil, false)
}

func TestOr_Optimize(t *testing.T) {
	if _, ok := Or().Optimize().(*mNone); !ok {
		t.Errorf("%s: empty union should optimize to None", t.Name())
	}
	if _, ok := Or(Exactly('a'), Exactly('b')).Optimize().(*mSparse); !ok {
		t.Errorf("%s: enumerable union should optimize to Set", t.Name())
	}
}

func TestAnd_Match(t *testing.T) {
	m := And(Ranges(Range{'0', '9'}), Not(Exactly('5')))
	runMatchTests(t, m, []matchRow{
		{'0', true},
		{'4', true},
		{'5', false},
		{'9', true},
		{'a', false},
	})
}

func TestAnd_AppendRunes(t *testing.T) {
	runAppendTests(t, And(Ranges(Range{'0', '3'}), Not(Exactly('2'))), []rune{'0', '1', '3'}, true)
	runAppendTests(t, And(All(), Not(Exactly('x'))), nil, false)
}

func TestNot_Match(t *testing.T) {
	m := Not(Exactly('a'))
	runMatchTests(t, m, []matchRow{
		{'a', false},
		{'b', true},
		{EOI, true},
		{Empty, true},
	})
}

func TestNot_Optimize(t *testing.T) {
	if _, ok := Not(All()).Optimize().(*mNone); !ok {
		t.Errorf("%s: !All should optimize to None", t.Name())
	}
	if _, ok := Not(None()).Optimize().(*mAll); !ok {
		t.Errorf("%s: !None should optimize to All", t.Name())
	}
	inner := Exactly('q')
	if Not(Not(inner)).Optimize() != inner {
		t.Errorf("%s: double negation should unwrap", t.Name())
	}
}

func TestNot_String(t *testing.T) {
	if actual := Not(Exactly('a')).String(); actual != "!['a']" {
		t.Errorf("%s: expected %q, got %q", t.Name(), "!['a']", actual)
	}
}

func TestString_Sentinels(t *testing.T) {
	if actual := Set(EOI).String(); actual != "[EOI]" {
		t.Errorf("%s: expected %q, got %q", t.Name(), "[EOI]", actual)
	}
	if actual := Set(Empty).String(); actual != "[ε]" {
		t.Errorf("%s: expected %q, got %q", t.Name(), "[ε]", actual)
	}
}
