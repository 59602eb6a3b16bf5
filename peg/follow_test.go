package peg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeaudit/parboiled/charset"
)

func TestCurrentFollowerChars_Repetition(t *testing.T) {
	var followers charset.Matcher
	rec := probe("rec", func(ctx *MatcherContext) bool {
		followers = ctx.CurrentFollowerChars()
		return true
	})

	// inside the loop body, what may come next is another iteration or
	// whatever follows the loop, here: end of input
	rule := ZeroOrMore(Sequence(Ch('a'), rec))
	require.True(t, (&Parser{}).Parse(rule, "a").Matched)

	require.NotNil(t, followers)
	assert.True(t, followers.Match('a'))
	assert.True(t, followers.Match(charset.EOI))
	assert.False(t, followers.Match('b'))
	assert.False(t, followers.Match(charset.Empty))
}

func TestCurrentFollowerChars_WalksPastOptional(t *testing.T) {
	var followers charset.Matcher
	rec := probe("rec", func(ctx *MatcherContext) bool {
		followers = ctx.CurrentFollowerChars()
		return true
	})

	// the inner Optional's follower set is only Empty, so it puts no
	// constraint on what comes next and the walk continues to the outer
	// repetition before closing over EOI
	rule := ZeroOrMore(Sequence(Ch('a'), Optional(Sequence(Ch('b'), rec))))
	require.True(t, (&Parser{}).Parse(rule, "ab").Matched)

	require.NotNil(t, followers)
	assert.True(t, followers.Match('a'), "outer repetition may continue")
	assert.True(t, followers.Match(charset.EOI))
	assert.False(t, followers.Match('b'))
}

func TestCurrentFollowerChars_NoFollowFrames(t *testing.T) {
	var followers charset.Matcher
	rec := probe("rec", func(ctx *MatcherContext) bool {
		followers = ctx.CurrentFollowerChars()
		return true
	})
	rule := Sequence(Ch('a'), rec)
	require.True(t, (&Parser{}).Parse(rule, "a").Matched)

	require.NotNil(t, followers)
	assert.True(t, followers.Match(charset.EOI))
	assert.False(t, followers.Match('a'))
	assert.False(t, followers.Match(charset.Empty))
}

func TestRecoveringHandler_InsertsSingleCandidate(t *testing.T) {
	// "b" is the only character that can repair the input, so the
	// handler injects it virtually and the parse continues
	rule := Label(SequenceCut(0, Ch('a'), Ch('b'), Ch('c')), "S")
	parser := &Parser{Handler: &RecoveringHandler{}}

	result := parser.Parse(rule, "ac")
	require.True(t, result.Matched)
	require.Len(t, result.ParseErrors, 1)
	assert.Contains(t, result.ParseErrors[0].Message, `Expected 'b'`)
	assert.Equal(t, 1, result.ParseErrors[0].Location.Index())
}

func TestRecoveringHandler_ResyncsToFollowerSet(t *testing.T) {
	// inside the repetition the follower set is {'a', EOI}; after the
	// junk character the handler skips forward to the next 'a'
	inner := Label(SequenceCut(0, Ch('a'), FirstOf(Ch('x'), Ch('y'))), "pair")
	rule := ZeroOrMore(inner)
	parser := &Parser{Handler: &RecoveringHandler{}}

	result := parser.Parse(rule, "abax")
	require.True(t, result.Matched)
	assert.Equal(t, 4, result.Root.EndLocation().Index())
	require.Len(t, result.ParseErrors, 1)
	assert.Equal(t, 1, result.ParseErrors[0].Location.Index())
}

func TestRecoveringHandler_ResyncsToEOI(t *testing.T) {
	rule := Label(SequenceCut(0, Ch('a'), FirstOf(Ch('x'), Ch('y'))), "S")
	parser := &Parser{Handler: &RecoveringHandler{}}

	result := parser.Parse(rule, "aqq")
	require.True(t, result.Matched)
	assert.Equal(t, 3, result.Root.EndLocation().Index())
	require.Len(t, result.ParseErrors, 1)
}
