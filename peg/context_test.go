package peg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeaudit/parboiled/charset"
)

// funcMatcher lets tests observe and manipulate the context mid-parse.
type funcMatcher struct {
	baseMatcher
	fn func(ctx *MatcherContext) bool
}

var _ Matcher = (*funcMatcher)(nil)

func probe(label string, fn func(ctx *MatcherContext) bool) *funcMatcher {
	return &funcMatcher{baseMatcher{label: label}, fn}
}

func (m *funcMatcher) Match(ctx *MatcherContext) bool { return m.fn(ctx) }
func (m *funcMatcher) StarterChars() charset.Matcher  { return charset.All() }
func (m *funcMatcher) Children() []Matcher            { return nil }

func newTestRun(input string) *parseRun {
	return &parseRun{buffer: NewInputBuffer(input), handler: ReportingHandler{}}
}

func TestContext_SubContextReuse(t *testing.T) {
	var first, second *MatcherContext
	root := probe("root", func(ctx *MatcherContext) bool {
		first = ctx.BindSub(Ch('a'))
		require.True(t, first.RunMatcher())
		second = ctx.BindSub(Ch('b'))
		require.True(t, second.RunMatcher())
		return true
	})

	run := newTestRun("ab")
	require.True(t, newRootContext(run, root).RunMatcher())

	// one reusable frame per depth level
	assert.True(t, first == second)
	assert.Equal(t, 1, first.Level())
}

func TestContext_Retirement(t *testing.T) {
	root := probe("root", func(ctx *MatcherContext) bool {
		sub := ctx.BindSub(Ch('a'))
		require.NotNil(t, sub.Matcher())
		require.NotNil(t, ctx.SubContext())
		sub.RunMatcher()
		// after RunMatcher returns the frame is retired
		assert.Nil(t, sub.Matcher())
		assert.Nil(t, ctx.SubContext())
		return true
	})
	require.True(t, newRootContext(newTestRun("a"), root).RunMatcher())
}

func TestContext_CommitOnSuccessOnly(t *testing.T) {
	root := probe("root", func(ctx *MatcherContext) bool {
		before := ctx.CurrentLocation()
		require.False(t, ctx.BindSub(Ch('x')).RunMatcher())
		// a failed child leaves the parent's cursor untouched
		assert.True(t, before == ctx.CurrentLocation())

		require.True(t, ctx.BindSub(Ch('a')).RunMatcher())
		// a successful child commits its end location upward
		assert.Equal(t, 1, ctx.CurrentLocation().Index())
		return true
	})
	require.True(t, newRootContext(newTestRun("ab"), root).RunMatcher())
}

func TestContext_BindResetsFrame(t *testing.T) {
	root := probe("root", func(ctx *MatcherContext) bool {
		sub := ctx.BindSub(probe("first", func(c *MatcherContext) bool {
			c.SetNodeValue(42)
			c.SetIntTag(7)
			c.AdvanceInputLocation()
			c.CreateNode()
			return true
		}))
		require.True(t, sub.RunMatcher())

		sub = ctx.BindSub(probe("second", func(c *MatcherContext) bool {
			assert.Nil(t, c.NodeValue())
			assert.Nil(t, c.Node())
			assert.Nil(t, c.SubNodes())
			assert.True(t, c.StartLocation() == c.CurrentLocation())
			assert.Equal(t, 1, c.StartLocation().Index())
			return true
		}))
		require.True(t, sub.RunMatcher())
		return true
	})
	require.True(t, newRootContext(newTestRun("ab"), root).RunMatcher())
}

func TestContext_BelowLeafLevel(t *testing.T) {
	sawBelow := false
	inner := probe("inner", func(ctx *MatcherContext) bool {
		sawBelow = ctx.IsBelowLeafLevel()
		ctx.AdvanceInputLocation()
		ctx.CreateNode()
		return true
	})
	leaf := AsLeaf(Label(Sequence(inner), "leaf"))

	parser := &Parser{}
	result := parser.Parse(leaf, "a")
	require.True(t, result.Matched)
	assert.True(t, sawBelow)

	// the leaf rule itself still produces a node, its subtree does not
	require.NotNil(t, result.Root)
	assert.Equal(t, "leaf", result.Root.Label())
	assert.Empty(t, result.Root.SubNodes())
}

func TestContext_WithoutNodeForwardsChildren(t *testing.T) {
	inner := Suppress(Sequence(Ch('a'), Ch('b')))
	root := Label(Sequence(inner, Ch('c')), "root")

	result := (&Parser{}).Parse(root, "abc")
	require.True(t, result.Matched)
	require.NotNil(t, result.Root)

	labels := make([]string, 0, 3)
	for _, sub := range result.Root.SubNodes() {
		labels = append(labels, sub.Label())
	}
	// the suppressed sequence's children are adopted by the parent,
	// in left-to-right match order
	assert.Equal(t, []string{`'a'`, `'b'`, `'c'`}, labels)
}

func TestContext_TreeValueFold(t *testing.T) {
	withValue := func(label string, c rune, value interface{}) Matcher {
		return Label(Sequence(Ch(c), Do(func(ctx *MatcherContext) (bool, error) {
			ctx.Parent().SetNodeValue(value)
			return true, nil
		})), label)
	}

	root := Label(Sequence(withValue("A", 'a', 1), withValue("B", 'b', 2)), "root")
	result := (&Parser{}).Parse(root, "ab")
	require.True(t, result.Matched)
	// right-biased: the last non-nil child value wins
	assert.Equal(t, 2, result.Root.Value())

	root = Label(Sequence(withValue("A", 'a', 1), Label(Ch('b'), "B")), "root")
	result = (&Parser{}).Parse(root, "ab")
	require.True(t, result.Matched)
	assert.Equal(t, 1, result.Root.Value())
}

func TestContext_LastNode(t *testing.T) {
	run := newTestRun("ab")
	root := newRootContext(run, Label(Sequence(Ch('a'), Ch('b')), "root"))
	require.True(t, root.RunMatcher())

	// the shared one-slot cell holds the last node committed, which is
	// the root's own node
	assert.True(t, run.lastNode == root.Node())
	assert.Equal(t, "root", run.lastNode.Label())
}

func TestContext_Path(t *testing.T) {
	var path string
	inner := probe("inner", func(ctx *MatcherContext) bool {
		path = ctx.Path().String()
		return true
	})
	root := Label(Sequence(Label(Sequence(inner), "mid")), "top")
	require.True(t, (&Parser{}).Parse(root, "").Matched)
	assert.Equal(t, "top/mid/inner", path)
}

func TestContext_InPredicate(t *testing.T) {
	var inPredicate, outside bool
	rec := func(dst *bool) *funcMatcher {
		return probe("rec", func(ctx *MatcherContext) bool {
			*dst = ctx.InPredicate()
			return true
		})
	}
	root := Sequence(
		Test(Sequence(Ch('x'), rec(&inPredicate))),
		Ch('x'),
		rec(&outside),
	)
	require.True(t, (&Parser{}).Parse(root, "x").Matched)
	assert.True(t, inPredicate)
	assert.False(t, outside)
}

func TestContext_EnforcementInheritance(t *testing.T) {
	var enforced []bool
	rec := probe("rec", func(ctx *MatcherContext) bool {
		enforced = append(enforced, ctx.IsEnforced())
		if ctx.CurrentChar() == charset.EOI {
			return false
		}
		ctx.AdvanceInputLocation()
		return true
	})
	root := SequenceCut(0, rec, rec, ZeroOrMore(rec))
	require.True(t, (&Parser{}).Parse(root, "abc").Matched)

	require.GreaterOrEqual(t, len(enforced), 3)
	assert.False(t, enforced[0]) // before the cut
	assert.True(t, enforced[1])  // after the cut
	assert.False(t, enforced[2]) // repetition clears enforcement at entry
}

func TestContext_VirtualInjection(t *testing.T) {
	root := probe("root", func(ctx *MatcherContext) bool {
		ctx.InjectVirtualChar('b')
		require.True(t, ctx.BindSub(Ch('b')).RunMatcher())
		require.True(t, ctx.BindSub(Ch('a')).RunMatcher())
		return true
	})
	require.True(t, newRootContext(newTestRun("a"), root).RunMatcher())
}
