package peg

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/codeaudit/parboiled/charset"
)

// parseRun holds the state shared by every context frame of one parse:
// the input, the append-only error list, the one-slot last-node cell, the
// error-handler strategy and the parser facade. One instance per parse.
type parseRun struct {
	buffer      *InputBuffer
	parseErrors []*ParseError
	lastNode    *Node
	handler     ParseErrorHandler
	parser      *Parser
	logger      *logrus.Logger
}

// MatcherContext is the per-invocation companion of a matcher: one frame
// of the rule stack. It tracks the cursor window of its matcher, collects
// child parse-tree nodes, carries the value set by semantic actions and
// the enforcement flag for error recovery.
//
// Frames are pooled down the spine: every depth level owns a single
// reusable sub-frame, so a parse allocates O(maxDepth) frames no matter
// how many rule invocations it performs. A frame is active while its
// matcher is non-nil; RunMatcher retires the frame on return, which marks
// it reusable for the parent's next child binding.
type MatcherContext struct {
	run        *parseRun
	parent     *MatcherContext
	subContext *MatcherContext
	level      int

	matcher         Matcher
	startLocation   *InputLocation
	currentLocation *InputLocation
	node            *Node
	subNodes        []*Node
	nodeValue       interface{}
	intTag          int
	belowLeafLevel  bool
	enforced        bool
}

func newRootContext(run *parseRun, matcher Matcher) *MatcherContext {
	loc := NewInputLocation(run.buffer)
	return &MatcherContext{
		run:             run,
		matcher:         unwrapProxy(matcher),
		startLocation:   loc,
		currentLocation: loc,
	}
}

func (c *MatcherContext) String() string { return c.Path().String() }

// Parent returns the enclosing frame, or nil at the root.
func (c *MatcherContext) Parent() *MatcherContext { return c.parent }

// SubContext returns the currently active child frame, or nil if the
// child slot is retired.
func (c *MatcherContext) SubContext() *MatcherContext {
	if c.subContext != nil && c.subContext.matcher != nil {
		return c.subContext
	}
	return nil
}

// InputBuffer returns the input being parsed.
func (c *MatcherContext) InputBuffer() *InputBuffer { return c.run.buffer }

// Parser returns the parser facade owning this parse run.
func (c *MatcherContext) Parser() *Parser { return c.run.parser }

// Matcher returns the matcher being executed in this frame, or nil if the
// frame is retired.
func (c *MatcherContext) Matcher() Matcher { return c.matcher }

// Level returns the nesting depth of this frame, zero at the root.
func (c *MatcherContext) Level() int { return c.level }

// StartLocation returns the cursor position at frame entry.
func (c *MatcherContext) StartLocation() *InputLocation { return c.startLocation }

// CurrentLocation returns the current cursor position.
func (c *MatcherContext) CurrentLocation() *InputLocation { return c.currentLocation }

// SetCurrentLocation moves the cursor. Matchers use it to roll back or to
// resynchronise during error recovery.
func (c *MatcherContext) SetCurrentLocation(location *InputLocation) {
	c.currentLocation = location
}

// CurrentChar returns the character at the current cursor position.
func (c *MatcherContext) CurrentChar() rune { return c.currentLocation.Char() }

// AdvanceInputLocation moves the cursor one character forward.
func (c *MatcherContext) AdvanceInputLocation() {
	c.currentLocation = c.currentLocation.Advance(c.run.buffer)
}

// InjectVirtualChar inserts a synthetic character in front of the current
// cursor position, without consuming real input.
func (c *MatcherContext) InjectVirtualChar(char rune) {
	c.currentLocation = c.currentLocation.InsertVirtualChar(char)
}

// InjectVirtualText inserts synthetic text in front of the current cursor
// position, without consuming real input.
func (c *MatcherContext) InjectVirtualText(text string) {
	c.currentLocation = c.currentLocation.InsertVirtualText(text)
}

// ParseErrors returns the parse errors recorded so far, in discovery
// order. The returned slice must not be modified.
func (c *MatcherContext) ParseErrors() []*ParseError { return c.run.parseErrors }

// AddParseError appends an error to the shared per-parse error list.
func (c *MatcherContext) AddParseError(err *ParseError) {
	c.run.parseErrors = append(c.run.parseErrors, err)
}

// Node returns this frame's own parse-tree node, if CreateNode built one.
func (c *MatcherContext) Node() *Node { return c.node }

// SubNodes returns a snapshot of the child nodes collected so far.
func (c *MatcherContext) SubNodes() []*Node {
	if c.subNodes == nil {
		return nil
	}
	out := make([]*Node, len(c.subNodes))
	copy(out, c.subNodes)
	return out
}

// LastNode returns the most recently created parse-tree node of the whole
// parse run.
func (c *MatcherContext) LastNode() *Node { return c.run.lastNode }

// NodeText returns the input text covered by the given node.
func (c *MatcherContext) NodeText(node *Node) string { return NodeText(node, c.run.buffer) }

// NodeChar returns the first input character covered by the given node.
func (c *MatcherContext) NodeChar(node *Node) rune { return NodeChar(node, c.run.buffer) }

// NodeByLabel returns the first node (depth-first, pre-order) among the
// child nodes collected so far and their descendants whose label starts
// with labelPrefix, or nil.
func (c *MatcherContext) NodeByLabel(labelPrefix string) *Node {
	return FindNodeByLabel(c.subNodes, labelPrefix)
}

// NodeByPath descends through the collected child nodes along the given
// '/'-separated chain of label prefixes.
func (c *MatcherContext) NodeByPath(path string) *Node {
	return FindNodeByPath(c.subNodes, path)
}

// NodeValue returns the value set on this frame by semantic actions.
func (c *MatcherContext) NodeValue() interface{} { return c.nodeValue }

// SetNodeValue attaches a value to this frame; it becomes the tree value
// of the node created for it.
func (c *MatcherContext) SetNodeValue(value interface{}) { c.nodeValue = value }

// TreeValue returns this frame's explicit value if one was set, else the
// value of the last child node that carries one.
func (c *MatcherContext) TreeValue() interface{} {
	treeValue := c.nodeValue
	for i := len(c.subNodes) - 1; treeValue == nil && i >= 0; i-- {
		treeValue = c.subNodes[i].Value()
	}
	return treeValue
}

// IntTag returns the scratch integer available to semantic actions.
func (c *MatcherContext) IntTag() int { return c.intTag }

// SetIntTag sets the scratch integer available to semantic actions.
func (c *MatcherContext) SetIntTag(tag int) { c.intTag = tag }

// IsBelowLeafLevel reports whether this frame runs below a leaf rule and
// therefore produces no parse-tree nodes.
func (c *MatcherContext) IsBelowLeafLevel() bool { return c.belowLeafLevel }

// IsEnforced reports whether a failure of this frame is routed through the
// error handler.
func (c *MatcherContext) IsEnforced() bool { return c.enforced }

// SetEnforcement requests error recovery for failures of this frame and of
// sub-contexts bound after this call.
func (c *MatcherContext) SetEnforcement() { c.enforced = true }

// ClearEnforcement switches failures of this frame and of sub-contexts
// bound after this call back to normal match-failure semantics.
func (c *MatcherContext) ClearEnforcement() { c.enforced = false }

// Path returns the chain of matcher labels from the root to this frame.
func (c *MatcherContext) Path() *MatcherPath { return newMatcherPath(c) }

// InPredicate reports whether this frame or any of its ancestors is a
// Test/TestNot frame.
func (c *MatcherContext) InPredicate() bool {
	if _, ok := c.matcher.(*TestMatcher); ok {
		return true
	}
	return c.parent != nil && c.parent.InPredicate()
}

// CurrentFollowerChars computes the set of characters that may legally
// follow at the current stack state. It walks the live stack parent-ward,
// unioning the follower sets of every FollowMatcher frame, and stops as
// soon as the accumulated set no longer admits Empty (the computation has
// become complete), returning that set as it is. If the walk reaches the
// root instead, Empty is removed from the result and EOI is added.
func (c *MatcherContext) CurrentFollowerChars() charset.Matcher {
	chars := charset.None()
	for frame := c; frame != nil; frame = frame.parent {
		if follow, ok := frame.matcher.(FollowMatcher); ok {
			chars = charset.Or(chars, follow.FollowerChars(frame))
			if !chars.Match(charset.Empty) {
				return chars.Optimize()
			}
		}
	}
	return charset.Or(withoutEmpty(chars), charset.Exactly(charset.EOI)).Optimize()
}

// CreateNode builds this frame's parse-tree node and attaches it to the
// parent. No node is produced below leaf level or inside a predicate
// frame; a node-less matcher forwards its children to the parent instead.
func (c *MatcherContext) CreateNode() {
	if c.belowLeafLevel || c.InPredicate() {
		return
	}
	if c.matcher.IsWithoutNode() {
		if c.parent != nil {
			c.parent.AddChildNodes(c.subNodes)
		}
		return
	}
	c.node = &Node{
		label:    c.matcher.Label(),
		subNodes: c.subNodes,
		start:    c.startLocation,
		end:      c.currentLocation,
		value:    c.TreeValue(),
	}
	if c.parent != nil {
		c.parent.AddChildNode(c.node)
	}
	c.run.lastNode = c.node
}

// AddChildNode appends one node to this frame's children.
func (c *MatcherContext) AddChildNode(node *Node) {
	c.subNodes = append(c.subNodes, node)
}

// AddChildNodes appends the given nodes to this frame's children.
func (c *MatcherContext) AddChildNodes(nodes []*Node) {
	if len(nodes) == 0 {
		return
	}
	c.subNodes = append(c.subNodes, nodes...)
}

// BindSub prepares this frame's reusable sub-frame for the given matcher
// and returns it. The sub-frame starts at the current cursor position,
// inherits leaf suppression and enforcement, and unwraps any proxy around
// the matcher.
func (c *MatcherContext) BindSub(matcher Matcher) *MatcherContext {
	if c.subContext == nil {
		// introduce a new level
		c.subContext = &MatcherContext{run: c.run, parent: c, level: c.level + 1}
	}

	// normally the existing sub-frame is simply reused
	sub := c.subContext
	sub.matcher = unwrapProxy(matcher)
	sub.startLocation = c.currentLocation
	sub.currentLocation = c.currentLocation
	sub.node = nil
	sub.subNodes = nil
	sub.nodeValue = nil
	sub.belowLeafLevel = c.belowLeafLevel || c.matcher.IsLeaf()
	sub.enforced = c.enforced
	return sub
}

// RunMatcher executes this frame's matcher and commits the cursor to the
// parent on success. Failures under enforcement are routed through the
// error handler; action failures are recorded as parse errors and treated
// as plain match failures; unexpected panics are wrapped once into a
// RuntimeError and unwound to the root. On return the frame is retired
// and reusable by its parent.
func (c *MatcherContext) RunMatcher() bool {
	if log := c.run.logger; log != nil && log.IsLevelEnabled(logrus.TraceLevel) {
		log.WithFields(logrus.Fields{
			"rule":  c.matcher.Label(),
			"index": c.currentLocation.Index(),
		}).Trace("running matcher")
	}

	matched := c.matchSafely()

	if matched && c.parent != nil {
		c.parent.currentLocation = c.currentLocation
	}
	// "retire" this frame until the parent binds its next child into it
	c.matcher = nil
	return matched
}

func (c *MatcherContext) matchSafely() (matched bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch fault := r.(type) {
		case *ActionError:
			// action failure is a recoverable match failure
			c.AddParseError(&ParseError{
				Location: c.currentLocation,
				Path:     c.Path(),
				Message:  fault.Message,
			})
			matched = false
		case *RuntimeError:
			panic(fault) // already wrapped, just bubble up
		default:
			kind := "rule"
			if _, isAction := c.matcher.(*ActionMatcher); isAction {
				kind = "action"
			}
			rendered := FormatParseError(&ParseError{
				Location: c.currentLocation,
				Path:     c.Path(),
				Message:  fmt.Sprintf("Error during execution of parsing %s '%s' at input position", kind, c.Path()),
			}, c.run.buffer)
			panic(wrapFault(r, rendered))
		}
	}()

	matched = c.matcher.Match(c)
	if !matched && c.enforced {
		matched = c.run.handler.HandleParseError(c)
	}
	return matched
}
