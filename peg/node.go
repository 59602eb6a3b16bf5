package peg

import (
	"bytes"
	"fmt"
)

// Node is one node of the parse tree. Nodes are immutable once created.
type Node struct {
	label    string
	subNodes []*Node
	start    *InputLocation
	end      *InputLocation
	value    interface{}
}

// Label returns the label of the matcher that created this node.
func (n *Node) Label() string { return n.label }

// SubNodes returns the child nodes in left-to-right match order. The
// returned slice must not be modified.
func (n *Node) SubNodes() []*Node { return n.subNodes }

// StartLocation returns the input location where the match began.
func (n *Node) StartLocation() *InputLocation { return n.start }

// EndLocation returns the input location just past the matched text.
func (n *Node) EndLocation() *InputLocation { return n.end }

// Value returns the tree value this node was created with: the owning
// context's explicit value if one was set, else the value of the last
// child that carried one.
func (n *Node) Value() interface{} { return n.value }

// String provides a programmer-friendly debugging string for the Node.
func (n *Node) String() string {
	var buf bytes.Buffer
	buf.WriteByte('{')
	fmt.Fprintf(&buf, "%s (%d,%d)", n.label, n.start.Index(), n.end.Index())
	if n.value != nil {
		fmt.Fprintf(&buf, " value=%v", n.value)
	}
	if len(n.subNodes) != 0 {
		buf.WriteByte(' ')
		buf.WriteByte('[')
		first := true
		for _, sub := range n.subNodes {
			if !first {
				buf.WriteByte(' ')
			}
			buf.WriteString(sub.label)
			first = false
		}
		buf.WriteByte(']')
	}
	buf.WriteByte('}')
	return buf.String()
}
