package peg

import (
	"bytes"
	"strings"
)

// NodeText returns the input text covered by the given node.
func NodeText(node *Node, buf *InputBuffer) string {
	if node == nil {
		return ""
	}
	return buf.Text(node.StartLocation(), node.EndLocation())
}

// NodeChar returns the first input character covered by the given node,
// which is the whole of a single-character terminal node.
func NodeChar(node *Node, buf *InputBuffer) rune {
	if node == nil {
		return 0
	}
	return buf.CharAt(node.StartLocation().Index())
}

// FindNodeByLabel returns the first node (depth-first, pre-order) among
// the given nodes and their descendants whose label starts with
// labelPrefix, or nil.
func FindNodeByLabel(nodes []*Node, labelPrefix string) *Node {
	for _, node := range nodes {
		if strings.HasPrefix(node.Label(), labelPrefix) {
			return node
		}
		if found := FindNodeByLabel(node.SubNodes(), labelPrefix); found != nil {
			return found
		}
	}
	return nil
}

// FindNodeByPath descends through the given nodes along a '/'-separated
// chain of label prefixes and returns the node the last element selects,
// or nil. For example "term/factor/number" selects the first "number"
// node under the first "factor" node under the first "term" node.
func FindNodeByPath(nodes []*Node, path string) *Node {
	elements := strings.Split(path, "/")
	var found *Node
	for _, element := range elements {
		found = nil
		for _, node := range nodes {
			if strings.HasPrefix(node.Label(), element) {
				found = node
				break
			}
		}
		if found == nil {
			return nil
		}
		nodes = found.SubNodes()
	}
	return found
}

// DumpTree renders the node and its descendants as an indented listing,
// one node per line, with the matched text of each node appended.
func DumpTree(node *Node, buf *InputBuffer) string {
	var out bytes.Buffer
	dumpTree(&out, node, buf, 0)
	return out.String()
}

func dumpTree(out *bytes.Buffer, node *Node, buf *InputBuffer, indent int) {
	if node == nil {
		return
	}
	for i := 0; i < indent; i++ {
		out.WriteString("    ")
	}
	out.WriteString(node.Label())
	out.WriteString(" '")
	out.WriteString(NodeText(node, buf))
	out.WriteString("'\n")
	for _, sub := range node.SubNodes() {
		dumpTree(out, sub, buf, indent+1)
	}
}
