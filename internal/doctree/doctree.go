package doctree

import "strings"

// Heading is a single heading marker taken from a document, in source order.
type Heading struct {
	Level int    // 1-6
	Text  string // Heading text without the marker prefix
}

// HeadingNode is a heading with its nested subheadings.
type HeadingNode struct {
	Level    int            `json:"level"`
	Text     string         `json:"text"`
	Children []*HeadingNode `json:"children"`
}

// Label is the node's marker-depth prefix followed by its text, e.g. "## Install".
func (n *HeadingNode) Label() string {
	return strings.Repeat("#", n.Level) + " " + n.Text
}

// IsLeaf reports whether the node has no subheadings.
func (n *HeadingNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// Build nests a flat heading sequence into a forest.
//
// Each heading closes every open heading at the same or a deeper level; what is
// left on the stack is its parent. Skipped levels nest under the nearest
// shallower heading.
func Build(headings []Heading) []*HeadingNode {
	roots := []*HeadingNode{}
	var stack []*HeadingNode

	for _, h := range headings {
		node := &HeadingNode{Level: h.Level, Text: h.Text, Children: []*HeadingNode{}}

		for len(stack) > 0 && stack[len(stack)-1].Level >= h.Level {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			roots = append(roots, node)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
		}
		stack = append(stack, node)
	}

	return roots
}

// LeafPaths returns one "/"-joined label chain per leaf heading, depth-first in
// document order.
func LeafPaths(forest []*HeadingNode) []string {
	paths := []string{}
	for _, root := range forest {
		paths = walkLeaves(root, nil, paths)
	}
	return paths
}

func walkLeaves(node *HeadingNode, prefix []string, out []string) []string {
	chain := append(copyLabels(prefix), node.Label())
	if node.IsLeaf() {
		return append(out, strings.Join(chain, "/"))
	}
	for _, child := range node.Children {
		out = walkLeaves(child, chain, out)
	}
	return out
}

func copyLabels(labels []string) []string {
	out := make([]string, len(labels), len(labels)+1)
	copy(out, labels)
	return out
}

// CountLeaves returns the number of leaf nodes in the forest.
func CountLeaves(forest []*HeadingNode) int {
	n := 0
	for _, node := range forest {
		if node.IsLeaf() {
			n++
			continue
		}
		n += CountLeaves(node.Children)
	}
	return n
}

// Outline renders the forest as an indented list, two spaces per nesting depth.
func Outline(forest []*HeadingNode) string {
	var sb strings.Builder
	var write func(nodes []*HeadingNode, depth int)
	write = func(nodes []*HeadingNode, depth int) {
		for _, n := range nodes {
			sb.WriteString(strings.Repeat("  ", depth))
			sb.WriteString(n.Label())
			sb.WriteString("\n")
			write(n.Children, depth+1)
		}
	}
	write(forest, 0)
	return sb.String()
}
