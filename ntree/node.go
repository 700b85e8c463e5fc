// Package ntree implements the N-gram prediction tree that package ntsf
// serializes. A tree is rooted; traversing a path from the root labeled by
// successive words yields an n-gram, and a node's children are the known
// continuations of that n-gram.
//
// Unlike the compressed radix trie this package is adapted from, an edge
// here is always one whole word: n-gram continuations are word-granular,
// so there is no common-prefix split step the way a character trie needs
// one.
package ntree

import "github.com/ngramtree/ntsf/ntsf"

// Node is one n-gram tree node: a word label, its ordered children, and an
// observation count used only by Predict (never part of the NTSF wire
// format).
type Node struct {
	label    string
	children []*Node
	count    int
}

// Tree wraps a root Node plus a running node count, mirroring the shape of
// the teacher's Tree{root, N}.
type Tree struct {
	Root *Node
	N    int
}

// RootLabel is the sentence-start label carried by every tree's root node.
// The wire format has no concept of a label-less node (a standard block
// requires at least one ASCII label byte, and bank entries must be
// non-empty too), so the root needs a real label like any other node.
const RootLabel = "<s>"

// NewTree creates an empty tree with just a root node, ready for
// ingestion via Learn.
func NewTree() *Tree {
	return &Tree{Root: &Node{label: RootLabel}, N: 1}
}

// Label returns the node's word label. Satisfies ntsf.Node.
func (n *Node) Label() string { return n.label }

// ChildCount returns the number of children. Satisfies ntsf.Node.
func (n *Node) ChildCount() int { return len(n.children) }

// Children returns the node's children as the codec-facing ntsf.Node
// interface, in insertion order. Satisfies ntsf.Node.
func (n *Node) Children() []ntsf.Node {
	out := make([]ntsf.Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// Count returns how many times this node's path was observed by Learn.
func (n *Node) Count() int { return n.count }

// childByLabel returns the existing child labeled word, or nil.
func (n *Node) childByLabel(word string) *Node {
	for _, c := range n.children {
		if c.label == word {
			return c
		}
	}
	return nil
}
