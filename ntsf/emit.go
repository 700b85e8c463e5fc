package ntsf

import (
	"bufio"
	"io"
)

// Serialize writes root's bank preamble followed by a pre-order stream of
// node blocks to w, per spec §6.1. The tree is not mutated; root must not
// be mutated concurrently with this call (spec §5).
func Serialize(w io.Writer, root Node) (err error) {
	defer errRecover(&err)

	if root == nil {
		return fail(KindEmpty, "nil root")
	}

	b := buildBank(root)
	bw := bufio.NewWriter(w)
	if err := writeBank(bw, b); err != nil {
		return err
	}

	addrs := newAddressMap(b)
	emitTree(bw, root, addrs)

	return bw.Flush()
}

// emitTree walks root depth-first with an explicit stack (recursion is
// forbidden here per spec design notes, so traversal depth is independent
// of the host call stack; the stack holds every pending sibling, so its
// peak size is bounded by the tree size) and emits one block per node in
// pre-order. Children are pushed in reverse so the first child popped is
// the first attached by the reconstructor's deflate-stack, matching
// pre-order exactly: a node's whole first-child subtree is emitted before
// its second child.
func emitTree(bw *bufio.Writer, root Node, addrs addressMap) {
	stack := []Node{root}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := emitNode(bw, n, addrs); err != nil {
			panic(err)
		}

		children := n.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}

// emitNode picks standard vs. reference form based on whether the node's
// label is present in the bank's address map, then writes the block.
func emitNode(bw *bufio.Writer, n Node, addrs addressMap) error {
	label := n.Label()
	nChildren := n.ChildCount()

	if addr, ok := addrs[label]; ok {
		return encodeReferenceBlock(bw, addr, nChildren)
	}
	return encodeStandardBlock(bw, label, nChildren)
}
