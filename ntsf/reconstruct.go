package ntsf

import (
	"bufio"
	"io"
)

// frame is a reconstruction frame: a node still expecting `remaining` more
// children to be attached before it is complete. Frames with remaining == 0
// never appear below a frame with remaining > 0; the bottom of the stack is
// always the root until the root itself is complete.
type frame struct {
	node      Node
	remaining int
}

// Deserialize reads a bank preamble followed by a pre-order stream of node
// blocks from r and rebuilds the tree in a single pass, using builder to
// construct nodes and attach children. Peak auxiliary memory is O(depth)
// for the frame stack plus O(bank size) for the bank itself.
func Deserialize(r io.Reader, builder Builder) (root Node, err error) {
	defer errRecover(&err)

	br := bufio.NewReader(r)

	b, err := readBank(br)
	if err != nil {
		return nil, err
	}

	rc := &reconstructor{bank: b, builder: builder}
	rc.run(br)

	if rc.root == nil {
		return nil, fail(KindEmpty, "stream contained no node blocks")
	}
	if len(rc.stack) != 0 {
		return nil, fail(KindTruncated, "stream ended with %d pending frame(s)", len(rc.stack))
	}

	return rc.root, nil
}

type reconstructor struct {
	bank    bank
	builder Builder

	label []byte
	stack []*frame
	root  Node
}

// run drives the byte classification state machine of spec §4.7 over the
// post-bank region of br until EOF.
func (rc *reconstructor) run(br *bufio.Reader) {
	for {
		x, err := br.ReadByte()
		if err == io.EOF {
			return
		}
		if err != nil {
			throwCause(KindIo, err, "reading node block")
		}

		switch {
		case x < asciiHighBitSet:
			rc.label = append(rc.label, x)

		case x&tagMaskHigh2 == tagEndOfLabel:
			rc.finishLabelNode(br, x)

		case x&tagMaskHigh2 == tagReference:
			rc.finishReferenceNode(br, x)
		}
	}
}

// finishLabelNode handles an end-of-label marker byte: the pending label
// buffer names the node, and width_nc (the marker's low 6 bits) further
// bytes give its child count.
func (rc *reconstructor) finishLabelNode(br *bufio.Reader, marker byte) {
	label := string(rc.label)
	rc.label = rc.label[:0]

	width := int(marker & maxMarkerWidth)
	nChildren, err := readMarkerPayload(br, width)
	if err != nil {
		panic(err)
	}

	rc.attach(label, int(nChildren))
}

// finishReferenceNode handles a bank-reference marker byte: width_addr
// (the marker's low 6 bits) further bytes give a bank address, then the
// very next byte must be an end-of-label marker whose width gives the
// child count.
func (rc *reconstructor) finishReferenceNode(br *bufio.Reader, marker byte) {
	if len(rc.label) != 0 {
		throw(KindMalformed, "label bytes pending when reference marker began")
	}

	width := int(marker & maxMarkerWidth)
	addr64, err := readMarkerPayload(br, width)
	if err != nil {
		panic(err)
	}
	addr := int(addr64)
	if addr < 0 || addr >= len(rc.bank) {
		throw(KindBadAddress, "address %d out of range [0,%d)", addr, len(rc.bank))
	}
	label := rc.bank[addr]

	y, err := br.ReadByte()
	if err != nil {
		throwCause(KindTruncated, err, "reading end-of-label marker after reference")
	}
	if y&tagMaskHigh2 != tagEndOfLabel {
		throw(KindMalformed, "reference marker not followed by end-of-label marker, got 0x%02x", y)
	}

	ncWidth := int(y & maxMarkerWidth)
	nChildren, err := readMarkerPayload(br, ncWidth)
	if err != nil {
		panic(err)
	}

	rc.attach(label, int(nChildren))
}

// attach creates a node for label/nChildren and folds it into the
// reconstruction stack via the deflate-stack rule.
func (rc *reconstructor) attach(label string, nChildren int) {
	node := rc.builder.NewNode(label)
	f := &frame{node: node, remaining: nChildren}

	if rc.root == nil {
		rc.root = node
		rc.stack = append(rc.stack, f)
		rc.collapse()
		return
	}

	if len(rc.stack) == 0 {
		throw(KindMalformed, "node block after root was already complete")
	}

	rc.deflate(f)
}

// deflate implements spec §4.7's deflate-stack rule:
//  1. Attach newFrame's node as a child of the current top-of-stack parent
//     and decrement the parent's remaining count.
//  2. If the parent is now complete (remaining == 0), pop it.
//  3. If newFrame itself still expects children, push it.
//  4. Collapse: while the new top frame is complete, pop it. This keeps
//     the top of the stack always the active, incomplete parent.
//
// Callers must only reach here with a non-empty stack; attach rejects a
// node block arriving after the root has already completed before calling
// this, since the stack being empty otherwise means there is no pending
// parent to attach newFrame under.
func (rc *reconstructor) deflate(newFrame *frame) {
	parent := rc.stack[len(rc.stack)-1]
	rc.builder.AttachChild(parent.node, newFrame.node)
	parent.remaining--

	if parent.remaining == 0 {
		rc.stack = rc.stack[:len(rc.stack)-1]
	}
	if newFrame.remaining > 0 {
		rc.stack = append(rc.stack, newFrame)
	}

	rc.collapse()
}

// collapse pops frames off the top of the stack while they are already
// complete. This also handles the case of a single-node tree (the root
// pushed unconditionally with remaining == 0 must still be popped here so
// the stack is empty at EOF).
func (rc *reconstructor) collapse() {
	for len(rc.stack) > 0 && rc.stack[len(rc.stack)-1].remaining == 0 {
		rc.stack = rc.stack[:len(rc.stack)-1]
	}
}
