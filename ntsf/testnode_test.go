package ntsf

// testNode is a minimal Node implementation used only by this package's own
// tests, so ntsf's test suite does not need to import package ntree.
type testNode struct {
	label    string
	children []*testNode
}

func node(label string, children ...*testNode) *testNode {
	return &testNode{label: label, children: children}
}

func (n *testNode) Label() string    { return n.label }
func (n *testNode) ChildCount() int  { return len(n.children) }
func (n *testNode) Children() []Node {
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// testBuilder implements Builder, reconstructing trees into *testNode.
type testBuilder struct{ count int }

func (b *testBuilder) NewNode(label string) Node {
	b.count++
	return &testNode{label: label}
}

func (b *testBuilder) AttachChild(parent, child Node) {
	p := parent.(*testNode)
	c := child.(*testNode)
	p.children = append(p.children, c)
}

// equalTree reports whether a and b have the same shape: same labels, same
// child ordering, same structure.
func equalTree(a, b Node) bool {
	if a.Label() != b.Label() {
		return false
	}
	ac, bc := a.Children(), b.Children()
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if !equalTree(ac[i], bc[i]) {
			return false
		}
	}
	return true
}
