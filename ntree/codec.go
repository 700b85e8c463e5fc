package ntree

import (
	"io"

	"github.com/ngramtree/ntsf/ntsf"
)

// Serialize writes t to w using the NTSF codec.
func (t *Tree) Serialize(w io.Writer) error {
	return ntsf.Serialize(w, t.Root)
}

// DeserializeTree reads an NTSF stream from r and rebuilds a Tree.
func DeserializeTree(r io.Reader) (*Tree, error) {
	b := &builder{}
	root, err := ntsf.Deserialize(r, b)
	if err != nil {
		return nil, err
	}

	return &Tree{Root: root.(*Node), N: b.n}, nil
}

// builder implements ntsf.Builder, constructing *Node values during
// Deserialize. Nodes produced this way have count == 0: observation counts
// are ntree-only metadata with no place in the wire format (see
// SPEC_FULL.md §2), so a reloaded tree starts without frequency data.
type builder struct {
	n int
}

func (b *builder) NewNode(label string) ntsf.Node {
	b.n++
	return &Node{label: label}
}

func (b *builder) AttachChild(parent, child ntsf.Node) {
	p := parent.(*Node)
	c := child.(*Node)
	p.children = append(p.children, c)
}
