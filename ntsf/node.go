package ntsf

// Node is the codec's view of a tree node, per spec §6.2's collaborator
// contract. Any N-gram tree node type can be serialized as long as it
// implements this interface; ntsf never constructs or mutates node storage
// itself beyond what Builder below requires.
type Node interface {
	Label() string
	ChildCount() int
	Children() []Node
}

// Builder constructs nodes during Deserialize. The codec calls NewNode once
// per node in the stream and AttachChild once per parent/child edge, in the
// order the reconstructor discovers them (pre-order, matching the order
// Serialize emitted them in).
type Builder interface {
	NewNode(label string) Node
	AttachChild(parent, child Node)
}
