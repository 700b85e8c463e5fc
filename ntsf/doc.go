// Package ntsf implements NTSF, a compact binary format for persisting an
// N-gram prediction tree: a rooted tree whose edges are labeled with words,
// where a root-to-node path spells out an n-gram and a node's children are
// its known continuations.
//
// Such trees contain massive word repetition - the same vocabulary
// reappears as node labels throughout the tree - so the format factors
// frequently repeated labels into a shared word bank addressed by
// position, and encodes each node as a short, self-delimiting,
// variable-width block that either inlines its label or references the
// bank.
//
// A serialized file is a word bank followed by a pre-order stream of node
// blocks:
//
//	File := WordBank TreeBody
//	WordBank := { BankEntry } 0x00
//	BankEntry := len:u8 (1..=255) ascii-bytes[len]
//	TreeBody := NodeBlock { NodeBlock }
//	NodeBlock := StandardBlock | ReferenceBlock
//
// Serialize walks a tree with an explicit stack (never recursion, so peak
// memory during encode is O(tree size) and independent of the host call
// stack) and writes one block per node. Deserialize makes a single pass
// over the stream with an O(depth) stack of pending frames, attaching each
// newly read node under its pending parent and collapsing completed
// ancestors as it goes - the "deflate-stack" rebuild rule.
//
// Labels are restricted to 7-bit ASCII and at most 255 bytes. The format
// has no magic header or version byte; forward compatibility is out of
// scope.
package ntsf
