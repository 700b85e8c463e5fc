package ntree

import (
	"bytes"
	"reflect"
	"testing"
)

// asLabels renders a tree as nested label slices for structural comparison,
// the ntree-level equivalent of the teacher's asDot comparison.
func asLabels(n *Node) any {
	out := []any{n.label}
	for _, c := range n.children {
		out = append(out, asLabels(c))
	}
	return out
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	cases := []struct {
		Name   string
		Ngrams []string
	}{
		{"Single path", []string{"the quick brown fox"}},
		{"Branching", []string{"the quick brown fox", "the quick brown dog", "the lazy cat"}},
		{"Heavy repetition", []string{
			"the quick brown fox jumps over the lazy dog",
			"the quick brown fox runs past the lazy dog",
			"a quick brown fox is not the same as a slow one",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := NewTree()
			for _, ngram := range tc.Ngrams {
				tree.Learn(words(ngram))
			}

			var buf bytes.Buffer
			if err := tree.Serialize(&buf); err != nil {
				t.Fatal(err)
			}

			got, err := DeserializeTree(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatal(err)
			}

			if !reflect.DeepEqual(asLabels(got.Root), asLabels(tree.Root)) {
				t.Errorf("round-tripped tree structure does not match original")
			}
		})
	}
}

func TestDeserializeDropsCounts(t *testing.T) {
	tree := NewTree()
	tree.Learn(words("the quick fox"))
	tree.Learn(words("the quick fox"))

	var buf bytes.Buffer
	if err := tree.Serialize(&buf); err != nil {
		t.Fatal(err)
	}

	got, err := DeserializeTree(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}

	// Counts are ntree-only metadata, not part of the wire format (see
	// SPEC_FULL.md §2): a reloaded tree starts with no observation counts.
	if got.Root.Count() != 0 {
		t.Errorf("Count() after reload = %d, want 0 (counts are not persisted)", got.Root.Count())
	}
}
