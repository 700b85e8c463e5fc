package ntsf

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// randomTree builds a tree of the given size with a small, heavily-reused
// vocabulary so the word bank actually gets exercised, plus a scattering of
// unique long labels that should never make it into the bank.
func randomTree(rng *rand.Rand, size int) *testNode {
	vocab := []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog"}

	root := node("<root>")
	nodes := []*testNode{root}

	for len(nodes) > 0 && size > 0 {
		parent := nodes[0]
		nodes = nodes[1:]

		nChildren := rng.Intn(3)
		for i := 0; i < nChildren && size > 0; i++ {
			var label string
			if rng.Intn(4) == 0 {
				label = fmt.Sprintf("unique-label-%d-%d", rng.Int(), i)
			} else {
				label = vocab[rng.Intn(len(vocab))]
			}
			child := node(label)
			parent.children = append(parent.children, child)
			nodes = append(nodes, child)
			size--
		}
	}

	return root
}

func TestRoundTripProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		tree := randomTree(rng, 40)

		var buf bytes.Buffer
		require.NoError(t, Serialize(&buf, tree))

		got, err := Deserialize(bytes.NewReader(buf.Bytes()), &testBuilder{})
		require.NoError(t, err)
		require.Truef(t, equalTree(got, tree), "trial %d: round-tripped tree does not match original", trial)
	}
}

func TestRoundTripSingleLeafRoot(t *testing.T) {
	tree := node("onlynode")

	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, tree))

	got, err := Deserialize(bytes.NewReader(buf.Bytes()), &testBuilder{})
	require.NoError(t, err)
	require.True(t, equalTree(got, tree))
}

func TestRoundTripDeepChain(t *testing.T) {
	// A 500-deep chain exercises the non-recursive emitter and
	// reconstructor at depth. Each parent completes as soon as its only
	// child is attached, so the frame stack never holds more than one frame.
	var root, cur *testNode
	for i := 0; i < 500; i++ {
		n := node(fmt.Sprintf("level-%d-xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx", i%5))
		if cur == nil {
			root = n
		} else {
			cur.children = []*testNode{n}
		}
		cur = n
	}

	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, root))

	got, err := Deserialize(bytes.NewReader(buf.Bytes()), &testBuilder{})
	require.NoError(t, err)
	require.True(t, equalTree(got, root))
}
