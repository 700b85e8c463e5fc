package ntsf

// countLabels walks root depth-first (order immaterial to the result) and
// returns the occurrence count of every distinct label in the tree.
// Grounded on the teacher's gatherWords recursive traversal: same shape of
// walk, a tally instead of a word list.
func countLabels(root Node) map[string]int {
	counts := make(map[string]int)

	var walk func(n Node)
	walk = func(n Node) {
		counts[n.Label()]++
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(root)

	return counts
}

// repeatedLabels returns the labels that occur at least twice in the tree,
// the candidate set handed to the word-bank builder (C3). Order is
// unspecified.
func repeatedLabels(root Node) []string {
	counts := countLabels(root)

	repeated := make([]string, 0, len(counts))
	for label, n := range counts {
		if n >= 2 {
			repeated = append(repeated, label)
		}
	}
	return repeated
}
