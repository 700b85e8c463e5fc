package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/ngramtree/ntsf/ntree"
)

// runBuild reads a corpus file of whitespace-tokenized text, one sentence
// per line, folds every sliding window of -order words into a tree, and
// serializes it.
// Grounded on cmd/indexer/main.go's walk-then-progressbar-then-serialize
// shape, simplified to a single input file instead of a directory walk.
func runBuild(args []string) error {
	fs := newFlagSet("build")
	flagInput := fs.String("corpus", "", "path to a text corpus, one sentence per line")
	flagOrder := fs.Int("order", 3, "n-gram order (sliding window size)")
	flagOut := fs.String("out", "out.ntsf", "path to write the serialized tree")
	fs.Parse(args)

	if *flagInput == "" {
		return fmt.Errorf("build: -corpus is required")
	}
	if *flagOrder < 1 {
		return fmt.Errorf("build: -order must be >= 1")
	}

	f, err := os.Open(*flagInput)
	if err != nil {
		return err
	}
	defer f.Close()

	lines, err := countLines(*flagInput)
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(
		lines,
		progressbar.OptionSetDescription("Learning n-grams"),
		progressbar.OptionThrottle(50*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() { fmt.Println() }),
	)

	tree := ntree.NewTree()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		bar.Add(1)
		words := strings.Fields(scanner.Text())
		for i := 0; i+*flagOrder <= len(words); i++ {
			tree.Learn(words[i : i+*flagOrder])
		}
	}
	bar.Finish()
	if err := scanner.Err(); err != nil {
		return err
	}
	verbose("Learned tree with %d nodes\n", tree.N)

	out, err := os.Create(*flagOut)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := tree.Serialize(out); err != nil {
		return fmt.Errorf("serializing tree: %w", err)
	}
	verbose("Wrote %s\n", *flagOut)

	return nil
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		n++
	}
	return n, scanner.Err()
}
