// Command ngramtreetool builds, inspects, and repackages NTSF-encoded
// n-gram trees. Flag layout, the verbose helper, and the progress bar
// wiring follow chriskillpack-emailsearch's cmd/indexer and cmd/column.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

var verboseOutput bool

func verbose(format string, a ...any) {
	if verboseOutput {
		fmt.Printf(format, a...)
	}
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	sub := os.Args[1]
	args := os.Args[2:]

	var err error
	switch sub {
	case "build":
		err = runBuild(args)
	case "inspect":
		err = runInspect(args)
	case "pack":
		err = runPack(args)
	case "unpack":
		err = runUnpack(args)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: ngramtreetool <build|inspect|pack|unpack> [flags]")
	fmt.Fprintln(os.Stderr, "  build   - learn an n-gram tree from a corpus and serialize it")
	fmt.Fprintln(os.Stderr, "  inspect - report bank/tree-body stats for a serialized file")
	fmt.Fprintln(os.Stderr, "  pack    - gzip-wrap a serialized .ntsf file")
	fmt.Fprintln(os.Stderr, "  unpack  - undo pack")
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.BoolVar(&verboseOutput, "v", false, "Verbose output")
	fs.BoolVar(&verboseOutput, "verbose", false, "Verbose output")
	return fs
}
