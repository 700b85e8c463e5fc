package main

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// runPack and runUnpack wrap/unwrap a serialized .ntsf file in gzip. This
// lives entirely outside the ntsf codec: spec.md's Non-goals exclude
// compression of the NTSF stream itself (word-bank factoring is the only
// compression the format does), so these are CLI-only convenience wrappers
// around already-serialized bytes, adopted from dsnet-compress's
// klauspost/compress require-block entry.
func runPack(args []string) error {
	fs := newFlagSet("pack")
	flagIn := fs.String("in", "", "serialized .ntsf file to compress")
	flagOut := fs.String("out", "", "path to write the gzip-wrapped file (default: <in>.gz)")
	fs.Parse(args)

	if *flagIn == "" {
		return fmt.Errorf("pack: -in is required")
	}
	out := *flagOut
	if out == "" {
		out = *flagIn + ".gz"
	}

	in, err := os.Open(*flagIn)
	if err != nil {
		return err
	}
	defer in.Close()

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	gw := gzip.NewWriter(f)
	if _, err := io.Copy(gw, in); err != nil {
		return fmt.Errorf("packing %s: %w", *flagIn, err)
	}
	if err := gw.Close(); err != nil {
		return err
	}
	verbose("Wrote %s\n", out)

	return nil
}

func runUnpack(args []string) error {
	fs := newFlagSet("unpack")
	flagIn := fs.String("in", "", "gzip-wrapped .ntsf.gz file to decompress")
	flagOut := fs.String("out", "", "path to write the raw .ntsf file")
	fs.Parse(args)

	if *flagIn == "" || *flagOut == "" {
		return fmt.Errorf("unpack: -in and -out are required")
	}

	in, err := os.Open(*flagIn)
	if err != nil {
		return err
	}
	defer in.Close()

	gr, err := gzip.NewReader(in)
	if err != nil {
		return fmt.Errorf("unpacking %s: %w", *flagIn, err)
	}
	defer gr.Close()

	out, err := os.Create(*flagOut)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, gr); err != nil {
		return fmt.Errorf("unpacking %s: %w", *flagIn, err)
	}
	verbose("Wrote %s\n", *flagOut)

	return nil
}
