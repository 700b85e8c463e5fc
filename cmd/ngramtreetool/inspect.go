package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/go-mmap/mmap"
)

// runInspect memory-maps a serialized .ntsf file and reports bank/tree-body
// size without fully decoding the tree. Grounded on
// chriskillpack-emailsearch/index.go's LoadIndexFromDisk, which
// mmap.Opens its index/catalog files and then drives them with
// Seek/Read/binary.Read rather than reading the whole file into memory.
//
// Random access into the tree body itself is a spec non-goal (spec.md
// §1); this only exploits the one part of NTSF that a linear format can
// answer cheaply - the bank sits in a contiguous prefix terminated by a
// single 0x00 byte, so finding its end is a single scan, not a full decode.
func runInspect(args []string) error {
	fs := newFlagSet("inspect")
	flagPath := fs.String("file", "", "path to a serialized .ntsf file")
	fs.Parse(args)

	if *flagPath == "" {
		return fmt.Errorf("inspect: -file is required")
	}

	rdr, err := mmap.Open(*flagPath)
	if err != nil {
		return err
	}
	defer rdr.Close()

	size, err := rdr.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("seeking to end of %s: %w", *flagPath, err)
	}
	if _, err := rdr.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seeking to start of %s: %w", *flagPath, err)
	}

	br := bufio.NewReader(rdr)

	bankEnd := int64(-1)
	entries := 0
	var firstEntries []string
	pos := int64(0)
	for pos < size {
		l, err := br.ReadByte()
		if err != nil {
			return fmt.Errorf("reading bank at offset %d: %w", pos, err)
		}
		pos++
		if l == 0x00 {
			bankEnd = pos
			break
		}

		buf := make([]byte, l)
		if _, err := io.ReadFull(br, buf); err != nil {
			return fmt.Errorf("reading bank entry at offset %d: %w", pos, err)
		}
		pos += int64(l)
		entries++
		if len(firstEntries) < 5 {
			firstEntries = append(firstEntries, string(buf))
		}
	}

	if bankEnd < 0 {
		return fmt.Errorf("inspect: %s has no bank terminator (truncated or not an NTSF file)", *flagPath)
	}

	fmt.Printf("file:            %s\n", *flagPath)
	fmt.Printf("total size:      %d bytes\n", size)
	fmt.Printf("bank size:       %d bytes (%d entries)\n", bankEnd, entries)
	fmt.Printf("tree body size:  %d bytes\n", size-bankEnd)
	if len(firstEntries) > 0 {
		fmt.Printf("first entries:   %v\n", firstEntries)
	}

	return nil
}
