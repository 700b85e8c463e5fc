package ntsf

import (
	"bufio"
	"io"
	"sort"
)

const maxLabelLen = 255

// bank is the ordered, address-stable sequence of banked labels for one
// serialized file. Position in the slice is the label's bank address.
type bank []string

// addressMap is the transient label -> address lookup materialized once
// from a bank, used by the emitter (C6) to decide standard vs. reference
// blocks.
type addressMap map[string]int

func newAddressMap(b bank) addressMap {
	m := make(addressMap, len(b))
	for i, label := range b {
		m[label] = i
	}
	return m
}

// buildBank applies the cost model of spec §4.3 to the analyzer's repeated
// labels and returns the final ordered bank.
//
// Cost rationale: a reference block costs 1 + bytewidth(addr) + 1 +
// bytewidth(nChildren) bytes; an inline block costs len(label) + 1 +
// bytewidth(nChildren) bytes. Both forms pay the end-of-label marker and
// the child count; only the reference form pays the reference marker, so a
// reference saves len(label) - 1 - bytewidth(addr) bytes per use. The
// filter bytewidth(i)+2 < len(label) admits a label only when that saving
// is at least 2 bytes per use; a label at equality (for example a 2-byte
// label at address 0, which would save 1 byte per use) is left inline.
func buildBank(root Node) bank {
	candidates := repeatedLabels(root)

	// Sort by length ascending, ties broken by byte order: the analyzer
	// emits candidates in map-iteration order, which varies between calls,
	// so the tie-break is what makes the bank a pure function of the tree.
	sort.SliceStable(candidates, func(i, j int) bool {
		if len(candidates[i]) != len(candidates[j]) {
			return len(candidates[i]) < len(candidates[j])
		}
		return candidates[i] < candidates[j]
	})

	result := make(bank, 0, len(candidates))
	for _, label := range candidates {
		if len(label) > maxLabelLen {
			continue
		}
		// i is the prospective position of label if admitted now. Because
		// removal of a disqualified candidate shifts all successors left,
		// re-evaluating against len(result) (not the original index)
		// automatically re-checks the filter at the post-removal position.
		i := len(result)
		if byteWidth(uint64(i))+2 < len(label) {
			result = append(result, label)
		}
	}

	return result
}

// writeBank emits the bank preamble: one record per entry, then a single
// 0x00 terminator. bw is not flushed here; the caller owns the buffer
// (C6's Serialize flushes once after the whole stream is written).
func writeBank(bw *bufio.Writer, b bank) error {
	for _, label := range b {
		if len(label) == 0 || len(label) > maxLabelLen {
			return fail(KindLabelTooLong, "bank entry length %d out of range", len(label))
		}
		if err := bw.WriteByte(byte(len(label))); err != nil {
			return failCause(KindIo, err, "writing bank entry length")
		}
		if _, err := bw.WriteString(label); err != nil {
			return failCause(KindIo, err, "writing bank entry bytes")
		}
	}
	if err := bw.WriteByte(0x00); err != nil {
		return failCause(KindIo, err, "writing bank terminator")
	}

	return nil
}

// readBank reads the bank preamble from r, stopping at the 0x00
// terminator. Returns ErrTruncated if the stream ends mid-entry.
func readBank(r *bufio.Reader) (bank, error) {
	var b bank

	for {
		l, err := r.ReadByte()
		if err != nil {
			return nil, failCause(KindTruncated, err, "reading bank entry length")
		}
		if l == 0x00 {
			return b, nil
		}

		buf := make([]byte, l)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, failCause(KindTruncated, err, "reading bank entry bytes")
		}
		for _, c := range buf {
			if c >= 0x80 {
				return nil, fail(KindNonAscii, "bank entry contains non-ASCII byte 0x%02x", c)
			}
		}

		b = append(b, string(buf))
	}
}
