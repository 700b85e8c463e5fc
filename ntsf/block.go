package ntsf

import (
	"bufio"
	"io"
)

// Node block tag scheme, keyed on the top two bits of the first byte:
//
//	00 or 01  -> inline ASCII label byte (high bit of an ASCII byte is
//	             always clear, so labels never collide with a marker)
//	10        -> end-of-label marker; low 6 bits = width of nChildren
//	11        -> bank-reference marker; low 6 bits = width of address
const (
	tagMaskHigh2    = 0xC0
	tagEndOfLabel   = 0x80
	tagReference    = 0xC0
	maxMarkerWidth  = 0x3F // 6 bits
	asciiHighBitSet = 0x80
)

// encodeStandardBlock writes an inline-label node block: the label's ASCII
// bytes, an end-of-label marker, then the child count.
func encodeStandardBlock(w *bufio.Writer, label string, nChildren int) error {
	if len(label) == 0 {
		return fail(KindMalformed, "empty label in standard block")
	}
	if len(label) > maxLabelLen {
		return fail(KindLabelTooLong, "label length %d exceeds %d", len(label), maxLabelLen)
	}

	for i := 0; i < len(label); i++ {
		c := label[i]
		if c >= asciiHighBitSet {
			return fail(KindNonAscii, "label byte 0x%02x at offset %d", c, i)
		}
	}
	if _, err := w.WriteString(label); err != nil {
		return failCause(KindIo, err, "writing label bytes")
	}

	return encodeEndOfLabel(w, nChildren)
}

// encodeReferenceBlock writes a bank-reference node block: a reference
// marker carrying the address width, the address itself, then the same
// end-of-label + child-count suffix as a standard block.
func encodeReferenceBlock(w *bufio.Writer, addr, nChildren int) error {
	aw := byteWidth(uint64(addr))
	if aw > maxMarkerWidth {
		return fail(KindOverflowChildren, "address %d requires width > %d", addr, maxMarkerWidth)
	}

	if err := w.WriteByte(byte(tagReference | aw)); err != nil {
		return failCause(KindIo, err, "writing reference marker")
	}
	if aw > 0 {
		buf := make([]byte, aw)
		putUint(buf, uint64(addr), aw)
		if _, err := w.Write(buf); err != nil {
			return failCause(KindIo, err, "writing reference address")
		}
	}

	return encodeEndOfLabel(w, nChildren)
}

func encodeEndOfLabel(w *bufio.Writer, nChildren int) error {
	ncw := byteWidth(uint64(nChildren))
	if ncw > maxMarkerWidth {
		return fail(KindOverflowChildren, "child count %d requires width > %d", nChildren, maxMarkerWidth)
	}

	if err := w.WriteByte(byte(tagEndOfLabel | ncw)); err != nil {
		return failCause(KindIo, err, "writing end-of-label marker")
	}
	if ncw > 0 {
		buf := make([]byte, ncw)
		putUint(buf, uint64(nChildren), ncw)
		if _, err := w.Write(buf); err != nil {
			return failCause(KindIo, err, "writing child count")
		}
	}

	return nil
}

// readMarkerPayload reads width bytes following a marker byte whose low 6
// bits equal width, returning the big-endian value they encode. width may
// be zero, in which case no bytes are consumed and the value is zero.
//
// A declared width that overruns the stream and a genuine truncated stream
// both surface as KindTruncated here; the byte stream alone can't tell a
// forged oversized width apart from honest EOF, so this errs toward the
// weaker, always-correct kind rather than guessing Malformed.
func readMarkerPayload(r *bufio.Reader, width int) (uint64, error) {
	if width == 0 {
		return 0, nil
	}
	buf := make([]byte, width)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, failCause(KindTruncated, err, "reading %d-byte marker payload", width)
	}
	return getUint(buf), nil
}
