package ntsf

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestEncodeStandardBlockRejectsLabelTooLong(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)

	label := strings.Repeat("a", maxLabelLen+1)
	err := encodeStandardBlock(bw, label, 0)

	ex, ok := asNtsfError(err)
	if !ok {
		t.Fatalf("expected *ntsf.Error, got %v", err)
	}
	if ex.Kind != KindLabelTooLong {
		t.Fatalf("expected KindLabelTooLong, got %v", ex.Kind)
	}
}

func TestEncodeStandardBlockRejectsEmptyLabel(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)

	err := encodeStandardBlock(bw, "", 0)

	ex, ok := asNtsfError(err)
	if !ok {
		t.Fatalf("expected *ntsf.Error, got %v", err)
	}
	if ex.Kind != KindMalformed {
		t.Fatalf("expected KindMalformed, got %v", ex.Kind)
	}
}

func TestEncodeStandardBlockRejectsNonAscii(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)

	err := encodeStandardBlock(bw, "caf\xe9", 0)

	ex, ok := asNtsfError(err)
	if !ok {
		t.Fatalf("expected *ntsf.Error, got %v", err)
	}
	if ex.Kind != KindNonAscii {
		t.Fatalf("expected KindNonAscii, got %v", ex.Kind)
	}
}

// There is no test for the OverflowChildren path: byteWidth never returns
// more than 8 for any real uint64, far under maxMarkerWidth (63), so the
// check in encodeEndOfLabel/encodeReferenceBlock is unreachable for any
// child count or bank address a real tree could produce - see DESIGN.md.
