package ntsf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteWidth(t *testing.T) {
	cases := []struct {
		n    uint64
		want int
	}{
		{0, 0},
		{1, 1},
		{255, 1},
		{256, 2},
		{65535, 2},
		{65536, 3},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.want, byteWidth(tc.n), "byteWidth(%d)", tc.n)
	}
}

func TestPutGetUintRoundTrip(t *testing.T) {
	for _, n := range []uint64{0, 1, 200, 13000, 70000, 1 << 30} {
		w := byteWidth(n)
		buf := make([]byte, w)
		putUint(buf, n, w)
		assert.Equal(t, n, getUint(buf))
	}
}
