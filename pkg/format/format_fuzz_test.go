package format

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zkvectors/merklepath-go/pkg/merkle"
)

func FuzzSplitRoundTrip(f *testing.F) {
	f.Add(make([]byte, merkle.HashSize))
	f.Add(bytes.Repeat([]byte{0xff}, merkle.HashSize))
	f.Add([]byte("0123456789abcdef0123456789abcdef"))

	f.Fuzz(func(t *testing.T, raw []byte) {
		// Only full-width hashes are meaningful inputs.
		if len(raw) != merkle.HashSize {
			t.Skip()
		}
		var h merkle.Hash256
		copy(h[:], raw)

		low, high := SplitLittleEndian(h)
		back, err := FromSplit(low, high)
		require.NoError(t, err)
		require.Equal(t, h, back)
	})
}

func FuzzHexRoundTrip(f *testing.F) {
	f.Add(make([]byte, merkle.HashSize))
	f.Add(bytes.Repeat([]byte{0xa5}, merkle.HashSize))
	f.Add([]byte("0123456789abcdef0123456789abcdef"))

	f.Fuzz(func(t *testing.T, raw []byte) {
		if len(raw) != merkle.HashSize {
			t.Skip()
		}
		var h merkle.Hash256
		copy(h[:], raw)

		back, err := ParseHex(HexString(h))
		require.NoError(t, err)
		require.Equal(t, h, back)
	})
}
