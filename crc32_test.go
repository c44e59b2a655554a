package berg

import (
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCRC32Checksum_MatchesStdlibIEEE(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	require.Equal(t, crc32.ChecksumIEEE(data), crc32Checksum(data))
}

func TestCRC32Accumulator_MatchesWholeChecksum(t *testing.T) {
	data := []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

	acc := newCRC32Accumulator()
	for _, chunk := range [][]byte{data[:5], data[5:17], data[17:]} {
		acc.write(chunk)
	}

	require.Equal(t, crc32Checksum(data), acc.sum32())
}

func TestCRC32Accumulator_EmptyIsZero(t *testing.T) {
	acc := newCRC32Accumulator()
	require.Equal(t, crc32Checksum(nil), acc.sum32())
}
