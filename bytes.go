// SPDX-License-Identifier: MIT
// Source: github.com/zabato/berg

package berg

import "encoding/binary"

// readLE16 reads a little-endian u16 from data[0:2] (§4.4: the head word).
func readLE16(data []byte) uint16 {
	return binary.LittleEndian.Uint16(data)
}

// writeLE16 appends the little-endian encoding of v to dst.
func writeLE16(dst []byte, v uint16) []byte {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	return append(dst, buf[:]...)
}

// readLE32 reads a little-endian u32 from data[0:4] (§6: original size and
// CRC-32 trailer).
func readLE32(data []byte) uint32 {
	return binary.LittleEndian.Uint32(data)
}

// writeLE32 appends the little-endian encoding of v to dst.
func writeLE32(dst []byte, v uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return append(dst, buf[:]...)
}
