// SPDX-License-Identifier: MIT
// Source: github.com/zabato/berg

package berg

// maxVarintBytes is ⌈64/7⌉: the most bytes a 64-bit value can ever need
// (§4.1). A decode that would consume more is rejected as an overlong
// sequence that cannot fit the size type.
const maxVarintBytes = 10

// appendVarint appends the unsigned LEB128 encoding of v to dst and
// returns the extended slice. Each byte carries seven payload bits in its
// low seven; the high bit is set on every byte but the last.
func appendVarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// decodeVarint reads an unsigned LEB128 value from src starting at
// *pos and advances *pos past it. It fails with ErrCorruptData if src
// ends before a terminating byte, if more than maxVarintBytes bytes
// would be consumed, if the value overflows 64 bits, or if the encoding is
// not the shortest one (a redundant trailing zero byte), so every accepted
// sequence is exactly what appendVarint produces for its value.
func decodeVarint(src []byte, pos *int) (uint64, error) {
	var result uint64
	var shift uint

	for i := 0; i < maxVarintBytes; i++ {
		if *pos >= len(src) {
			return 0, ErrCorruptData
		}

		b := src[*pos]
		*pos++

		result |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			if i > 0 && b == 0 {
				return 0, ErrCorruptData
			}
			if i == maxVarintBytes-1 && b > 1 {
				return 0, ErrCorruptData
			}
			return result, nil
		}

		shift += 7
	}

	return 0, ErrCorruptData
}
