// SPDX-License-Identifier: MIT
// Source: github.com/zabato/berg

package berg

import "math"

// Token head-word layout (§4.4), bit 15 = MSB of the little-endian u16:
//
//	bits 15..14: literal_count direct value (0..2), or 3 = escape to varint
//	bits 13..2 : 12-bit match_offset (0..4095)
//	bits  1..0 : match_length-3 direct value (0..2), or 3 = escape to varint
const (
	maxDirectLiteralCount   = 2
	minExtendedLiteralCount = maxDirectLiteralCount + 1

	minMatchLength         = 3
	maxDirectMatchLength   = 5
	minExtendedMatchLength = maxDirectMatchLength + 1

	literalEscape = 3 // 2-bit escape value for an extended literal count
	lengthEscape  = 3 // 2-bit escape value for an extended match length
)

// token is the decoded/to-be-encoded unit of the compressed stream (§3).
type token struct {
	literalCount int
	matchOffset  int // 0 means no back-reference
	matchLength  int // 0 when matchOffset == 0
}

// encodeTokenHead appends the 2-byte head word (and any extension
// varints) for tok to dst. It does not append the literal bytes; callers
// append exactly tok.literalCount raw bytes after this call.
func encodeTokenHead(dst []byte, tok token) []byte {
	var head uint16

	extendedLiterals := tok.literalCount > maxDirectLiteralCount
	if extendedLiterals {
		head |= literalEscape << 14
	} else {
		head |= uint16(tok.literalCount&0x03) << 14
	}

	extendedMatch := false
	if tok.matchOffset > 0 {
		head |= uint16(tok.matchOffset&0xFFF) << 2

		extendedMatch = tok.matchLength > maxDirectMatchLength
		if extendedMatch {
			head |= lengthEscape
		} else {
			head |= uint16((tok.matchLength - minMatchLength) & 0x03)
		}
	}

	dst = writeLE16(dst, head)

	if extendedLiterals {
		dst = appendVarint(dst, uint64(tok.literalCount-minExtendedLiteralCount))
	}
	if extendedMatch {
		dst = appendVarint(dst, uint64(tok.matchLength-minExtendedMatchLength))
	}

	return dst
}

// decodeTokenHead reads a token's head word and any extension varints
// from src starting at *pos, advancing *pos past them (but not past the
// literal bytes, which the caller reads separately once literalCount is
// known). Returns ErrCorruptData on truncation, on an extension value too
// large for the 32-bit size field, or on a no-progress token
// (literalCount == 0 && matchOffset == 0, which a conforming encoder never
// emits).
func decodeTokenHead(src []byte, pos *int) (token, error) {
	if *pos+2 > len(src) {
		return token{}, ErrCorruptData
	}

	head := readLE16(src[*pos:])
	*pos += 2

	extendedLiterals := head&0xC000 == 0xC000
	extendedMatch := head&0x0003 == 0x0003

	var tok token
	if !extendedLiterals {
		tok.literalCount = int(head>>14) & 0x03
	}

	tok.matchOffset = int(head>>2) & 0xFFF
	if tok.matchOffset > 0 {
		if !extendedMatch {
			tok.matchLength = int(head&0x03) + minMatchLength
		}
	} else {
		tok.matchOffset = 0
	}

	if extendedLiterals {
		v, err := decodeVarint(src, pos)
		if err != nil {
			return token{}, err
		}
		if v > math.MaxUint32 {
			return token{}, ErrCorruptData
		}
		tok.literalCount = int(v) + minExtendedLiteralCount
	}

	if extendedMatch && tok.matchOffset > 0 {
		v, err := decodeVarint(src, pos)
		if err != nil {
			return token{}, err
		}
		if v > math.MaxUint32 {
			return token{}, ErrCorruptData
		}
		tok.matchLength = int(v) + minExtendedMatchLength
	}

	if tok.literalCount == 0 && tok.matchOffset == 0 {
		return token{}, ErrCorruptData
	}

	return tok, nil
}
