// SPDX-License-Identifier: MIT
// Source: github.com/zabato/berg

package berg

// ringBuffer mirrors the last windowSize emitted bytes so back-references
// can be resolved without keeping the whole output in memory (§4.6, §9's
// "Ring buffer during decode" note).
type ringBuffer struct {
	buf [windowSize]byte
}

func (r *ringBuffer) put(outPos int, b byte) {
	r.buf[outPos%windowSize] = b
}

func (r *ringBuffer) get(outPos int) byte {
	return r.buf[outPos%windowSize]
}

// decodeRawWith runs the §4.6 decode loop over a raw token stream,
// writing exactly originalSize bytes through out. in is the raw
// (headerless) token stream. Each call writes output starting at
// ring-relative position 0, so stale bytes from a prior call using the
// same ring are never visible: a match can only reach offsets <= outPos,
// and every one of those positions was written earlier in this same call.
// Passing the same *ringBuffer across calls (via Decoder) amortizes its
// allocation.
func decodeRawWith(ring *ringBuffer, in []byte, originalSize int, out sink) error {
	pos, outPos := 0, 0

	for pos < len(in) && outPos < originalSize {
		tok, err := decodeTokenHead(in, &pos)
		if err != nil {
			return err
		}

		if pos+tok.literalCount > len(in) {
			return ErrCorruptData
		}
		if outPos+tok.literalCount > originalSize {
			return ErrCorruptData
		}

		literals := in[pos : pos+tok.literalCount]
		if err := out.write(literals); err != nil {
			return err
		}
		for i, b := range literals {
			ring.put(outPos+i, b)
		}
		pos += tok.literalCount
		outPos += tok.literalCount

		if tok.matchOffset > 0 {
			if tok.matchOffset > outPos {
				return ErrCorruptData
			}
			if outPos+tok.matchLength > originalSize {
				return ErrCorruptData
			}

			if err := copyMatch(ring, out, outPos, tok.matchOffset, tok.matchLength); err != nil {
				return err
			}
			outPos += tok.matchLength
		}
	}

	if outPos != originalSize {
		return ErrCorruptData
	}

	return nil
}

// copyMatch expands a back-reference of the given offset/length starting
// at outPos, mirroring each byte into ring so later matches can reach into
// bytes produced by this one (the classic LZ77 run-length overlap effect
// when offset < length; §4.6), and forwarding the bytes to out.
//
// Bytes are copied within the ring one at a time because self-overlapping
// matches need each byte visible to the ring before the next is computed.
// The produced bytes are collected in a 64-byte scratch array and passed to
// out in chunks of at most 64 bytes.
func copyMatch(ring *ringBuffer, out sink, outPos, offset, length int) error {
	copyStart := outPos - offset

	var scratch [64]byte
	n := 0
	flush := func() error {
		if n == 0 {
			return nil
		}
		err := out.write(scratch[:n])
		n = 0
		return err
	}

	for i := 0; i < length; i++ {
		var srcIdx int
		if i < offset {
			srcIdx = copyStart + i
		} else {
			srcIdx = copyStart + (i % offset)
		}
		b := ring.get(srcIdx)

		ring.put(outPos+i, b)

		scratch[n] = b
		n++
		if n == len(scratch) {
			if err := flush(); err != nil {
				return err
			}
		}
	}

	return flush()
}
