// SPDX-License-Identifier: MIT
// Source: github.com/zabato/berg

package berg

// encodeRaw runs the §4.5 greedy parse over input, writing the raw token
// stream (no frame) to out. It never performs lazy matching: the first
// match of length >= minMatchLen found at a position is taken. m's hash
// tables are reset and then owned for the duration of this call; passing
// the same *matcher across calls (via Encoder) amortizes its allocation.
func encodeRaw(m *matcher, input []byte, cfg *Config, out sink) error {
	m.reset(input)

	pos := 0
	for pos < len(input) {
		literalStart := pos
		var chosen match

		for pos < len(input) {
			lookahead := cfg.LookaheadSize
			if rem := len(input) - pos; rem < lookahead {
				lookahead = rem
			}

			candidate := m.findBest(pos, lookahead)
			m.insert(pos)

			if candidate.length >= minMatchLen {
				chosen = candidate
				break
			}
			pos++
		}

		tok := token{
			literalCount: pos - literalStart,
			matchOffset:  chosen.offset,
			matchLength:  chosen.length,
		}

		if err := writeToken(out, tok, input[literalStart:literalStart+tok.literalCount]); err != nil {
			return err
		}

		if chosen.offset > 0 {
			for i := 1; i < chosen.length; i++ {
				m.insert(pos + i)
			}
			pos += chosen.length
		}
	}

	if pos != len(input) {
		return ErrCompressionFailed
	}

	return nil
}

// writeToken appends one token's wire encoding (head word, optional
// extension varints, literal bytes) to out.
func writeToken(out sink, tok token, literals []byte) error {
	head := encodeTokenHead(nil, tok)
	if err := out.write(head); err != nil {
		return err
	}
	return out.write(literals)
}
