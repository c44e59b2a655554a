// SPDX-License-Identifier: MIT
// Source: github.com/zabato/berg

package berg

// Sliding-window and hash-chain constants (§3, §4.3). windowSize is the
// reference W; maxDistance is the largest offset a token can carry
// (distance is always < windowSize, so offsets up to windowSize-1 fit).
const (
	windowSize     = 4096
	maxDistance    = 4095
	hashBits       = 14
	hashTableSize  = 1 << hashBits
	minMatchLen    = 3
	maxChainLen    = 8
	niceMatchLen   = 16
	hashMultiplier = 2654435761
)

// noPos marks an empty hash-chain head or an end-of-chain link. Using -1
// (rather than the reference's position-0 sentinel) means position 0 can
// itself be recorded as a match source — see §9's "Sentinel position 0"
// design note, which explicitly permits either choice.
const noPos = -1

// match is a candidate back-reference found by the matcher.
type match struct {
	offset int // distance back from pos; 0 means no match
	length int
}

// matcher is the hash-chain match finder over the input's sliding window
// (§4.3). It is encoder-only; a zero-value matcher is usable after reset.
type matcher struct {
	input []byte
	head  [hashTableSize]int32
	prev  [windowSize]int32
}

// reset prepares the matcher to search input from position 0. The
// contents of prev do not need clearing: every slot is overwritten before
// it is read, because a chain can only reach a slot after insert has
// written to it.
func (m *matcher) reset(input []byte) {
	m.input = input
	for i := range m.head {
		m.head[i] = noPos
	}
}

// hash3 mixes the 3 bytes at data[0:3] with Knuth's multiplicative
// constant and extracts the top hashBits bits (§3).
func hash3(data []byte) uint32 {
	seq := uint32(data[0])<<16 | uint32(data[1])<<8 | uint32(data[2])
	return (seq * hashMultiplier) >> (32 - hashBits)
}

// insert records pos in the hash chain for the 3 bytes starting there. It
// is a no-op when fewer than 3 bytes remain at pos.
func (m *matcher) insert(pos int) {
	if pos+3 > len(m.input) {
		return
	}

	h := hash3(m.input[pos:]) & (hashTableSize - 1)
	m.prev[pos%windowSize] = m.head[h]
	m.head[h] = int32(pos) //nolint:gosec // G115: pos bounded by input length, fits int32 for any realistic stream
}

// findBest returns the longest viable match at pos, or a zero match if
// none qualifies (§4.3). lookahead bounds how far any match may extend.
func (m *matcher) findBest(pos int, lookahead int) match {
	if pos+3 > len(m.input) || lookahead < minMatchLen {
		return match{}
	}

	maxLen := lookahead
	if rem := len(m.input) - pos; rem < maxLen {
		maxLen = rem
	}

	current := m.input[pos:]
	h := hash3(current) & (hashTableSize - 1)
	candidatePos := m.head[h]

	var best match
	for chainLen := 0; candidatePos != noPos && chainLen < maxChainLen; chainLen++ {
		cp := int(candidatePos)
		if cp >= pos {
			break
		}

		distance := pos - cp
		if distance > maxDistance {
			break
		}

		candidate := m.input[cp:]

		// Quick reject: the candidate cannot beat the incumbent unless it
		// agrees with it at the incumbent's length.
		if candidate[0] == current[0] && (best.length == 0 || candidate[best.length] == current[best.length]) {
			length := 0
			for length < maxLen && current[length] == candidate[length] {
				length++
			}

			if length >= minMatchLen && length > best.length {
				best.offset = distance
				best.length = length

				if length >= maxLen || length >= niceMatchLen {
					break
				}
			}
		}

		candidatePos = m.prev[cp%windowSize]
	}

	return best
}
