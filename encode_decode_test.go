package berg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeRaw_DecodeRaw_RoundTrip(t *testing.T) {
	inputs := [][]byte{
		[]byte("A"),
		[]byte("ABC"),
		bytes.Repeat([]byte{0x41}, 100),
		bytes.Repeat([]byte("abc123"), 500),
		[]byte("the quick brown fox jumps over the lazy dog, the quick brown fox jumps again"),
	}

	for _, input := range inputs {
		var m matcher
		out := newBufferSink(make([]byte, 0, EstimateMaxCompressedSize(len(input))))
		require.NoError(t, encodeRaw(&m, input, DefaultConfig(), out))

		var ring ringBuffer
		dst := newBufferSink(make([]byte, 0, len(input)))
		require.NoError(t, decodeRawWith(&ring, out.bytes(), len(input), dst))

		require.Equal(t, input, dst.bytes())
	}
}

func TestEncodeRaw_OffsetAndLengthBounds(t *testing.T) {
	input := bytes.Repeat([]byte("xyzzy plugh "), 400)

	var m matcher
	out := newBufferSink(make([]byte, 0, EstimateMaxCompressedSize(len(input))))
	require.NoError(t, encodeRaw(&m, input, DefaultConfig(), out))

	raw := out.bytes()
	pos := 0
	for pos < len(raw) {
		tok, err := decodeTokenHead(raw, &pos)
		require.NoError(t, err)
		pos += tok.literalCount

		if tok.matchOffset > 0 {
			require.LessOrEqual(t, tok.matchOffset, maxDistance)
			require.GreaterOrEqual(t, tok.matchLength, minMatchLength)
		} else {
			require.Equal(t, 0, tok.matchLength)
		}
	}
}

func TestDecodeRawWith_RejectsForwardOffset(t *testing.T) {
	// A token whose matchOffset exceeds bytes produced so far must fail,
	// not read past the start of output.
	tok := token{literalCount: 0, matchOffset: 5, matchLength: 3}
	raw := encodeTokenHead(nil, tok)

	var ring ringBuffer
	dst := newBufferSink(make([]byte, 0, 16))
	err := decodeRawWith(&ring, raw, 3, dst)
	require.ErrorIs(t, err, ErrCorruptData)
}

func TestDecodeRawWith_RejectsLengthPastOriginalSize(t *testing.T) {
	literals := []byte("ab")
	tok := token{literalCount: len(literals), matchOffset: 1, matchLength: 20}
	raw := encodeTokenHead(nil, tok)
	raw = append(raw, literals...)

	var ring ringBuffer
	dst := newBufferSink(make([]byte, 0, 16))
	err := decodeRawWith(&ring, raw, 5, dst)
	require.ErrorIs(t, err, ErrCorruptData)
}

func TestDecodeRawWith_OverlapSemantics(t *testing.T) {
	// match_offset == 1, match_length == k reconstructs k copies of the
	// byte immediately preceding the match.
	literals := []byte{0x37}
	tok := token{literalCount: 1, matchOffset: 1, matchLength: 9}
	raw := encodeTokenHead(nil, tok)
	raw = append(raw, literals...)

	var ring ringBuffer
	dst := newBufferSink(make([]byte, 0, 10))
	require.NoError(t, decodeRawWith(&ring, raw, 10, dst))

	require.Equal(t, bytes.Repeat([]byte{0x37}, 10), dst.bytes())
}

func TestDecodeRawWith_ShortPatternOverlap(t *testing.T) {
	// offset 2, length 5 repeats the 2-byte pattern preceding the match.
	literals := []byte{0x01, 0x02}
	tok := token{literalCount: 2, matchOffset: 2, matchLength: 5}
	raw := encodeTokenHead(nil, tok)
	raw = append(raw, literals...)

	var ring ringBuffer
	dst := newBufferSink(make([]byte, 0, 7))
	require.NoError(t, decodeRawWith(&ring, raw, 7, dst))

	require.Equal(t, []byte{0x01, 0x02, 0x01, 0x02, 0x01, 0x02, 0x01}, dst.bytes())
}
