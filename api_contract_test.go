package berg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func streamingEquivalenceInputs() [][]byte {
	return [][]byte{
		[]byte("A"),
		[]byte("hello, streaming world"),
		bytes.Repeat([]byte{0x7F}, 500),
		bytes.Repeat([]byte("streamed-chunk"), 300),
	}
}

func TestAPIContract_CompressStream_MatchesCompress(t *testing.T) {
	for _, input := range streamingEquivalenceInputs() {
		buffered, err := Compress(input, nil)
		require.NoError(t, err)

		for _, scratchSize := range []int{1, 2, 7, 64} {
			var streamed bytes.Buffer
			scratch := make([]byte, scratchSize)

			err := CompressStream(input, scratch, func(chunk []byte) error {
				_, werr := streamed.Write(chunk)
				return werr
			}, nil)
			require.NoError(t, err)
			require.Equal(t, buffered, streamed.Bytes())

			out, err := Decompress(streamed.Bytes())
			require.NoError(t, err)
			require.Equal(t, input, out)
		}
	}
}

func TestAPIContract_DecompressStream_MatchesDecompress(t *testing.T) {
	for _, input := range streamingEquivalenceInputs() {
		compressed, err := Compress(input, nil)
		require.NoError(t, err)

		for _, scratchSize := range []int{1, 3, 16, 128} {
			var streamed bytes.Buffer
			scratch := make([]byte, scratchSize)

			err := DecompressStream(compressed, scratch, func(chunk []byte) error {
				_, werr := streamed.Write(chunk)
				return werr
			})
			require.NoError(t, err)
			require.Equal(t, input, streamed.Bytes())
		}
	}
}

func TestAPIContract_CompressRawStream_MatchesCompressRaw(t *testing.T) {
	input := bytes.Repeat([]byte("raw-stream-contract"), 50)

	buffered, err := CompressRaw(input, nil)
	require.NoError(t, err)

	var streamed bytes.Buffer
	err = CompressRawStream(input, make([]byte, 5), func(chunk []byte) error {
		_, werr := streamed.Write(chunk)
		return werr
	}, nil)
	require.NoError(t, err)
	require.Equal(t, buffered, streamed.Bytes())
}

func TestAPIContract_DecompressRawStream_MatchesDecompressRaw(t *testing.T) {
	input := bytes.Repeat([]byte("raw-decode-contract"), 50)

	raw, err := CompressRaw(input, nil)
	require.NoError(t, err)

	var streamed bytes.Buffer
	err = DecompressRawStream(raw, len(input), make([]byte, 9), func(chunk []byte) error {
		_, werr := streamed.Write(chunk)
		return werr
	})
	require.NoError(t, err)
	require.Equal(t, input, streamed.Bytes())
}

func TestAPIContract_CallbackFailurePropagates(t *testing.T) {
	input := []byte("this will fail midway through the callback")
	boom := ErrCallbackFailed

	err := CompressStream(input, make([]byte, 4), func(chunk []byte) error {
		return boom
	}, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrCallbackFailed)
}

func TestAPIContract_ReusableEncoderProducesIdenticalOutput(t *testing.T) {
	enc := NewEncoder(nil)

	inputs := [][]byte{
		[]byte("first call"),
		bytes.Repeat([]byte("second call payload"), 10),
		[]byte("third"),
	}

	for _, input := range inputs {
		viaEncoder, err := enc.Compress(input)
		require.NoError(t, err)

		viaPackageFunc, err := Compress(input, nil)
		require.NoError(t, err)

		require.Equal(t, viaPackageFunc, viaEncoder)
	}
}

func TestAPIContract_ReusableDecoderProducesIdenticalOutput(t *testing.T) {
	dec := NewDecoder()

	inputs := [][]byte{
		[]byte("first decode"),
		bytes.Repeat([]byte("second decode payload"), 10),
		[]byte("third"),
	}

	for _, input := range inputs {
		compressed, err := Compress(input, nil)
		require.NoError(t, err)

		out, err := dec.Decompress(compressed)
		require.NoError(t, err)
		require.Equal(t, input, out)
	}
}

func TestAPIContract_CompressInto_BufferTooSmall(t *testing.T) {
	input := []byte("needs more room than this")
	_, err := CompressInto(make([]byte, 0, 2), input, nil)
	require.ErrorIs(t, err, ErrBufferTooSmall)
}

func TestAPIContract_CompressInto_MatchesCompress(t *testing.T) {
	input := bytes.Repeat([]byte("into-buffer"), 30)

	buffered, err := Compress(input, nil)
	require.NoError(t, err)

	dst := make([]byte, 0, EstimateMaxCompressedSize(len(input)))
	n, err := CompressInto(dst, input, nil)
	require.NoError(t, err)
	require.Equal(t, buffered, dst[:n])
}

func TestAPIContract_DecompressInto_BufferTooSmall(t *testing.T) {
	input := []byte("needs more room than this too")
	compressed, err := Compress(input, nil)
	require.NoError(t, err)

	_, err = DecompressInto(make([]byte, 0, 1), compressed)
	require.ErrorIs(t, err, ErrBufferTooSmall)
}

func TestAPIContract_DecompressInto_MatchesDecompress(t *testing.T) {
	input := bytes.Repeat([]byte("into-buffer-decode"), 30)
	compressed, err := Compress(input, nil)
	require.NoError(t, err)

	dst := make([]byte, 0, len(input))
	n, err := DecompressInto(dst, compressed)
	require.NoError(t, err)
	require.Equal(t, input, dst[:n])
}
