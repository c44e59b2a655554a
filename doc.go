// SPDX-License-Identifier: MIT
// Source: github.com/zabato/berg

/*
Package berg implements the Berg compression codec: a lossless,
byte-oriented LZ77-family compressor with a self-describing frame format.

The wire format is a fixed 8-byte header (magic "BERG" + little-endian
original size), a raw token stream, and a trailing little-endian CRC-32
(zlib/gzip variant) of the plaintext. Each token packs a literal run and an
optional back-reference into a 16-bit head word plus up to two
variable-length (LEB128) extensions; see the package-level constants in
token.go for the exact bit layout.

# Compress

	out, err := berg.Compress(data, nil) // nil config = DefaultConfig()
	out, err := berg.Compress(data, &berg.Config{LookaheadSize: 24})

# Decompress

	out, err := berg.Decompress(compressed)

# Streaming

Both directions also have raw (headerless) and streaming (write-callback)
variants for callers that want to avoid buffering the whole output, or that
want the raw token stream without the magic/size/CRC envelope:

	err := berg.CompressStream(data, scratch, func(chunk []byte) error {
		_, err := w.Write(chunk) // or similar
		return err
	}, nil)

	err := berg.DecompressRawStream(tokens, originalSize, scratch, func(chunk []byte) error {
		_, err := w.Write(chunk)
		return err
	})

# Reuse

Compress and Decompress each allocate a throwaway Encoder/Decoder value
internally. Callers that make many calls and want to amortize the match
finder's hash tables and the decoder's ring buffer should construct an
Encoder/Decoder once and reuse it:

	enc := berg.NewEncoder(nil)
	for _, chunk := range chunks {
		out, err := enc.Compress(chunk)
		...
	}

Encoder and Decoder values are not safe for concurrent use; each call owns
the receiver's internal state for its duration (see the Encoder and Decoder
type documentation).
*/
package berg
