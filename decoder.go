// SPDX-License-Identifier: MIT
// Source: github.com/zabato/berg

package berg

// Decoder amortizes the ring buffer across repeated Decompress calls
// (§5's "reusable decoder... value" allowance). The zero Decoder is ready
// to use; NewDecoder returns one. A Decoder is not safe for
// concurrent use — each call owns its internal state for the duration of
// that call.
type Decoder struct {
	ring ringBuffer
}

// NewDecoder returns a reusable Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// initialDecodeCap bounds the up-front allocation Decompress/DecompressRaw
// make for the output buffer. originalSize comes from an untrusted frame
// header, so it is only ever used as an upper bound on this hint, never as
// the allocation size itself (§7); the buffer grows via append as the
// decode loop actually produces bytes.
const initialDecodeCap = 64 * 1024

func decodeInitialCap(originalSize int) int {
	if originalSize < initialDecodeCap {
		return originalSize
	}
	return initialDecodeCap
}

// Decompress verifies and decodes a framed Berg stream, returning the
// reconstructed plaintext (§4.7).
func (d *Decoder) Decompress(compressed []byte) ([]byte, error) {
	originalSize, raw, trailer, err := splitFrame(compressed)
	if err != nil {
		return nil, err
	}

	out := newGrowingBufferSink(decodeInitialCap(originalSize))

	if err := decodeRawWith(&d.ring, raw, originalSize, out); err != nil {
		return nil, err
	}

	produced := out.bytes()
	if crc32Checksum(produced) != trailer {
		return nil, ErrCorruptData
	}

	return produced, nil
}

// DecompressInto is the buffer-output variant of Decompress: it writes
// into dst and returns the number of bytes produced.
func (d *Decoder) DecompressInto(dst, compressed []byte) (int, error) {
	originalSize, raw, trailer, err := splitFrame(compressed)
	if err != nil {
		return 0, err
	}
	if cap(dst) < originalSize {
		return 0, ErrBufferTooSmall
	}

	out := newBufferSink(dst)
	if err := decodeRawWith(&d.ring, raw, originalSize, out); err != nil {
		return 0, err
	}

	produced := out.bytes()
	if crc32Checksum(produced) != trailer {
		return 0, ErrCorruptData
	}

	return len(produced), nil
}

// DecompressRaw decodes a headerless token stream (no magic/size/CRC)
// into originalSize bytes of plaintext, with no checksum to verify.
func (d *Decoder) DecompressRaw(raw []byte, originalSize int) ([]byte, error) {
	out := newGrowingBufferSink(decodeInitialCap(originalSize))
	if err := decodeRawWith(&d.ring, raw, originalSize, out); err != nil {
		return nil, err
	}
	return out.bytes(), nil
}

// DecompressRawInto is the buffer-output variant of DecompressRaw.
func (d *Decoder) DecompressRawInto(dst, raw []byte, originalSize int) (int, error) {
	if cap(dst) < originalSize {
		return 0, ErrBufferTooSmall
	}
	out := newBufferSink(dst)
	if err := decodeRawWith(&d.ring, raw, originalSize, out); err != nil {
		return 0, err
	}
	return len(out.bytes()), nil
}

// DecompressStream verifies and streams the decoding of a framed Berg
// stream through fn, using scratch as the flush buffer (§4.8
// "Framed-stream output"): a wrapping sink folds each produced chunk into
// a running CRC-32 before forwarding it, and the trailer is checked once
// decoding completes.
func (d *Decoder) DecompressStream(compressed, scratch []byte, fn WriteFunc) error {
	originalSize, raw, trailer, err := splitFrame(compressed)
	if err != nil {
		return err
	}

	ring, err := newRingSink(scratch, fn)
	if err != nil {
		return err
	}

	crc := newCRC32Accumulator()
	checked := newCRCSink(ring, crc)

	if err := decodeRawWith(&d.ring, raw, originalSize, checked); err != nil {
		return err
	}
	if err := ring.flush(); err != nil {
		return err
	}

	if crc.sum32() != trailer {
		return ErrCorruptData
	}
	return nil
}

// DecompressRawStream streams the decoding of a headerless token stream
// through fn, using scratch as the flush buffer.
func (d *Decoder) DecompressRawStream(raw []byte, originalSize int, scratch []byte, fn WriteFunc) error {
	ring, err := newRingSink(scratch, fn)
	if err != nil {
		return err
	}

	if err := decodeRawWith(&d.ring, raw, originalSize, ring); err != nil {
		return err
	}
	return ring.flush()
}

// splitFrame validates a framed stream's structure and returns the
// declared original size, the raw token-stream slice, and the trailer
// CRC-32 (§4.7). It does not run the decode loop.
func splitFrame(compressed []byte) (originalSize int, raw []byte, trailer uint32, err error) {
	if len(compressed) < frameOverhead {
		return 0, nil, 0, ErrInvalidParameter
	}

	originalSize, err = parseFrameHeader(compressed)
	if err != nil {
		return 0, nil, 0, err
	}

	raw = compressed[frameHeaderSize : len(compressed)-crcFieldSize]
	trailer = readLE32(compressed[len(compressed)-crcFieldSize:])

	return originalSize, raw, trailer, nil
}

// Decompress verifies and decodes a framed Berg stream using a throwaway
// Decoder. Callers making many calls should construct one Decoder and
// reuse it instead.
func Decompress(compressed []byte) ([]byte, error) {
	return NewDecoder().Decompress(compressed)
}

// DecompressInto is the buffer-output variant of Decompress.
func DecompressInto(dst, compressed []byte) (int, error) {
	return NewDecoder().DecompressInto(dst, compressed)
}

// DecompressRaw decodes a headerless token stream into originalSize bytes
// of plaintext.
func DecompressRaw(raw []byte, originalSize int) ([]byte, error) {
	return NewDecoder().DecompressRaw(raw, originalSize)
}

// DecompressRawInto is the buffer-output variant of DecompressRaw.
func DecompressRawInto(dst, raw []byte, originalSize int) (int, error) {
	return NewDecoder().DecompressRawInto(dst, raw, originalSize)
}

// DecompressStream verifies and streams the decoding of a framed Berg
// stream through fn.
func DecompressStream(compressed, scratch []byte, fn WriteFunc) error {
	return NewDecoder().DecompressStream(compressed, scratch, fn)
}

// DecompressRawStream streams the decoding of a headerless token stream
// through fn.
func DecompressRawStream(raw []byte, originalSize int, scratch []byte, fn WriteFunc) error {
	return NewDecoder().DecompressRawStream(raw, originalSize, scratch, fn)
}
