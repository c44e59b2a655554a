// SPDX-License-Identifier: MIT
// Source: github.com/zabato/berg

package berg

// Encoder amortizes the match finder's hash tables across repeated
// Compress calls (§5's "reusable encoder... value" allowance). A zero
// Encoder is not usable; construct one with NewEncoder. An Encoder is not
// safe for concurrent use — each call owns its internal state for the
// duration of that call, exactly like the package-level functions.
type Encoder struct {
	cfg *Config
	m   matcher
}

// NewEncoder returns a reusable Encoder. cfg may be nil for DefaultConfig.
func NewEncoder(cfg *Config) *Encoder {
	return &Encoder{cfg: resolveConfig(cfg)}
}

// Compress returns the framed compression of input: magic, little-endian
// original size, raw token stream, little-endian CRC-32 trailer (§4.7).
func (e *Encoder) Compress(input []byte) ([]byte, error) {
	if len(input) == 0 {
		return nil, ErrInvalidParameter
	}

	out := newBufferSink(make([]byte, 0, EstimateMaxCompressedSize(len(input))))

	if err := out.write(frameHeaderBytes(len(input))); err != nil {
		return nil, err
	}
	if err := encodeRaw(&e.m, input, e.cfg, out); err != nil {
		return nil, err
	}
	if err := out.write(le32Bytes(crc32Checksum(input))); err != nil {
		return nil, err
	}

	return out.bytes(), nil
}

// CompressInto writes the framed compression of input into dst (writing
// starts at dst[0], ignoring any existing contents) and returns the
// number of bytes used, or ErrBufferTooSmall if cap(dst) is insufficient.
func (e *Encoder) CompressInto(dst, input []byte) (int, error) {
	if len(input) == 0 {
		return 0, ErrInvalidParameter
	}
	if cap(dst) < frameOverhead {
		return 0, ErrBufferTooSmall
	}

	out := newBufferSink(dst)

	if err := out.write(frameHeaderBytes(len(input))); err != nil {
		return 0, err
	}
	if err := encodeRaw(&e.m, input, e.cfg, out); err != nil {
		return 0, err
	}
	if err := out.write(le32Bytes(crc32Checksum(input))); err != nil {
		return 0, err
	}

	return len(out.bytes()), nil
}

// CompressRaw returns the headerless token stream for input, with no
// frame (magic/size/CRC) around it.
func (e *Encoder) CompressRaw(input []byte) ([]byte, error) {
	if len(input) == 0 {
		return nil, ErrInvalidParameter
	}

	out := newBufferSink(make([]byte, 0, EstimateMaxCompressedSize(len(input))))
	if err := encodeRaw(&e.m, input, e.cfg, out); err != nil {
		return nil, err
	}
	return out.bytes(), nil
}

// CompressRawInto writes the headerless token stream for input into dst
// and returns the number of bytes used.
func (e *Encoder) CompressRawInto(dst, input []byte) (int, error) {
	if len(input) == 0 {
		return 0, ErrInvalidParameter
	}

	out := newBufferSink(dst)
	if err := encodeRaw(&e.m, input, e.cfg, out); err != nil {
		return 0, err
	}
	return len(out.bytes()), nil
}

// CompressStream frames input and streams the result through fn, using
// scratch as the flush buffer (§4.8 "Framed-stream output").
func (e *Encoder) CompressStream(input, scratch []byte, fn WriteFunc) error {
	if len(input) == 0 {
		return ErrInvalidParameter
	}

	ring, err := newRingSink(scratch, fn)
	if err != nil {
		return err
	}

	if err := ring.write(frameHeaderBytes(len(input))); err != nil {
		return err
	}
	if err := encodeRaw(&e.m, input, e.cfg, ring); err != nil {
		return err
	}
	if err := ring.write(le32Bytes(crc32Checksum(input))); err != nil {
		return err
	}

	return ring.flush()
}

// CompressRawStream streams the headerless token stream for input through
// fn, using scratch as the flush buffer (§4.8 "Raw-stream output").
func (e *Encoder) CompressRawStream(input, scratch []byte, fn WriteFunc) error {
	if len(input) == 0 {
		return ErrInvalidParameter
	}

	ring, err := newRingSink(scratch, fn)
	if err != nil {
		return err
	}

	if err := encodeRaw(&e.m, input, e.cfg, ring); err != nil {
		return err
	}

	return ring.flush()
}

// frameHeaderBytes returns the 8-byte magic+size header for an input of
// the given length.
func frameHeaderBytes(inputSize int) []byte {
	return appendFrameHeader(make([]byte, 0, frameHeaderSize), inputSize)
}

// le32Bytes returns the 4-byte little-endian encoding of v.
func le32Bytes(v uint32) []byte {
	return writeLE32(nil, v)
}

// Compress returns the framed compression of input using DefaultConfig
// (or cfg, if non-nil). This is a convenience wrapper around a throwaway
// Encoder; callers making many calls should construct one Encoder and
// reuse it instead.
func Compress(input []byte, cfg *Config) ([]byte, error) {
	return NewEncoder(cfg).Compress(input)
}

// CompressInto is the buffer-output variant of Compress (§6
// "compress(input, output_capacity, config) -> used_length | error").
func CompressInto(dst, input []byte, cfg *Config) (int, error) {
	return NewEncoder(cfg).CompressInto(dst, input)
}

// CompressRaw returns the headerless token stream for input.
func CompressRaw(input []byte, cfg *Config) ([]byte, error) {
	return NewEncoder(cfg).CompressRaw(input)
}

// CompressRawInto is the buffer-output variant of CompressRaw.
func CompressRawInto(dst, input []byte, cfg *Config) (int, error) {
	return NewEncoder(cfg).CompressRawInto(dst, input)
}

// CompressStream frames and streams the compression of input through fn.
func CompressStream(input, scratch []byte, fn WriteFunc, cfg *Config) error {
	return NewEncoder(cfg).CompressStream(input, scratch, fn)
}

// CompressRawStream streams the headerless token stream for input through fn.
func CompressRawStream(input, scratch []byte, fn WriteFunc, cfg *Config) error {
	return NewEncoder(cfg).CompressRawStream(input, scratch, fn)
}
