// SPDX-License-Identifier: MIT
// Source: github.com/zabato/berg

package berg

// Frame layout constants (§4, §6).
const (
	magicSize       = 4
	sizeFieldSize   = 4
	crcFieldSize    = 4
	frameHeaderSize = magicSize + sizeFieldSize
	frameOverhead   = frameHeaderSize + crcFieldSize
)

var magic = [magicSize]byte{'B', 'E', 'R', 'G'}

// appendFrameHeader appends the 8-byte magic+size header to dst.
func appendFrameHeader(dst []byte, originalSize int) []byte {
	dst = append(dst, magic[:]...)
	return writeLE32(dst, uint32(originalSize)) //nolint:gosec // G115: originalSize bounded by caller-supplied slice length
}

// parseFrameHeader validates the magic and returns the declared original
// size. compressed must be at least frameOverhead bytes (checked by the
// caller, since the minimum frame size is a parameter-validation concern
// there).
func parseFrameHeader(compressed []byte) (originalSize int, err error) {
	if compressed[0] != magic[0] || compressed[1] != magic[1] ||
		compressed[2] != magic[2] || compressed[3] != magic[3] {
		return 0, ErrCorruptData
	}
	return int(readLE32(compressed[magicSize:])), nil
}

// EstimateMaxCompressedSize returns a conservative upper bound on the
// compressed size of an inputSize-byte buffer, for sizing a destination
// buffer ahead of Compress (§4.8, §9). The bound is not tight: worst case
// is all-literal input, where short literal runs pay close to a 2-byte
// head word per few literal bytes; input/2 plus the fixed frame overhead
// comfortably covers that.
func EstimateMaxCompressedSize(inputSize int) int {
	return inputSize + inputSize/2 + 64
}

// DecompressedSize reads a frame's header without running the raw decode
// loop, returning the original plaintext length it declares. This lets a
// caller size a destination buffer before committing to a full Decompress
// call (grounded on berg_decompress's NULL-output early return; see
// SPEC_FULL.md).
func DecompressedSize(compressed []byte) (int, error) {
	if len(compressed) < frameOverhead {
		return 0, ErrInvalidParameter
	}
	return parseFrameHeader(compressed)
}
