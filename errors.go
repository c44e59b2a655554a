// SPDX-License-Identifier: MIT
// Source: github.com/zabato/berg

package berg

import "errors"

// Sentinel errors for compression and decompression. Wrap with fmt.Errorf
// and %w where additional context is useful; callers should match with
// errors.Is.
var (
	// ErrInvalidParameter is returned for a nil/empty input, a zero-length
	// encode call, or otherwise inconsistent arguments.
	ErrInvalidParameter = errors.New("berg: invalid parameter")
	// ErrBufferTooSmall is returned when a caller-supplied output buffer
	// does not have enough capacity to hold the result.
	ErrBufferTooSmall = errors.New("berg: buffer too small")
	// ErrCorruptData is returned for a malformed token, a truncated
	// varint, a bad magic, a size mismatch, a CRC mismatch, or a match
	// offset that exceeds the output produced so far.
	ErrCorruptData = errors.New("berg: corrupt data")
	// ErrCallbackFailed is returned when a user-supplied write callback
	// returns an error. The returned error unwraps to this sentinel only;
	// the callback's own error is available through its Cause method.
	ErrCallbackFailed = errors.New("berg: callback failed")
	// ErrCompressionFailed is returned when an internal consistency check
	// fails. This should not occur on valid input; it never occurs from
	// user-triggerable conditions, which are reported as the errors above.
	ErrCompressionFailed = errors.New("berg: compression failed")
)
