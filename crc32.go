// SPDX-License-Identifier: MIT
// Source: github.com/zabato/berg

package berg

import "hash/crc32"

// crc32Checksum returns the zlib/gzip-variant CRC-32 (§4.2: polynomial
// 0xEDB88320 after reflection, initial register 0xFFFFFFFF, final XOR
// 0xFFFFFFFF) of
// data. This is exactly crc32.IEEE.
func crc32Checksum(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

// crc32Accumulator folds successive chunks of output into a running
// CRC-32, for the streaming decode path (§4.8: "a wrapping callback
// intercepts the raw-stream output to update a running CRC").
type crc32Accumulator struct {
	table *crc32.Table
	sum   uint32
}

// newCRC32Accumulator returns a zeroed accumulator ready to fold chunks.
func newCRC32Accumulator() *crc32Accumulator {
	return &crc32Accumulator{table: crc32.IEEETable}
}

// write folds data into the running checksum.
func (a *crc32Accumulator) write(data []byte) {
	a.sum = crc32.Update(a.sum, a.table, data)
}

// sum32 returns the checksum of everything folded so far.
func (a *crc32Accumulator) sum32() uint32 {
	return a.sum
}
