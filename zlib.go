// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate (derived from github.com/woozymasta/lzo)

package deflate

import "encoding/binary"

// zlib (RFC 1950) wraps a raw deflate stream in a 2-byte header and a
// 4-byte big-endian Adler-32 trailer. Grounded on the pack's
// tinycompress-zlib example for the header/trailer layout; the CMF/FLG
// check-bit arithmetic below follows RFC 1950 §2.2 directly since no pack
// example derives FCHECK from FLEVEL step by step.
const (
	zlibCM8       = 8 // CM = 8 (deflate), CINFO = 7 (32 KiB window) -> CMF = 0x78
	zlibCMF       = 0x78
	zlibFlagFDICT = 1 << 5
)

// zlibFLEVEL buckets a compression level into RFC 1950's 2-bit FLEVEL
// field (0 fastest .. 3 best), which is advisory only: decoders must not
// rely on it to pick decode behavior.
func zlibFLEVEL(level int) byte {
	switch {
	case level <= 1:
		return 0
	case level <= 6:
		return 1
	case level <= 9:
		return 2
	default:
		return 3
	}
}

// CompressZlib writes a zlib-wrapped deflate stream for input into output,
// returning the total bytes written or 0 if output was too small.
func (c *Compressor) CompressZlib(input, output []byte) int {
	if len(output) < 6 {
		return 0
	}

	cmf := byte(zlibCMF)
	flg := zlibFLEVEL(c.level) << 6
	check := (uint16(cmf)<<8 | uint16(flg)) % 31
	if check != 0 {
		flg += byte(31 - check)
	}
	output[0] = cmf
	output[1] = flg

	n := c.Compress(input, output[2:])
	if n == 0 {
		return 0
	}

	total := 2 + n + 4
	if total > len(output) {
		return 0
	}
	binary.BigEndian.PutUint32(output[2+n:], zlibChecksum(input))
	return total
}

// DecompressZlib validates a zlib header/trailer and decodes the enclosed
// deflate stream into output.
func (d *Decompressor) DecompressZlib(input, output []byte) (Result, int, int) {
	if len(input) < 6 {
		return ResultBadData, 0, 0
	}

	cmf, flg := input[0], input[1]
	if cmf&0x0F != zlibCM8 {
		return ResultBadData, 0, 0
	}
	if (uint16(cmf)<<8|uint16(flg))%31 != 0 {
		return ResultBadData, 0, 0
	}
	if flg&zlibFlagFDICT != 0 {
		return ResultBadData, 0, 0 // preset dictionaries are a non-goal
	}

	res, consumed, n := d.Decompress(input[2:], output)
	actualIn := 2 + consumed
	if res != ResultSuccess {
		return res, actualIn, n
	}

	if actualIn+4 > len(input) {
		return ResultBadData, actualIn, n
	}
	want := binary.BigEndian.Uint32(input[actualIn:])
	if want != zlibChecksum(output[:n]) {
		return ResultBadData, actualIn + 4, n
	}
	return ResultSuccess, actualIn + 4, n
}
