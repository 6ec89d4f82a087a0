// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate (derived from github.com/woozymasta/lzo)

package deflate

import "encoding/binary"

// gzip (RFC 1952) wraps a raw deflate stream in a header carrying optional
// name/comment/mtime metadata and a trailer of CRC-32 + uncompressed size
// mod 2^32. Grounded on the pack's tinycompress-zlib example's sibling
// gzip framing and RFC 1952 directly for the optional-field layout.
const (
	gzipMagic1 = 0x1f
	gzipMagic2 = 0x8b
	gzipCM8    = 8

	gzipFlagFTEXT    = 1 << 0
	gzipFlagFHCRC    = 1 << 1
	gzipFlagFEXTRA   = 1 << 2
	gzipFlagFNAME    = 1 << 3
	gzipFlagFCOMMENT = 1 << 4
)

// CompressGzip writes a gzip-wrapped deflate stream for input into output
// using the minimal header (DefaultGzipOptions), returning the total bytes
// written or 0 if output was too small.
func (c *Compressor) CompressGzip(input, output []byte) int {
	return c.CompressGzipOpts(input, output, DefaultGzipOptions())
}

// CompressGzipOpts is CompressGzip with explicit header metadata.
func (c *Compressor) CompressGzipOpts(input, output []byte, opts GzipOptions) int {
	flg := byte(0)
	if opts.Name != "" {
		flg |= gzipFlagFNAME
	}
	if opts.Comment != "" {
		flg |= gzipFlagFCOMMENT
	}

	headerLen := 10
	if opts.Name != "" {
		headerLen += len(opts.Name) + 1
	}
	if opts.Comment != "" {
		headerLen += len(opts.Comment) + 1
	}
	if len(output) < headerLen+8 {
		return 0
	}

	output[0] = gzipMagic1
	output[1] = gzipMagic2
	output[2] = gzipCM8
	output[3] = flg
	binary.LittleEndian.PutUint32(output[4:], opts.MTIME)
	output[8] = 0 // XFL
	output[9] = opts.OS

	pos := 10
	if opts.Name != "" {
		pos += copy(output[pos:], opts.Name)
		output[pos] = 0
		pos++
	}
	if opts.Comment != "" {
		pos += copy(output[pos:], opts.Comment)
		output[pos] = 0
		pos++
	}

	n := c.Compress(input, output[pos:])
	if n == 0 {
		return 0
	}

	total := pos + n + 8
	if total > len(output) {
		return 0
	}
	binary.LittleEndian.PutUint32(output[pos+n:], gzipChecksum(input))
	binary.LittleEndian.PutUint32(output[pos+n+4:], uint32(len(input)))
	return total
}

// DecompressGzip validates a gzip header/trailer and decodes the enclosed
// deflate stream into output.
func (d *Decompressor) DecompressGzip(input, output []byte) (Result, int, int) {
	if len(input) < 10 {
		return ResultBadData, 0, 0
	}
	if input[0] != gzipMagic1 || input[1] != gzipMagic2 || input[2] != gzipCM8 {
		return ResultBadData, 0, 0
	}
	flg := input[3]
	if flg&0xE0 != 0 {
		return ResultBadData, 0, 0 // reserved FLG bits must be zero
	}

	pos := 10
	if flg&gzipFlagFEXTRA != 0 {
		if pos+2 > len(input) {
			return ResultBadData, 0, 0
		}
		xlen := int(binary.LittleEndian.Uint16(input[pos:]))
		pos += 2 + xlen
		if pos > len(input) {
			return ResultBadData, 0, 0
		}
	}
	if flg&gzipFlagFNAME != 0 {
		end := pos
		for end < len(input) && input[end] != 0 {
			end++
		}
		if end >= len(input) {
			return ResultBadData, 0, 0
		}
		pos = end + 1
	}
	if flg&gzipFlagFCOMMENT != 0 {
		end := pos
		for end < len(input) && input[end] != 0 {
			end++
		}
		if end >= len(input) {
			return ResultBadData, 0, 0
		}
		pos = end + 1
	}
	if flg&gzipFlagFHCRC != 0 {
		pos += 2
		if pos > len(input) {
			return ResultBadData, 0, 0
		}
	}

	res, consumed, n := d.Decompress(input[pos:], output)
	actualIn := pos + consumed
	if res != ResultSuccess {
		return res, actualIn, n
	}

	if actualIn+8 > len(input) {
		return ResultBadData, actualIn, n
	}
	wantCRC := binary.LittleEndian.Uint32(input[actualIn:])
	wantISize := binary.LittleEndian.Uint32(input[actualIn+4:])
	if wantCRC != gzipChecksum(output[:n]) {
		return ResultBadData, actualIn + 8, n
	}
	if wantISize != uint32(n) {
		return ResultBadData, actualIn + 8, n
	}
	return ResultSuccess, actualIn + 8, n
}
