// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate (derived from github.com/woozymasta/lzo)

package deflate

import "errors"

// Sentinel errors for construction-time and allocator failures. Per-call
// decompression outcomes use the closed Result enum below, not errors,
// matching spec.md §7's "decompress(...) -> result {...}" contract.
var (
	// ErrInvalidLevel is returned by NewCompressor for a level outside 0..12.
	ErrInvalidLevel = errors.New("deflate: compression level must be 0..12")

	// ErrOutputTooSmall names the "output buffer too small" condition. No
	// function in this package returns it: Compress, CompressZlib and
	// CompressGzip report a too-small output by returning 0.
	ErrOutputTooSmall = errors.New("deflate: output buffer too small")

	// ErrAllocatorAlreadySet is returned by SetMemoryAllocator if called
	// again after a codec has already been constructed (spec.md §5).
	ErrAllocatorAlreadySet = errors.New("deflate: memory allocator already set")

	// errCompressInternal marks an internal invariant violation in the
	// compressor (mirrors the teacher's ErrCompressInternal). It never
	// crosses the public API: Compress recovers it and returns 0.
	errCompressInternal = errors.New("deflate: internal compressor invariant violated")
)

// Result is the closed outcome of a decompression call (spec.md §7).
type Result int

const (
	// ResultSuccess means the requested/expected output was fully produced.
	ResultSuccess Result = iota
	// ResultBadData means the input violated the DEFLATE/zlib/gzip format
	// or contained an invalid Huffman code.
	ResultBadData
	// ResultShortOutput means the stream ended cleanly (valid final block,
	// valid trailer) but produced fewer bytes than the caller's buffer
	// implied were expected, and actual-length reporting was not requested.
	ResultShortOutput
	// ResultInsufficientSpace means the output buffer was exhausted before
	// a block finished decoding.
	ResultInsufficientSpace
)

func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "success"
	case ResultBadData:
		return "bad_data"
	case ResultShortOutput:
		return "short_output"
	case ResultInsufficientSpace:
		return "insufficient_space"
	default:
		return "unknown_result"
	}
}
