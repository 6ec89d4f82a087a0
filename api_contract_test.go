// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate (derived from github.com/woozymasta/lzo)

package deflate

import (
	"bytes"
	"testing"
)

// TestAPIContract_ResultStringsAreExhaustiveAndDistinct verifies every
// Result value maps to a non-empty, distinct label and that no unknown
// value is silently aliased onto a known one.
func TestAPIContract_ResultStringsAreExhaustiveAndDistinct(t *testing.T) {
	known := []Result{ResultSuccess, ResultBadData, ResultShortOutput, ResultInsufficientSpace}
	seen := make(map[string]bool)
	for _, r := range known {
		s := r.String()
		if s == "" || s == "unknown_result" {
			t.Fatalf("Result %d stringified to %q", r, s)
		}
		if seen[s] {
			t.Fatalf("Result %d duplicates label %q", r, s)
		}
		seen[s] = true
	}
	if Result(99).String() != "unknown_result" {
		t.Fatalf("an out-of-range Result should stringify to unknown_result")
	}
}

// TestAPIContract_LevelBoundsInclusive checks that 0 and 12 (the documented
// inclusive bounds) both construct successfully and that one step outside
// either bound is rejected.
func TestAPIContract_LevelBoundsInclusive(t *testing.T) {
	for _, level := range []int{0, 12} {
		if _, err := NewCompressor(level); err != nil {
			t.Fatalf("NewCompressor(%d) (boundary) failed: %v", level, err)
		}
	}
	for _, level := range []int{-1, 13} {
		if _, err := NewCompressor(level); err != ErrInvalidLevel {
			t.Fatalf("NewCompressor(%d) error = %v, want ErrInvalidLevel", level, err)
		}
	}
}

// TestAPIContract_CompressBoundMonotonic checks that the bound formula
// never decreases as input length grows, which every level relies on to
// size a single reusable output buffer.
func TestAPIContract_CompressBoundMonotonic(t *testing.T) {
	c, _ := NewCompressor(6)
	prev := c.CompressBound(0)
	for _, n := range []int{1, 10, 100, 1000, 100000} {
		b := c.CompressBound(n)
		if b < prev {
			t.Fatalf("CompressBound(%d) = %d, less than CompressBound of smaller input %d", n, b, prev)
		}
		prev = b
	}
}

// TestAPIContract_CompressBoundHandlesZero ensures a zero-length input
// still gets a usable (non-zero) bound, since an empty DEFLATE stream is
// still a single final block with a byte or so of framing.
func TestAPIContract_CompressBoundHandlesZero(t *testing.T) {
	c, _ := NewCompressor(6)
	if b := c.CompressBound(0); b <= 0 {
		t.Fatalf("CompressBound(0) = %d, want > 0", b)
	}
}

// TestAPIContract_AllocatorLocksAfterFirstCodec exercises spec.md §5's
// "set exactly once, before any codec exists" allocator rule end to end.
func TestAPIContract_AllocatorLocksAfterFirstCodec(t *testing.T) {
	// A codec was already constructed by earlier tests in this package
	// (package-level state is shared across tests), so the allocator
	// window is necessarily closed by the time this test runs.
	err := SetMemoryAllocator(Allocator{Alloc: func(n int) []byte { return make([]byte, n) }})
	if err != ErrAllocatorAlreadySet {
		t.Fatalf("SetMemoryAllocator after codec construction = %v, want ErrAllocatorAlreadySet", err)
	}
}

// TestAPIContract_EmptyInputRoundTrips exercises the zero-length edge case
// explicitly, since it takes the n==0 early-return path in runBlocks.
func TestAPIContract_EmptyInputRoundTrips(t *testing.T) {
	c, _ := NewCompressor(6)
	out := make([]byte, c.CompressBound(0))
	n := c.Compress(nil, out)

	d := NewDecompressor()
	decoded := make([]byte, 0)
	res, _, actualOut := d.Decompress(out[:n], decoded)
	if res != ResultSuccess {
		t.Fatalf("Decompress of empty stream = %v, want success", res)
	}
	if actualOut != 0 {
		t.Fatalf("actualOut = %d, want 0", actualOut)
	}
}

// TestAPIContract_DecompressReportsBytesConsumedOnFailure checks that a
// failed Decompress still reports how far it got, so a caller trying to
// recover a partial stream knows where decoding stopped.
func TestAPIContract_DecompressReportsBytesConsumedOnFailure(t *testing.T) {
	data := bytes.Repeat([]byte("partial recovery test"), 300)
	c, _ := NewCompressor(6)
	out := make([]byte, c.CompressBound(len(data)))
	n := c.Compress(data, out)

	d := NewDecompressor()
	decoded := make([]byte, len(data))
	truncated := out[:n-1]
	res, consumed, _ := d.Decompress(truncated, decoded)
	if res == ResultSuccess {
		t.Fatalf("Decompress on a stream missing its final byte reported success")
	}
	if consumed <= 0 {
		t.Fatalf("consumed = %d on a failing decode, want > 0 (partial progress)", consumed)
	}
}

// TestAPIContract_CompressIsDeterministic checks that compressing the same
// input twice with a fresh Compressor each time produces byte-identical
// output, since nothing in this codec's design depends on time, randomness,
// or map iteration order.
func TestAPIContract_CompressIsDeterministic(t *testing.T) {
	data := bytes.Repeat([]byte("determinism matters here"), 400)
	for _, level := range []int{0, 6, 9, 12} {
		c1, _ := NewCompressor(level)
		out1 := make([]byte, c1.CompressBound(len(data)))
		n1 := c1.Compress(data, out1)

		c2, _ := NewCompressor(level)
		out2 := make([]byte, c2.CompressBound(len(data)))
		n2 := c2.Compress(data, out2)

		if n1 != n2 || !bytes.Equal(out1[:n1], out2[:n2]) {
			t.Fatalf("level %d: Compress produced different output across two fresh compressors", level)
		}
	}
}

// TestAPIContract_NonFinalThenFinalMultiBlockStreamDecodes drives a multi-
// block stream end to end (300000 incompressible bytes at level 9 are
// written as uncompressed blocks of at most 65535 bytes each, so the
// stream holds several blocks) to exercise the final-flag plumbing across
// block boundaries.
func TestAPIContract_NonFinalThenFinalMultiBlockStreamDecodes(t *testing.T) {
	data := pseudoRandom(300000)
	c, _ := NewCompressor(9)
	out := make([]byte, c.CompressBound(len(data)))
	n := c.Compress(data, out)

	d := NewDecompressor()
	decoded := make([]byte, len(data))
	res, _, actualOut := d.Decompress(out[:n], decoded)
	if res != ResultSuccess {
		t.Fatalf("Decompress result = %v", res)
	}
	if !bytes.Equal(decoded[:actualOut], data) {
		t.Fatalf("multi-block round-trip mismatch")
	}
}
