// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate

package deflate

import "golang.org/x/sys/cpu"

// Match extension ("lz_extend", spec.md §4.4/§9) has two scalar
// implementations: a word-at-a-time comparison that needs the host to do
// fast unaligned 64-bit loads, and a byte-at-a-time fallback that is always
// correct. Real SIMD code would replace the word-at-a-time path with a
// vector compare; this codec ships only the scalar fallback and the
// scalar "fast" path, but keeps the same dispatch-slot shape spec.md §9
// describes so that a future accelerated implementation drops in without
// touching callers.
var unalignedLoadsFast = detectUnalignedLoadsFast()

// detectUnalignedLoadsFast reports whether the host architecture is known
// to support fast unaligned memory access, using golang.org/x/sys/cpu
// feature flags where available. Architectures without a known-fast flag
// fall back to the safe byte-wise path.
func detectUnalignedLoadsFast() bool {
	switch {
	case cpu.X86.HasSSE2:
		// All amd64 (and effectively all still-relevant 386) CPUs with
		// SSE2 do fast unaligned loads; SSE2 is cheap to probe and a
		// reliable proxy for it.
		return true
	case cpu.ARM64.HasASIMD:
		// Virtually all arm64 cores support fast unaligned access;
		// ASIMD presence is a reasonable proxy on that architecture too.
		return true
	default:
		return false
	}
}
