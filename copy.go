// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate (derived from github.com/woozymasta/lzo)

package deflate

// copyMatch reconstructs a length-byte back-reference at dst[outPos:] from
// dst[outPos-dist:], the core of DEFLATE's LZ77 decode (spec.md §4.8
// "match copy"). It generalizes the teacher's copyBackRef: that function
// already handled dist < length via exponential self-overlap doubling,
// exactly the technique spec.md §4.8 calls out for the offset ≥ WORDBYTES
// case; this version additionally special-cases offset == 1 (a run of one
// repeated byte, spec.md's "splat the byte" fastloop trick) since that is
// DEFLATE's single most common back-reference shape and the doubling loop
// below already degenerates to it correctly, just less directly.
//
// Returns false (instead of the teacher's distinct sentinel errors) if the
// reference reaches before the start of dst or the match would overrun
// dst; decompress.go turns that into ResultBadData / ResultInsufficientSpace
// as appropriate for the two cases.
func copyMatch(dst []byte, outPos, dist, length int) bool {
	mPos := outPos - dist
	if mPos < 0 {
		return false
	}
	if outPos+length > len(dst) {
		return false
	}

	if dist == 1 {
		b := dst[mPos]
		for i := 0; i < length; i++ {
			dst[outPos+i] = b
		}
		return true
	}

	if dist >= length {
		copy(dst[outPos:outPos+length], dst[mPos:mPos+length])
		return true
	}

	// Seed with one original distance chunk, then grow the copied region
	// exponentially: each iteration doubles how much of the match is
	// filled, which is much cheaper than a byte-by-byte loop for long,
	// short-distance runs.
	copy(dst[outPos:outPos+dist], dst[mPos:outPos])
	copied := dist
	for copied < length {
		n := copy(dst[outPos+copied:outPos+length], dst[outPos:outPos+copied])
		copied += n
	}
	return true
}
