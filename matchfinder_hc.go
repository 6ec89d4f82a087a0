// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate (derived from github.com/woozymasta/lzo)

package deflate

// hcMatcher is the hash-chain matchfinder used by compression levels 2..9
// (spec.md §4.4 "Hash chain (HC)"). It generalizes the teacher's
// slidingWindowDict: instead of LZO's byte-oriented ring buffer over a
// copied window, it keeps the whole input in memory (this codec compresses
// one in-memory buffer at a time, spec.md §5) and bounds its hash-chain
// arrays to one window's worth of positions via mfBase/mfRebase, exactly
// the rebase discipline spec.md §3/§9 describes.
const (
	hcHashBits = 15
	hcHashSize = 1 << hcHashBits
)

type hcMatcher struct {
	input []byte
	base  mfBase

	// head[h] is the most recently inserted position (relative to base)
	// whose first 3 bytes hash to h.
	head [hcHashSize]mfPos
	// prev[pos % windowSize] is the position (relative to base) inserted
	// immediately before pos in the same hash chain.
	prev [windowSize]mfPos
}

func newHCMatcher(input []byte) *hcMatcher {
	m := &hcMatcher{input: input}
	for i := range m.head {
		m.head[i] = mfNullPos
	}
	for i := range m.prev {
		m.prev[i] = mfNullPos
	}
	return m
}

func hcHash3(b []byte) uint32 {
	v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
	return (v * 2654435761) >> (32 - hcHashBits)
}

// insert records position pos (which must have at least 3 bytes of
// lookahead) in the hash chain.
func (m *hcMatcher) insert(pos int) {
	m.base.maybeRebase(pos, m.head[:], m.prev[:])
	h := hcHash3(m.input[pos:])
	rel := m.base.rel(pos)
	m.prev[pos%windowSize] = m.head[h]
	m.head[h] = rel
}

// findLongest searches the hash chain rooted at pos for the longest match,
// subject to niceLen and maxSearchDepth (spec.md §4.4). It does not insert
// pos itself; call insert separately once skip/advance decisions are made.
// Returns matchLen 0 if no match of at least minMatchLen bytes was found.
func (m *hcMatcher) findLongest(pos int, niceLen, maxSearchDepth int) (length int, distance int) {
	limit := len(m.input)
	maxLen := limit - pos
	if maxLen > maxMatchLen {
		maxLen = maxMatchLen
	}
	if maxLen < minMatchLen {
		return 0, 0
	}

	h := hcHash3(m.input[pos:])
	cand := m.head[h]
	bestLen := minMatchLen - 1

	for depth := 0; depth < maxSearchDepth && cand != mfNullPos; depth++ {
		candAbs := m.base.abs(cand)
		if candAbs >= pos || pos-candAbs > windowSize {
			break
		}

		// Quick reject: compare the byte just past the current best
		// length before doing a full extend (spec.md §4.4 "compare a
		// trailing pair ... on prefix match, extend").
		if bestLen < maxLen && m.input[candAbs+bestLen] == m.input[pos+bestLen] {
			l := lzExtend(m.input, pos, candAbs, maxLen)
			if l > bestLen {
				bestLen = l
				distance = pos - candAbs
				if l >= niceLen || l >= maxLen {
					break
				}
			}
		}

		cand = m.prev[candAbs%windowSize]
	}

	if bestLen < minMatchLen {
		return 0, 0
	}
	return bestLen, distance
}

// matchAndInsert is the uniform single-best-match entry point shared by
// the greedy and lazy parsers (see the matcher interface in
// parser_greedy.go): search, then insert pos so later searches see it.
func (m *hcMatcher) matchAndInsert(pos, niceLen, maxSearchDepth int) (length, distance int) {
	length, distance = m.findLongest(pos, niceLen, maxSearchDepth)
	m.skip(pos, 1)
	return length, distance
}

// skip advances the matchfinder over [pos, pos+n) without searching,
// inserting each position into its hash chain (spec.md §4.4 "skip-bytes").
func (m *hcMatcher) skip(pos, n int) {
	limit := len(m.input) - minMatchLen + 1
	for i := 0; i < n; i++ {
		p := pos + i
		if p < limit {
			m.insert(p)
		}
	}
}
