// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate (derived from github.com/woozymasta/lzo)

package deflate

// htMatcher is the single-slot hash table matchfinder used only by the
// fastest compression level (spec.md §4.4 "Hash table (HT)"). Unlike HC it
// keeps no chain: each bucket remembers exactly one candidate, so a lookup
// costs one comparison instead of a walk.
const (
	htHashBits = 15
	htHashSize = 1 << htHashBits
)

type htMatcher struct {
	input []byte
	base  mfBase
	head  [htHashSize]mfPos
}

func newHTMatcher(input []byte) *htMatcher {
	m := &htMatcher{input: input}
	for i := range m.head {
		m.head[i] = mfNullPos
	}
	return m
}

func htHash4(b []byte) uint32 {
	v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return (v * 2654435761) >> (32 - htHashBits)
}

// findAndInsert looks up pos's bucket, returning any previous match there,
// then overwrites the bucket with pos (spec.md §4.4: "single-slot per
// bucket... one comparison per position; no chain walking").
func (m *htMatcher) findAndInsert(pos int) (length int, distance int) {
	limit := len(m.input)
	maxLen := limit - pos
	if maxLen > maxMatchLen {
		maxLen = maxMatchLen
	}
	if maxLen < 4 {
		return 0, 0
	}

	m.base.maybeRebase(pos, m.head[:])
	h := htHash4(m.input[pos:])
	cand := m.head[h]
	m.head[h] = m.base.rel(pos)

	if cand == mfNullPos {
		return 0, 0
	}
	candAbs := m.base.abs(cand)
	if candAbs >= pos || pos-candAbs > windowSize {
		return 0, 0
	}

	l := lzExtend(m.input, pos, candAbs, maxLen)
	if l < minMatchLen {
		return 0, 0
	}
	return l, pos - candAbs
}

// matchAndInsert adapts findAndInsert to the uniform matcher interface
// shared with hcMatcher; niceLen/maxSearchDepth are unused (level 1 never
// does more than one comparison per position).
func (m *htMatcher) matchAndInsert(pos, niceLen, maxSearchDepth int) (length, distance int) {
	return m.findAndInsert(pos)
}

// skip advances over [pos, pos+n) inserting each position, for parity with
// hcMatcher's skip (spec.md §4.4 "skip-bytes").
func (m *htMatcher) skip(pos, n int) {
	for i := 0; i < n; i++ {
		m.findAndInsert(pos + i)
	}
}
