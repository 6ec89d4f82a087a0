// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate (derived from github.com/woozymasta/lzo)

package deflate

// btMatcher is the binary-tree matchfinder used by the near-optimal
// compression levels 10..12 (spec.md §4.4 "Binary tree (BT)"). Each hash
// bucket roots a binary search tree keyed lexicographically on the bytes
// starting at a node's position; inserting a new position rebuilds the
// tree along the search path, splitting it between the new node's left
// ("lexicographically less") and right ("greater") children as the
// classic LZMA/libdeflate bt_matchfinder algorithm does: the new node
// always becomes root, and the old subtree is re-spliced into its two
// children while the search for matches is performed in the same pass.
const (
	btHashBits = 16
	btHashSize = 1 << btHashBits
)

type btMatcher struct {
	input []byte
	base  mfBase

	root  [btHashSize]mfPos
	left  [windowSize]mfPos
	right [windowSize]mfPos
}

func newBTMatcher(input []byte) *btMatcher {
	m := &btMatcher{input: input}
	for i := range m.root {
		m.root[i] = mfNullPos
	}
	return m
}

func btHash3(b []byte) uint32 {
	v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
	return (v * 2654435761) >> (32 - btHashBits)
}

// btMatch records one length/distance candidate surfaced during insertion.
type btMatch struct {
	length   int
	distance int
}

// insertAndFindMatches inserts pos into its bucket's tree and returns every
// distinct-length match found along the way, in increasing length order
// (each one longer than the one before), subject to niceLen and maxSearchDepth (spec.md §4.4, §4.5 "cache
// all distinct-length matches"). It never reads past pos+maxLen.
func (m *btMatcher) insertAndFindMatches(pos, niceLen, maxSearchDepth int) []btMatch {
	limit := len(m.input)
	maxLen := limit - pos
	if maxLen > maxMatchLen {
		maxLen = maxMatchLen
	}

	m.base.maybeRebase(pos, m.root[:], m.left[:], m.right[:])

	slot := pos % windowSize
	if maxLen < minMatchLen {
		m.left[slot] = mfNullPos
		m.right[slot] = mfNullPos
		return nil
	}

	h := btHash3(m.input[pos:])
	cur := m.root[h]
	m.root[h] = m.base.rel(pos)

	var matches []btMatch
	bestLen := 0
	bestLtLen, bestGtLen := 0, 0

	// ltAttachLeft/ltAttachIdx and gtAttachLeft/gtAttachIdx name the array
	// and index that must be overwritten next on the "less than" and
	// "greater than" splice paths; both begin at pos's own child slots.
	ltAttachLeft, ltAttachIdx := true, slot  // true  => write into m.left
	gtAttachLeft, gtAttachIdx := false, slot // false => write into m.right
	ltTail, gtTail := mfNullPos, mfNullPos

	for depth := 0; depth < maxSearchDepth && cur != mfNullPos; depth++ {
		candAbs := m.base.abs(cur)
		if candAbs >= pos || pos-candAbs > windowSize {
			break
		}

		commonLen := bestLtLen
		if bestGtLen < commonLen {
			commonLen = bestGtLen
		}
		l := commonLen + lzExtend(m.input, pos+commonLen, candAbs+commonLen, maxLen-commonLen)

		if l > bestLen && l >= minMatchLen {
			bestLen = l
			matches = append(matches, btMatch{length: l, distance: pos - candAbs})
			if l >= niceLen || l >= maxLen {
				// pos adopts cur's two subtrees; cur leaves the tree.
				ltTail, gtTail = m.left[candAbs%windowSize], m.right[candAbs%windowSize]
				break
			}
		}

		candSlot := candAbs % windowSize
		if l < maxLen && m.input[candAbs+l] < m.input[pos+l] {
			// cur's suffix is lexicographically less than pos's: attach it
			// on the "less than" splice path and continue searching its
			// right child (the only subtree that can hold elements
			// greater than cur but still less than pos).
			if ltAttachLeft {
				m.left[ltAttachIdx] = mfPos(cur)
			} else {
				m.right[ltAttachIdx] = mfPos(cur)
			}
			ltAttachLeft, ltAttachIdx = false, candSlot
			bestLtLen = l
			cur = m.right[candSlot]
		} else {
			if gtAttachLeft {
				m.left[gtAttachIdx] = mfPos(cur)
			} else {
				m.right[gtAttachIdx] = mfPos(cur)
			}
			gtAttachLeft, gtAttachIdx = true, candSlot
			bestGtLen = l
			cur = m.left[candSlot]
		}
	}

	if ltAttachLeft {
		m.left[ltAttachIdx] = ltTail
	} else {
		m.right[ltAttachIdx] = ltTail
	}
	if gtAttachLeft {
		m.left[gtAttachIdx] = gtTail
	} else {
		m.right[gtAttachIdx] = gtTail
	}

	return matches
}

// skip advances the matchfinder over [pos, pos+n) without collecting
// matches, still inserting each position so later searches see it
// (spec.md §4.5 "skip them in the BT" for near-optimal's nice-length
// shortcut).
func (m *btMatcher) skip(pos, n, niceLen, maxSearchDepth int) {
	for i := 0; i < n; i++ {
		m.insertAndFindMatches(pos+i, niceLen, maxSearchDepth)
	}
}
