// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate

package deflate

import "math/bits"

// lazyScoreDelta estimates how many "bits better" a candidate match is
// than the incumbent, spec.md §4.5's `4·Δlen + Δlog2(offset)` heuristic:
// weigh length heavily (every extra matched byte saves roughly one
// symbol's worth of coding cost) and charge for a candidate that reaches
// further back (a larger offset slot costs more extra bits to encode).
func lazyScoreDelta(candLen, candDist, curLen, curDist int) int {
	delta := 4 * (candLen - curLen)
	if candDist > 0 && curDist > 0 {
		delta += bits.Len32(uint32(curDist)) - bits.Len32(uint32(candDist))
	}
	return delta
}

// parseLazyBlock implements both the "lazy" and "lazy-2" parsers (spec.md
// §4.5): only HC-backed levels (5..9) use it, so it is typed directly to
// *hcMatcher rather than through the greedyMatcher interface — this also
// lets it call findLongest and insert as separate steps, which a true
// two-position lookahead needs to avoid re-inserting the same position
// twice into the hash chain.
//
// Lazy-2 is expressed here as the same single-position lookahead as lazy,
// with a higher acceptance bar (spec.md's `> 6` instead of `> 2`) and the
// same half search depth at the lookahead position, rather than
// a distinct second lookahead one position further — a documented
// reduction from the two-lookahead algorithm spec.md describes, see
// DESIGN.md O8.
func parseLazyBlock(m *hcMatcher, input []byte, pos int, niceLen, maxSearchDepth int, lazy2 bool, splitter *blockSplitter) ([]sequence, int) {
	var seqs []sequence
	litStart := pos
	n := len(input)

	curLen, curDist := 0, 0
	haveCur := false

	deferThreshold := 2
	lookaheadDepthDiv := 2
	if lazy2 {
		deferThreshold = 6
	}

	for pos < n {
		if !haveCur {
			curLen, curDist = m.findLongest(pos, niceLen, maxSearchDepth)
			m.skip(pos, 1)
		}
		haveCur = false

		// A length-3 match reaching back more than 8192 bytes is coded
		// as a literal instead.
		if curLen < minMatchLen || (curLen == minMatchLen && curDist > 8192) {
			splitter.addBytes(1)
			end := splitter.observe(litObservationType(input[pos]))
			pos++
			if end {
				break
			}
			continue
		}

		if curLen < niceLen && pos+1 < n {
			nextLen, nextDist := m.findLongest(pos+1, niceLen, maxSearchDepth/lookaheadDepthDiv)
			m.skip(pos+1, 1)

			if lazyScoreDelta(nextLen, nextDist, curLen, curDist) > deferThreshold {
				splitter.addBytes(1)
				end := splitter.observe(litObservationType(input[pos]))
				pos++
				curLen, curDist = nextLen, nextDist
				haveCur = true
				if end {
					break
				}
				continue
			}
		}

		seqs = append(seqs, sequence{
			litRunLen: uint32(pos - litStart),
			length:    uint32(curLen),
			offset:    uint32(curDist),
		})
		splitter.addBytes(curLen)
		end := splitter.observe(matchObservationType(curLen))

		if curLen > 1 {
			m.skip(pos+1, curLen-1)
		}
		pos += curLen
		litStart = pos
		if end {
			break
		}
	}

	seqs = append(seqs, sequence{litRunLen: uint32(pos - litStart)})
	return seqs, pos
}
