// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate

package deflate

// greedyMatcher is the common surface parseGreedyBlock needs from either
// matchfinder it can run over (HT at level 1, HC at levels 2..4); it hides
// their different internal state shapes behind the single operation the
// greedy parser actually performs at each position (spec.md §9
// "polymorphic matchfinder dispatch").
type greedyMatcher interface {
	matchAndInsert(pos, niceLen, maxSearchDepth int) (length, distance int)
	skip(pos, n int)
}

// greedyMinMatchLen is the minimum length accepted on its own; a length-3
// match is accepted only when its offset is small (spec.md §4.5's
// parenthetical "or length = 3 and offset ≤ 4096"). The real algorithm
// adapts the 3-vs-4 threshold per block from literal diversity; this
// codec uses the fixed threshold documented here instead (DESIGN.md O7).
const (
	greedyMinMatchLen     = 4
	greedyShortMatchLen   = 3
	greedyShortMatchBound = 4096
)

// parseGreedyBlock emits sequences from input[pos:] until the block
// splitter signals a boundary or the input is exhausted (spec.md §4.5
// "Greedy"). It returns the sequences and the position just past the last
// byte they account for.
func parseGreedyBlock(m greedyMatcher, input []byte, pos int, niceLen, maxSearchDepth int, splitter *blockSplitter) ([]sequence, int) {
	var seqs []sequence
	litStart := pos
	n := len(input)

	for pos < n {
		length, distance := m.matchAndInsert(pos, niceLen, maxSearchDepth)
		accept := length >= greedyMinMatchLen || (length == greedyShortMatchLen && distance <= greedyShortMatchBound)

		if !accept {
			splitter.addBytes(1)
			end := splitter.observe(litObservationType(input[pos]))
			pos++
			if end {
				break
			}
			continue
		}

		seqs = append(seqs, sequence{
			litRunLen: uint32(pos - litStart),
			length:    uint32(length),
			offset:    uint32(distance),
		})
		splitter.addBytes(length)
		end := splitter.observe(matchObservationType(length))

		if length > 1 {
			m.skip(pos+1, length-1)
		}
		pos += length
		litStart = pos
		if end {
			break
		}
	}

	seqs = append(seqs, sequence{litRunLen: uint32(pos - litStart)})
	return seqs, pos
}
