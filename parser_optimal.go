// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate

package deflate

// matchCacheEntry caches every distinct-length match the BT matchfinder
// found at one input position (spec.md §4.5 "cache all distinct-length
// matches"); a position with no improving match has an empty slice.
type matchCacheEntry struct {
	matches []btMatch
}

// parseNearOptimalBlock runs phase 1 of the near-optimal parser (spec.md
// §4.5): scan forward caching BT matches until the block splitter signals
// a boundary, softMaxBlockLen is reached, or input ends, then hand the
// cache to the backward-cost optimization phase.
//
// Spec.md additionally describes rewinding the cache to a previously
// approved checkpoint when the splitter signals mid-scan and re-using the
// unconsumed tail for the next block's cache. This implementation instead
// simply stops the scan at the position where the splitter first signals
// — a documented simplification (no checkpoint rewind/memmove) that costs
// at most one block's worth of split precision; see DESIGN.md O9.
func parseNearOptimalBlock(bt *btMatcher, input []byte, blockStart, niceLen, maxSearchDepth, numOptimPasses int, splitter *blockSplitter) ([]sequence, int) {
	n := len(input)
	end := blockStart + softMaxBlockLen
	if end > n {
		end = n
	}

	var cache []matchCacheEntry
	pos := blockStart

	for pos < end {
		matches := bt.insertAndFindMatches(pos, niceLen, maxSearchDepth)
		cache = append(cache, matchCacheEntry{matches: matches})

		bestLen := 0
		for _, mt := range matches {
			if mt.length > bestLen {
				bestLen = mt.length
			}
		}

		obsType := litObservationType(input[pos])
		if bestLen >= shortMatchBound {
			obsType = matchObservationType(bestLen)
		}
		splitter.addBytes(1)
		split := splitter.observe(obsType)
		pos++

		if split {
			break
		}

		if bestLen >= niceLen {
			skipN := bestLen - 1
			if pos+skipN > end {
				skipN = end - pos
			}
			if skipN > 0 {
				bt.skip(pos, skipN, niceLen, maxSearchDepth)
				for i := 0; i < skipN; i++ {
					cache = append(cache, matchCacheEntry{})
				}
				splitter.addBytes(skipN)
				pos += skipN
			}
		}
	}

	seqs := optimizeBlock(input, blockStart, pos, cache, numOptimPasses)
	return seqs, pos
}

// optimumNode is one position's result from the backward minimum-cost
// pass: the cost of everything from here to the block's end under the
// current pass's symbol costs, and which transition (literal or the
// recorded match) achieves it.
type optimumNode struct {
	costToEnd uint32
	length    int
	offset    int
}

// optimizeBlock runs phase 2 of the near-optimal parser (spec.md §4.5):
// repeated backward-minimum-cost passes, each rebuilding Huffman codes
// from the chosen path's frequencies and deriving next pass's costs from
// those codeword lengths. The first pass uses a flat default cost table
// (defaultLitlenCost/defaultOffsetCost in tables.go) rather than spec.md's
// bucketed-by-literal-diversity default table; see DESIGN.md O6.
func optimizeBlock(input []byte, start, end int, cache []matchCacheEntry, numPasses int) []sequence {
	blockLen := end - start
	if blockLen == 0 {
		return []sequence{{}}
	}

	litlenCost := make([]uint32, numLitlenSyms)
	offsetCost := make([]uint32, numOffsetSyms)
	for s := range litlenCost {
		litlenCost[s] = defaultLitlenCost(s)
	}
	for s := range offsetCost {
		offsetCost[s] = defaultOffsetCost(s)
	}

	nodes := make([]optimumNode, blockLen+1)

	if numPasses < 1 {
		numPasses = 1
	}
	for pass := 0; pass < numPasses; pass++ {
		nodes[blockLen] = optimumNode{}

		for i := blockLen - 1; i >= 0; i-- {
			best := litlenCost[input[start+i]] + nodes[i+1].costToEnd
			bestLen, bestDist := 0, 0

			for _, mt := range cache[i].matches {
				if i+mt.length > blockLen {
					continue
				}
				slot := lengthToSlotTable[mt.length]
				oslot := offsetToSlotTable[mt.distance]
				cost := litlenCost[257+int(slot)] + offsetCost[oslot] + nodes[i+mt.length].costToEnd
				if cost < best {
					best = cost
					bestLen = mt.length
					bestDist = mt.distance
				}
			}

			nodes[i] = optimumNode{costToEnd: best, length: bestLen, offset: bestDist}
		}

		if pass == numPasses-1 {
			break
		}

		var freqs blockFreqs
		i := 0
		for i < blockLen {
			if nodes[i].length > 0 {
				freqs.litlen[257+int(lengthToSlotTable[nodes[i].length])]++
				freqs.offset[offsetToSlotTable[nodes[i].offset]]++
				i += nodes[i].length
			} else {
				freqs.litlen[input[start+i]]++
				i++
			}
		}
		freqs.litlen[endOfBlockSym]++

		litlenHuff := buildHuffmanCode(freqs.litlen[:], compressorMaxLitlenBits)
		offsetHuff := buildHuffmanCode(freqs.offset[:], maxOffsetCodewordBits)
		for s := 0; s < numLitlenSyms; s++ {
			extra := uint8(0)
			if s > 256 && s-257 < len(lengthSlots) {
				extra = lengthSlots[s-257].extraBits
			}
			litlenCost[s] = codeLenToCost(litlenHuff.lens[s], extra)
		}
		for s := 0; s < numOffsetSyms; s++ {
			offsetCost[s] = codeLenToCost(offsetHuff.lens[s], offsetSlots[s].extraBits)
		}
	}

	var seqs []sequence
	litStart := 0
	i := 0
	for i < blockLen {
		if nodes[i].length > 0 {
			seqs = append(seqs, sequence{
				litRunLen: uint32(i - litStart),
				length:    uint32(nodes[i].length),
				offset:    uint32(nodes[i].offset),
			})
			i += nodes[i].length
			litStart = i
		} else {
			i++
		}
	}
	seqs = append(seqs, sequence{litRunLen: uint32(blockLen - litStart)})
	return seqs
}
