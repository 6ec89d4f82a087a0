// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate

package deflate

// bitCostScale is BIT_COST from spec.md §9: every cost the near-optimal
// parser computes is an integer number of 1/bitCostScale-bit units so the
// whole parser runs without floating point.
const bitCostScale = 16

// defaultLitlenCost estimates a symbol's bit cost before any block-local
// frequency statistics exist (the near-optimal parser's first pass,
// spec.md §4.5 "set initial symbol costs from a default cost table").
// Spec.md describes indexing the real default table by an estimated
// match-probability bucket and a literal-diversity count; this codec uses
// a single flat estimate instead (8 bits for any literal, 10 bits for
// end-of-block, the length slot's own extra-bit count plus a flat 8-bit
// base for a length symbol, and the 24-bit unused-symbol penalty for
// symbols 286 and 287, which have no slot) — a documented simplification,
// see DESIGN.md O6.
func defaultLitlenCost(sym int) uint32 {
	switch {
	case sym < 256:
		return 8 * bitCostScale
	case sym == endOfBlockSym:
		return 10 * bitCostScale
	case sym-257 >= len(lengthSlots):
		return 24 * bitCostScale
	default:
		ls := lengthSlots[sym-257]
		return (8 + uint32(ls.extraBits)) * bitCostScale
	}
}

func defaultOffsetCost(sym int) uint32 {
	os := offsetSlots[sym]
	return (5 + uint32(os.extraBits)) * bitCostScale
}

// codeLenToCost turns an already-built Huffman codeword length into a
// scaled bit cost, or a flat penalty for a symbol with length 0 (unused in
// the current codeword assignment but still needed as a live candidate
// next pass, spec.md §4.5 "unused-symbol cost = a nonzero penalty").
func codeLenToCost(l uint8, extraBits uint8) uint32 {
	if l == 0 {
		return 24 * bitCostScale
	}
	return (uint32(l) + uint32(extraBits)) * bitCostScale
}
