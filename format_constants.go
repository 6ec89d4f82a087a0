// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate (derived from github.com/woozymasta/lzo)

package deflate

// DEFLATE (RFC 1951) wire-format constants: window size, block types, and
// the compile-time table sizes that bound the decoder's scratch arrays.

const (
	windowSize  = 32768 // sliding window / maximum back-reference distance
	minMatchLen = 3
	maxMatchLen = 258

	numLitlenSyms  = 288 // 0..255 literal, 256 end-of-block, 257..287 length (2 unused)
	numOffsetSyms  = 30
	numPrecodeSyms = 19

	maxLitlenCodewordBits  = 15
	maxOffsetCodewordBits  = 15
	maxPrecodeCodewordBits = 7

	// Internal emission cap: the compressor never emits a litlen codeword
	// longer than this even though the format permits 15, trading a
	// fractional ratio loss for a faster decode table (spec.md §3).
	compressorMaxLitlenBits = 14

	endOfBlockSym = 256

	// Decode-table scratch sizes. These are the worst-case ENOUGH constants
	// over all valid inputs and must be preserved exactly (spec.md §9).
	precodeTableBits = 7
	litlenTableBits  = 10
	offsetTableBits  = 8

	precodeEnough = 128
	litlenEnough  = 1334
	offsetEnough  = 402
)

// Block type codes (2-bit field after the final-block flag).
const (
	blockTypeUncompressed = 0
	blockTypeStaticHuff   = 1
	blockTypeDynamicHuff  = 2
	blockTypeReserved     = 3
)

// lengthSlot describes one litlen length-symbol's base value and extra-bit
// count (litlen symbols 257..285).
type lengthSlot struct {
	base      uint16
	extraBits uint8
}

var lengthSlots = [29]lengthSlot{
	{3, 0}, {4, 0}, {5, 0}, {6, 0}, {7, 0}, {8, 0}, {9, 0}, {10, 0},
	{11, 1}, {13, 1}, {15, 1}, {17, 1},
	{19, 2}, {23, 2}, {27, 2}, {31, 2},
	{35, 3}, {43, 3}, {51, 3}, {59, 3},
	{67, 4}, {83, 4}, {99, 4}, {115, 4},
	{131, 5}, {163, 5}, {195, 5}, {227, 5},
	{258, 0},
}

// offsetSlot describes one offset symbol's base value and extra-bit count.
type offsetSlot struct {
	base      uint32
	extraBits uint8
}

var offsetSlots = [30]offsetSlot{
	{1, 0}, {2, 0}, {3, 0}, {4, 0},
	{5, 1}, {7, 1},
	{9, 2}, {13, 2},
	{17, 3}, {25, 3},
	{33, 4}, {49, 4},
	{65, 5}, {97, 5},
	{129, 6}, {193, 6},
	{257, 7}, {385, 7},
	{513, 8}, {769, 8},
	{1025, 9}, {1537, 9},
	{2049, 10}, {3073, 10},
	{4097, 11}, {6145, 11},
	{8193, 12}, {12289, 12},
	{16385, 13}, {24577, 13},
}

// lengthToSlotTable maps a match length (3..258) to its length-slot index
// (0..28; add 257 for the litlen symbol). lengthExtraTable holds the
// corresponding extra-bit payload.
var lengthToSlotTable [maxMatchLen + 1]uint8
var lengthExtraTable [maxMatchLen + 1]uint16

func init() {
	slot := 0
	for l := minMatchLen; l <= maxMatchLen; l++ {
		for slot < len(lengthSlots)-1 && int(lengthSlots[slot+1].base) <= l {
			slot++
		}
		lengthToSlotTable[l] = uint8(slot)
		lengthExtraTable[l] = uint16(l) - lengthSlots[slot].base
	}
}

// offsetToSlotTable maps a backward distance (1..windowSize) to its offset
// symbol. Built once at init; the table is small enough that a linear scan
// at startup is cheaper than hand-maintaining a binary-search variant.
var offsetToSlotTable [windowSize + 1]uint8

func init() {
	slot := 0
	for o := 1; o <= windowSize; o++ {
		for slot < len(offsetSlots)-1 && int(offsetSlots[slot+1].base) <= o {
			slot++
		}
		offsetToSlotTable[o] = uint8(slot)
	}
}

// precodeSymbolOrder is the permutation in which precode codeword lengths
// are transmitted in a dynamic block header (spec.md §4.7).
var precodeSymbolOrder = [numPrecodeSyms]uint8{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

// Static (fixed) Huffman codeword lengths, RFC 1951 §3.2.6.
var staticLitlenLens = func() [numLitlenSyms]uint8 {
	var lens [numLitlenSyms]uint8
	for i := 0; i <= 143; i++ {
		lens[i] = 8
	}
	for i := 144; i <= 255; i++ {
		lens[i] = 9
	}
	for i := 256; i <= 279; i++ {
		lens[i] = 7
	}
	for i := 280; i <= 287; i++ {
		lens[i] = 8
	}
	return lens
}()

// The static offset code covers all 32 codes, including the unused 30 and
// 31, so that it is complete.
var staticOffsetLens = func() [32]uint8 {
	var lens [32]uint8
	for i := range lens {
		lens[i] = 5
	}
	return lens
}()

// Block-splitter and size-bound tunables (spec.md §4.6, §6).
const (
	outputEndPadding = 8
	minBlockLength   = 10000
	softMaxBlockLen  = 300000

	numObservationsPerBlockCheck = 512
)
