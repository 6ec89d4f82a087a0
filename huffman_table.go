// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate

package deflate

// tableEntry packs a decode-table result per spec.md §3: the low bits carry
// either a symbol/length-base/offset-base value, flag bits identify the
// entry's kind, and the high bits carry the codeword's bit-length (plus,
// for length/offset symbols, the extra-bit count).
type tableEntry uint32

// Bit layout (32 bits total, low to high): value[0:16), extraBits[16:20),
// codeLen[20:25), kind[25:32). These four fields must stay disjoint —
// value holds base values up to the largest offset base (24577, which
// fits in the 16-bit field), extraBits up to 13, codeLen up to 15 (or, for a subtable entry,
// up to the widest subtable region width), and kind one of five tags.
const (
	entryValueMask = 0xFFFF // base value / symbol / subtable start index

	entryExtraBitsShift = 16
	entryExtraBitsMask  = 0xF << entryExtraBitsShift

	entryCodeLenShift = 20
	entryCodeLenMask  = 0x1F << entryCodeLenShift

	entryKindShift    = 25
	entryKindLiteral  = 1 << entryKindShift
	entryKindSubtable = 2 << entryKindShift
	entryKindEOB      = 3 << entryKindShift
	entryKindLength   = 4 << entryKindShift
	entryKindOffset   = 5 << entryKindShift
	entryKindMask     = 0x7F << entryKindShift
)

func makeEntry(kind uint32, codeLen uint32, extraBits uint32, value uint32) tableEntry {
	return tableEntry(kind | (codeLen << entryCodeLenShift) | (extraBits << entryExtraBitsShift) | (value & entryValueMask))
}

func (e tableEntry) kind() uint32    { return uint32(e) & entryKindMask }
func (e tableEntry) codeLen() uint   { return uint((uint32(e) & entryCodeLenMask) >> entryCodeLenShift) }
func (e tableEntry) extraBits() uint { return uint((uint32(e) & entryExtraBitsMask) >> entryExtraBitsShift) }
func (e tableEntry) value() uint32   { return uint32(e) & entryValueMask }

// alphabetKind distinguishes litlen/offset/precode when building a table,
// since litlen symbols split into literal/EOB/length categories.
type alphabetKind int

const (
	alphabetLitlen alphabetKind = iota
	alphabetOffset
	alphabetPrecode
)

func makeSymbolEntry(kind alphabetKind, codeLen uint32, sym int) tableEntry {
	switch kind {
	case alphabetPrecode:
		return makeEntry(entryKindLiteral, codeLen, 0, uint32(sym))
	case alphabetOffset:
		if sym >= len(offsetSlots) {
			// Offset symbols 30 and 31 have no slot: kind 0 fails decode.
			return makeEntry(0, codeLen, 0, uint32(sym))
		}
		slot := offsetSlots[sym]
		return makeEntry(entryKindOffset, codeLen, uint32(slot.extraBits), slot.base)
	default: // litlen
		switch {
		case sym < 256:
			return makeEntry(entryKindLiteral, codeLen, 0, uint32(sym))
		case sym == endOfBlockSym:
			return makeEntry(entryKindEOB, codeLen, 0, 0)
		case sym-257 >= len(lengthSlots):
			// Litlen symbols 286 and 287 have no slot: kind 0 fails decode.
			return makeEntry(0, codeLen, 0, uint32(sym))
		default:
			ls := lengthSlots[sym-257]
			return makeEntry(entryKindLength, codeLen, uint32(ls.extraBits), uint32(ls.base))
		}
	}
}

// buildDecodeTable builds a direct-mapped decode table with subtables for
// lens[0..n), per spec.md §4.3. tableBits sizes the direct-mapped portion;
// table must be at least `enough` entries long (precodeEnough/litlenEnough
// /offsetEnough). Returns false if the length set is over- or
// under-subscribed. An incomplete code is accepted only in the two cases
// spec.md §4.3 permits: all-zero lengths (fills the table with a default
// symbol-0 entry) and a single codeword of length 1 (fills the whole table
// with that symbol, since a valid stream never emits the complementary
// code).
func buildDecodeTable(lens []uint8, kind alphabetKind, tableBits uint, maxLen uint, table []tableEntry) bool {
	var count [maxLitlenCodewordBits + 1]int
	used := 0
	for _, l := range lens {
		if l > 0 {
			count[l]++
			used++
		}
	}

	if used == 0 {
		fillTableRegion(table[:1<<tableBits], tableBits, 0, 0, makeSymbolEntry(kind, 1, 0))
		return true
	}

	if used == 1 {
		sym := -1
		for s, l := range lens {
			if l != 0 {
				sym = s
				break
			}
		}
		if lens[sym] != 1 {
			return false
		}
		fillTableRegion(table[:1<<tableBits], tableBits, 0, 0, makeSymbolEntry(kind, 1, sym))
		return true
	}

	var codespace uint32 = 1 << maxLen
	var total uint32
	for l := 1; l <= int(maxLen); l++ {
		total += uint32(count[l]) << (maxLen - uint(l))
	}
	if total != codespace {
		return false // over- or under-subscribed
	}

	codes := make([]uint16, len(lens))
	assignCanonicalCodes(lens, codes, int(maxLen))

	mainSize := uint32(1) << tableBits
	mainMask := mainSize - 1

	extra := make([]uint, mainSize)
	for s, l := range lens {
		if l == 0 || uint(l) <= tableBits {
			continue
		}
		prefix := uint32(codes[s]) & mainMask
		need := uint(l) - tableBits
		if need > extra[prefix] {
			extra[prefix] = need
		}
	}

	cursor := uint32(1) << tableBits
	subStart := make([]uint32, mainSize)
	for prefix := uint32(0); prefix < mainSize; prefix++ {
		if extra[prefix] == 0 {
			continue
		}
		subStart[prefix] = cursor
		table[prefix] = makeEntry(entryKindSubtable, uint32(extra[prefix]), 0, cursor)
		cursor += 1 << extra[prefix]
	}
	if int(cursor) > len(table) {
		return false // should not happen given the ENOUGH constants
	}

	for s, l := range lens {
		if l == 0 {
			continue
		}
		entry := makeSymbolEntry(kind, uint32(l), s)
		code := uint32(codes[s])

		if uint(l) <= tableBits {
			fillTableRegion(table[:mainSize], tableBits, code, uint(l), entry)
			continue
		}

		prefix := code & mainMask
		subBits := extra[prefix]
		start := subStart[prefix]
		subCode := code >> tableBits
		fillTableRegion(table[start:start+(1<<subBits)], subBits, subCode, uint(l)-tableBits, entry)
	}

	return true
}

// fillTableRegion writes entry into every index of region whose low
// codeLen bits equal code, replicating across the region's unused high
// bits (spec.md §4.3 step 4). region has 2^regionBits entries.
func fillTableRegion(region []tableEntry, regionBits uint, code uint32, codeLen uint, entry tableEntry) {
	size := uint32(1) << regionBits
	step := uint32(1) << codeLen
	start := code & (size - 1)
	for pos := start; pos < size; pos += step {
		region[pos] = entry
	}
}
