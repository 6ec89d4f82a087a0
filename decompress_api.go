// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate (derived from github.com/woozymasta/lzo)

package deflate

// Decompressor is a reusable DEFLATE decoder handle (spec.md §5). Its
// decode tables and scratch length array are allocated once at
// construction and reused across calls, exactly the teacher's own
// "allocate scratch once, reuse per call" discipline (there: a pooled
// slidingWindowDict; here: the fixed ENOUGH-sized table arrays spec.md §9
// calls out).
//
// precodeTable/litlenTable/offsetTable/lens would be one overlapping union
// in the source this format comes from (spec.md §9 "union storage for
// large arrays", ~11 KiB). This codec keeps them as separate typed arrays
// instead — the fully disjoint layout spec.md itself notes is "semantically
// equivalent at the cost of ~6 KiB more memory" — since Go has no portable
// union and the saved memory is immaterial next to a single decompressor
// handle's lifetime (see DESIGN.md O2).
type Decompressor struct {
	precodeTable [precodeEnough]tableEntry
	litlenTable  [litlenEnough]tableEntry
	offsetTable  [offsetEnough]tableEntry
	lens         [numLitlenSyms + numOffsetSyms]uint8

	staticLoaded bool
}

// NewDecompressor constructs a decompressor (spec.md §6).
func NewDecompressor() *Decompressor {
	markCodecCreated()
	return &Decompressor{}
}

// Decompress decodes a raw DEFLATE stream from input into output,
// reporting how much of each buffer was consumed/produced (spec.md §7).
// Because actualIn/actualOut are always reported, the distinction
// spec.md draws between requesting actual-length reporting and not
// collapses here: a cleanly ended stream is always ResultSuccess, with
// actualOut telling the caller exactly how many bytes that was (see
// DESIGN.md O10) — ResultShortOutput is reserved for the language-neutral
// API surface spec.md describes and is not reachable through this one.
func (d *Decompressor) Decompress(input, output []byte) (result Result, actualIn, actualOut int) {
	br := newBitReader(input)
	outPos := 0

	for {
		final := br.popBits(1)
		btype := br.popBits(2)

		var res Result
		switch btype {
		case blockTypeUncompressed:
			res = d.decodeUncompressedBlock(&br, output, &outPos)
		case blockTypeStaticHuff:
			if !d.staticLoaded {
				if !buildDecodeTable(staticLitlenLens[:], alphabetLitlen, litlenTableBits, maxLitlenCodewordBits, d.litlenTable[:]) {
					return ResultBadData, 0, 0
				}
				if !buildDecodeTable(staticOffsetLens[:], alphabetOffset, offsetTableBits, maxOffsetCodewordBits, d.offsetTable[:]) {
					return ResultBadData, 0, 0
				}
				d.staticLoaded = true
			}
			res = d.decodeBlockBody(&br, output, &outPos)
		case blockTypeDynamicHuff:
			if !d.readDynamicHeader(&br) {
				return ResultBadData, 0, 0
			}
			res = d.decodeBlockBody(&br, output, &outPos)
		default:
			return ResultBadData, 0, 0
		}

		if res != ResultSuccess {
			return res, br.bytesConsumed(), outPos
		}
		if final != 0 {
			break
		}
	}

	if br.overran() {
		return ResultBadData, br.bytesConsumed(), outPos
	}
	return ResultSuccess, br.bytesConsumed(), outPos
}
