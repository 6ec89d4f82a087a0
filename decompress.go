// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate (derived from github.com/woozymasta/lzo)

package deflate

// decodeUncompressedBlock reads LEN/NLEN and copies length raw bytes
// directly into output (spec.md §4.8 "Uncompressed").
func (d *Decompressor) decodeUncompressedBlock(br *bitReader, output []byte, outPos *int) Result {
	br.alignToByte()

	lenLo, ok1 := br.readRawByte()
	lenHi, ok2 := br.readRawByte()
	nlenLo, ok3 := br.readRawByte()
	nlenHi, ok4 := br.readRawByte()
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return ResultBadData
	}

	length := int(lenLo) | int(lenHi)<<8
	nlen := int(nlenLo) | int(nlenHi)<<8
	if length != (^nlen)&0xFFFF {
		return ResultBadData
	}
	if *outPos+length > len(output) {
		return ResultInsufficientSpace
	}

	for i := 0; i < length; i++ {
		b, ok := br.readRawByte()
		if !ok {
			return ResultBadData
		}
		output[*outPos+i] = b
	}
	*outPos += length
	return ResultSuccess
}

// readDynamicHeader reads HLIT/HDIST/HCLEN, the precode length table, and
// the run-length-encoded litlen+offset length sequence, then builds the
// offset and litlen decode tables (spec.md §4.8 "Dynamic").
func (d *Decompressor) readDynamicHeader(br *bitReader) bool {
	hlit := int(br.popBits(5)) + 257
	hdist := int(br.popBits(5)) + 1
	hclen := int(br.popBits(4)) + 4

	var precodeLens [numPrecodeSyms]uint8
	for i := 0; i < hclen; i++ {
		precodeLens[precodeSymbolOrder[i]] = uint8(br.popBits(3))
	}
	if !buildDecodeTable(precodeLens[:], alphabetPrecode, precodeTableBits, maxPrecodeCodewordBits, d.precodeTable[:]) {
		return false
	}

	total := hlit + hdist
	if total > len(d.lens) {
		return false
	}
	lens := d.lens[:total]

	i := 0
	var prev uint8
	for i < total {
		entry := decodeSymbol(br, d.precodeTable[:], precodeTableBits, maxPrecodeCodewordBits)
		v := entry.value()

		switch {
		case v < 16:
			lens[i] = uint8(v)
			prev = uint8(v)
			i++
		case v == 16:
			if i == 0 {
				return false // symbol 16 requires a prior length
			}
			count := int(br.popBits(2)) + 3
			if i+count > total {
				return false
			}
			for k := 0; k < count; k++ {
				lens[i] = prev
				i++
			}
		case v == 17:
			count := int(br.popBits(3)) + 3
			if i+count > total {
				return false
			}
			for k := 0; k < count; k++ {
				lens[i] = 0
				i++
			}
			prev = 0
		case v == 18:
			count := int(br.popBits(7)) + 11
			if i+count > total {
				return false
			}
			for k := 0; k < count; k++ {
				lens[i] = 0
				i++
			}
			prev = 0
		default:
			return false
		}
	}

	litlenLens := lens[:hlit]
	offsetLens := lens[hlit:total]
	if !buildDecodeTable(offsetLens, alphabetOffset, offsetTableBits, maxOffsetCodewordBits, d.offsetTable[:]) {
		return false
	}
	if !buildDecodeTable(litlenLens, alphabetLitlen, litlenTableBits, maxLitlenCodewordBits, d.litlenTable[:]) {
		return false
	}
	return true
}

// decodeBlockBody runs the generic decode loop for one block using
// whichever litlen/offset tables are currently loaded (spec.md §4.8). This
// codec implements only the generic loop: the fastloop's eager refill,
// 3-literals-back-to-back, and parallel table-preload tricks are a pure
// performance optimization over the same semantics and are not required
// for correctness (see DESIGN.md O11).
func (d *Decompressor) decodeBlockBody(br *bitReader, output []byte, outPos *int) Result {
	for {
		litlenEntry := decodeSymbol(br, d.litlenTable[:], litlenTableBits, maxLitlenCodewordBits)

		switch litlenEntry.kind() {
		case entryKindLiteral:
			if *outPos >= len(output) {
				return ResultInsufficientSpace
			}
			output[*outPos] = byte(litlenEntry.value())
			*outPos++

		case entryKindEOB:
			if br.overran() {
				return ResultBadData
			}
			return ResultSuccess

		case entryKindLength:
			length := int(litlenEntry.value())
			if extra := litlenEntry.extraBits(); extra > 0 {
				length += int(br.popBits(extra))
			}

			offEntry := decodeSymbol(br, d.offsetTable[:], offsetTableBits, maxOffsetCodewordBits)
			if offEntry.kind() != entryKindOffset {
				return ResultBadData
			}
			dist := int(offEntry.value())
			if extra := offEntry.extraBits(); extra > 0 {
				dist += int(br.popBits(extra))
			}

			if dist > *outPos {
				return ResultBadData
			}
			if !copyMatch(output, *outPos, dist, length) {
				return ResultInsufficientSpace
			}
			*outPos += length

		default:
			return ResultBadData
		}

		if br.overran() {
			return ResultBadData
		}
	}
}

// decodeSymbol reads one symbol from a direct-mapped decode table built by
// buildDecodeTable, following the subtable indirection for codewords
// longer than tableBits (spec.md §4.3/§4.8).
func decodeSymbol(br *bitReader, table []tableEntry, tableBits uint, maxLen uint) tableEntry {
	br.refill(maxLen)
	entry := table[br.peek(tableBits)]

	if entry.kind() == entryKindSubtable {
		br.consume(tableBits)
		subBits := entry.codeLen()
		sub := table[entry.value()+uint32(br.peek(subBits))]
		extra := uint(sub.codeLen()) - tableBits
		br.consume(extra)
		return sub
	}

	br.consume(uint(entry.codeLen()))
	return entry
}
