// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate

package deflate

import "encoding/binary"

// wordBits/wordBytes describe the machine word this codec refills with.
// 64 bits leaves room for any one codeword or extra-bits field after a
// refill; the decode loop refills before every symbol (there is no
// fastloop, see DESIGN.md O11).
const (
	wordBits  = 64
	wordBytes = wordBits / 8
)

// bitReader unpacks a DEFLATE bitstream LSB-first (spec.md §4.1). Bits
// accumulate in bitbuf right-aligned (the next bit to consume is bit 0);
// refill loads a little-endian machine word at a time when enough input
// remains, falling back to byte-wise loads near the end of input. Reading
// past the end of input is tolerated: phantom zero bytes are drawn and
// counted in overrunCount so the caller can still reject a truncated
// stream once the semantic checks run (spec.md §4.1 "Failure").
type bitReader struct {
	in          []byte
	inPos       int
	bitbuf      uint64
	bitsleft    uint
	overrunCount int
}

func newBitReader(in []byte) bitReader {
	return bitReader{in: in}
}

// refill ensures at least n bits are available to peek (n <= wordBits-7).
// It prefers a single unaligned little-endian word load when at least one
// full word of input remains; otherwise it tops up byte-by-byte, treating
// bytes past the end of input as zero.
func (r *bitReader) refill(n uint) {
	if r.bitsleft >= n {
		return
	}

	if r.inPos+wordBytes <= len(r.in) {
		word := binary.LittleEndian.Uint64(r.in[r.inPos:])
		r.bitbuf |= word << r.bitsleft
		consumed := (wordBits - r.bitsleft) / 8
		r.inPos += int(consumed)
		r.bitsleft += consumed * 8
		return
	}

	for r.bitsleft <= wordBits-8 {
		var b uint64
		if r.inPos < len(r.in) {
			b = uint64(r.in[r.inPos])
			r.inPos++
		} else {
			r.overrunCount++
		}
		r.bitbuf |= b << r.bitsleft
		r.bitsleft += 8
	}
}

// peek returns the low n bits of the buffer without consuming them. The
// caller must have refilled at least n bits first.
func (r *bitReader) peek(n uint) uint32 {
	if n == 0 {
		return 0
	}
	return uint32(r.bitbuf & ((1 << n) - 1))
}

// consume discards the low n bits.
func (r *bitReader) consume(n uint) {
	r.bitbuf >>= n
	r.bitsleft -= n
}

// popBits refills, peeks, and consumes n bits in one call; used for header
// fields and for the extra bits of length and offset symbols.
func (r *bitReader) popBits(n uint) uint32 {
	r.refill(n)
	v := r.peek(n)
	r.consume(n)
	return v
}

// alignToByte discards the remaining bits of the current byte, rolling
// whole unread bytes back into the input pointer (except for phantom
// overrun bytes, which were never real and must not be "returned").
func (r *bitReader) alignToByte() {
	discard := r.bitsleft % 8
	r.bitbuf >>= discard
	r.bitsleft -= discard

	fullBytes := r.bitsleft / 8
	giveBack := int(fullBytes)
	if giveBack > r.overrunCount {
		giveBack -= r.overrunCount
		r.overrunCount = 0
	} else {
		r.overrunCount -= giveBack
		giveBack = 0
	}
	r.inPos -= giveBack
	r.bitbuf = 0
	r.bitsleft = 0
}

// bytesConsumed reports how many real (non-phantom) input bytes have been
// consumed so far, for callers that need to know where the raw stream
// ended (e.g. a zlib/gzip trailer immediately follows the deflate stream).
func (r *bitReader) bytesConsumed() int {
	unread := int(r.bitsleft/8) - r.overrunCount
	if unread < 0 {
		unread = 0
	}
	return r.inPos - unread
}

// readRawByte reads one byte directly from the input stream, bypassing the
// bit buffer; used only immediately after alignToByte for LEN/NLEN fields.
func (r *bitReader) readRawByte() (byte, bool) {
	if r.inPos >= len(r.in) {
		return 0, false
	}
	b := r.in[r.inPos]
	r.inPos++
	return b, true
}

// overran reports whether the caller read past the true end of input, i.e.
// whether any bit of a phantom byte has been consumed. Phantom bytes sit at
// the top of the buffer, so they are all still unread while bitsleft holds
// at least overrunCount whole bytes.
func (r *bitReader) overran() bool {
	return r.overrunCount > int(r.bitsleft/8)
}
