// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate

package deflate

// bitWriter packs a DEFLATE bitstream LSB-first into a caller-owned,
// fixed-length output buffer (spec.md §6: `compress(input, output) ->
// bytes_written`, 0 meaning "did not fit" — the destination is never
// grown or reallocated). Bits accumulate in bitbuf; once 8 or more are
// buffered a whole byte is written to out[pos] and pos advances. Writing
// past len(out) sets overflowed and stops touching out, so a caller that
// overran only has to check the flag once at the end instead of guarding
// every call.
type bitWriter struct {
	out       []byte
	pos       int
	bitbuf    uint64
	bitsleft  uint
	overflowed bool
}

func newBitWriter(out []byte) bitWriter {
	return bitWriter{out: out}
}

// putBits appends the low n bits of v (n <= 32, as every DEFLATE field fits
// in 32 bits) to the stream, flushing whole bytes out as needed.
func (w *bitWriter) putBits(v uint32, n uint) {
	w.bitbuf |= uint64(v&bitMask(n)) << w.bitsleft
	w.bitsleft += n
	for w.bitsleft >= 8 {
		w.putByte(byte(w.bitbuf))
		w.bitbuf >>= 8
		w.bitsleft -= 8
	}
}

func (w *bitWriter) putByte(b byte) {
	if w.pos >= len(w.out) {
		w.overflowed = true
		w.pos++ // keep counting so CompressBound violations are still visible in pos
		return
	}
	w.out[w.pos] = b
	w.pos++
}

func bitMask(n uint) uint32 {
	if n >= 32 {
		return 0xFFFFFFFF
	}
	return (uint32(1) << n) - 1
}

// alignToByte pads the bit buffer with zero bits up to the next byte
// boundary, flushing it in the process.
func (w *bitWriter) alignToByte() {
	if w.bitsleft%8 != 0 {
		pad := 8 - w.bitsleft%8
		w.putBits(0, pad)
	}
}

// bytesWritten returns how many bytes (including any overflowed, uncounted
// ones) the writer has produced so far, not counting a still-buffered
// partial byte.
func (w *bitWriter) bytesWritten() int {
	return w.pos
}

// putRawByte writes one byte directly, bypassing the bit buffer; the
// caller must already be byte-aligned (used for uncompressed block bodies
// and LEN/NLEN fields).
func (w *bitWriter) putRawByte(b byte) {
	w.putByte(b)
}

// putRawBytes copies a raw byte run directly into the output, bypassing
// the bit buffer (the uncompressed-block and literal-run fast path).
func (w *bitWriter) putRawBytes(b []byte) {
	if w.pos >= len(w.out) {
		w.overflowed = true
		w.pos += len(b)
		return
	}
	n := copy(w.out[w.pos:], b)
	w.pos += n
	if n < len(b) {
		w.overflowed = true
		w.pos += len(b) - n
	}
}

// finish flushes any remaining partial byte (zero-padded) and reports the
// total size in bytes, or -1 if the output buffer was too small at any
// point.
func (w *bitWriter) finish() int {
	w.alignToByte()
	if w.overflowed {
		return -1
	}
	return w.pos
}
