// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate

package deflate

import (
	"bytes"
	"testing"
)

func TestZlib_RoundTrip(t *testing.T) {
	for _, in := range testInputSet() {
		for _, level := range []int{0, 1, 6, 9, 12} {
			c, err := NewCompressor(level)
			if err != nil {
				t.Fatalf("NewCompressor failed: %v", err)
			}
			out := make([]byte, c.CompressBound(len(in.data))+16)
			n := c.CompressZlib(in.data, out)
			if n == 0 {
				t.Fatalf("%s/level-%d: CompressZlib returned 0", in.name, level)
			}

			d := NewDecompressor()
			decoded := make([]byte, len(in.data))
			res, _, actualOut := d.DecompressZlib(out[:n], decoded)
			if res != ResultSuccess {
				t.Fatalf("%s/level-%d: DecompressZlib result = %v", in.name, level, res)
			}
			if !bytes.Equal(decoded[:actualOut], in.data) {
				t.Fatalf("%s/level-%d: zlib round-trip mismatch", in.name, level)
			}
		}
	}
}

func TestZlib_HeaderIsValidPerRFC1950(t *testing.T) {
	c, _ := NewCompressor(6)
	data := bytes.Repeat([]byte("zlib header check"), 50)
	out := make([]byte, c.CompressBound(len(data))+16)
	n := c.CompressZlib(data, out)
	if n < 2 {
		t.Fatalf("CompressZlib produced too little output")
	}

	cmf, flg := out[0], out[1]
	if cmf&0x0F != 8 {
		t.Fatalf("CMF low nibble = %d, want 8 (deflate)", cmf&0x0F)
	}
	if (uint16(cmf)<<8|uint16(flg))%31 != 0 {
		t.Fatalf("CMF/FLG check bits invalid")
	}
	if flg&zlibFlagFDICT != 0 {
		t.Fatalf("FDICT bit set, but no preset dictionary was used")
	}
}

func TestZlib_RejectsCorruptedTrailer(t *testing.T) {
	c, _ := NewCompressor(6)
	data := bytes.Repeat([]byte("adler32 please"), 100)
	out := make([]byte, c.CompressBound(len(data))+16)
	n := c.CompressZlib(data, out)

	corrupted := append([]byte(nil), out[:n]...)
	corrupted[len(corrupted)-1] ^= 0xFF

	d := NewDecompressor()
	decoded := make([]byte, len(data))
	res, _, _ := d.DecompressZlib(corrupted, decoded)
	if res != ResultBadData {
		t.Fatalf("DecompressZlib with flipped checksum byte = %v, want ResultBadData", res)
	}
}

func TestZlib_RejectsBadHeaderCheckBits(t *testing.T) {
	d := NewDecompressor()
	bad := []byte{0x78, 0x00, 0, 0, 0, 0} // FCHECK deliberately wrong
	out := make([]byte, 16)
	res, _, _ := d.DecompressZlib(bad, out)
	if res != ResultBadData {
		t.Fatalf("DecompressZlib with bad header = %v, want ResultBadData", res)
	}
}

func TestGzip_RoundTripDefaultOptions(t *testing.T) {
	for _, in := range testInputSet() {
		c, _ := NewCompressor(6)
		out := make([]byte, c.CompressBound(len(in.data))+32)
		n := c.CompressGzip(in.data, out)
		if n == 0 {
			t.Fatalf("%s: CompressGzip returned 0", in.name)
		}

		d := NewDecompressor()
		decoded := make([]byte, len(in.data))
		res, _, actualOut := d.DecompressGzip(out[:n], decoded)
		if res != ResultSuccess {
			t.Fatalf("%s: DecompressGzip result = %v", in.name, res)
		}
		if !bytes.Equal(decoded[:actualOut], in.data) {
			t.Fatalf("%s: gzip round-trip mismatch", in.name)
		}
	}
}

func TestGzip_RoundTripWithNameAndComment(t *testing.T) {
	c, _ := NewCompressor(9)
	data := bytes.Repeat([]byte("named gzip member"), 80)
	opts := GzipOptions{MTIME: 1700000000, OS: 3, Name: "report.txt", Comment: "generated for a test"}

	out := make([]byte, c.CompressBound(len(data))+64)
	n := c.CompressGzipOpts(data, out, opts)
	if n == 0 {
		t.Fatalf("CompressGzipOpts returned 0")
	}
	if out[0] != gzipMagic1 || out[1] != gzipMagic2 {
		t.Fatalf("gzip magic bytes missing")
	}

	d := NewDecompressor()
	decoded := make([]byte, len(data))
	res, _, actualOut := d.DecompressGzip(out[:n], decoded)
	if res != ResultSuccess {
		t.Fatalf("DecompressGzip result = %v", res)
	}
	if !bytes.Equal(decoded[:actualOut], data) {
		t.Fatalf("gzip round-trip with metadata mismatch")
	}
}

func TestGzip_RejectsCorruptedCRC(t *testing.T) {
	c, _ := NewCompressor(6)
	data := bytes.Repeat([]byte("crc32 please"), 100)
	out := make([]byte, c.CompressBound(len(data))+32)
	n := c.CompressGzip(data, out)

	corrupted := append([]byte(nil), out[:n]...)
	corrupted[len(corrupted)-8] ^= 0xFF // flip a byte inside the CRC field

	d := NewDecompressor()
	decoded := make([]byte, len(data))
	res, _, _ := d.DecompressGzip(corrupted, decoded)
	if res != ResultBadData {
		t.Fatalf("DecompressGzip with flipped CRC byte = %v, want ResultBadData", res)
	}
}

func TestGzip_RejectsBadMagic(t *testing.T) {
	d := NewDecompressor()
	bad := make([]byte, 20)
	out := make([]byte, 16)
	res, _, _ := d.DecompressGzip(bad, out)
	if res != ResultBadData {
		t.Fatalf("DecompressGzip with bad magic = %v, want ResultBadData", res)
	}
}

func TestDefaultGzipOptions(t *testing.T) {
	opts := DefaultGzipOptions()
	if opts.OS != 255 {
		t.Fatalf("DefaultGzipOptions().OS = %d, want 255", opts.OS)
	}
	if opts.Name != "" || opts.Comment != "" || opts.MTIME != 0 {
		t.Fatalf("DefaultGzipOptions should otherwise be the zero value")
	}
}
