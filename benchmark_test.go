// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate (derived from github.com/woozymasta/lzo)

package deflate

import (
	"bytes"
	"fmt"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"small-text-4k":   bytes.Repeat([]byte("deflate benchmark text payload "), 128),
		"pattern-128k":    bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"byte-cycle-256k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
		"random-64k":      pseudoRandom(65536),
	}
}

func BenchmarkCompress(b *testing.B) {
	levels := []int{1, 6, 9, 12}
	for inputName, inputData := range benchmarkInputSets() {
		for _, level := range levels {
			name := fmt.Sprintf("%s/level-%d", inputName, level)
			b.Run(name, func(b *testing.B) {
				c, err := NewCompressor(level)
				if err != nil {
					b.Fatalf("NewCompressor failed: %v", err)
				}
				out := make([]byte, c.CompressBound(len(inputData)))
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if n := c.Compress(inputData, out); n == 0 {
						b.Fatalf("Compress returned 0")
					}
				}
			})
		}
	}
}

func BenchmarkDecompress(b *testing.B) {
	levels := []int{1, 6, 9, 12}
	for inputName, inputData := range benchmarkInputSets() {
		for _, level := range levels {
			c, err := NewCompressor(level)
			if err != nil {
				b.Fatalf("NewCompressor failed: %v", err)
			}
			compressed := make([]byte, c.CompressBound(len(inputData)))
			n := c.Compress(inputData, compressed)
			if n == 0 {
				b.Fatalf("setup Compress failed for %s level %d", inputName, level)
			}
			compressed = compressed[:n]

			d := NewDecompressor()
			out := make([]byte, len(inputData))
			if res, _, _ := d.Decompress(compressed, out); res != ResultSuccess {
				b.Fatalf("setup Decompress failed for %s level %d: %v", inputName, level, res)
			}

			name := fmt.Sprintf("%s/from-level-%d", inputName, level)
			b.Run(name, func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if res, _, _ := d.Decompress(compressed, out); res != ResultSuccess {
						b.Fatalf("Decompress failed: %v", res)
					}
				}
			})
		}
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	inputData := bytes.Repeat([]byte("RoundTripData"), 16384)
	c, err := NewCompressor(9)
	if err != nil {
		b.Fatalf("NewCompressor failed: %v", err)
	}
	compressed := make([]byte, c.CompressBound(len(inputData)))
	decoded := make([]byte, len(inputData))
	d := NewDecompressor()

	b.ReportAllocs()
	b.SetBytes(int64(len(inputData)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		n := c.Compress(inputData, compressed)
		if n == 0 {
			b.Fatalf("Compress failed")
		}
		if res, _, _ := d.Decompress(compressed[:n], decoded); res != ResultSuccess {
			b.Fatalf("Decompress failed: %v", res)
		}
	}
}

func BenchmarkCompressGzip(b *testing.B) {
	inputData := benchmarkInputSets()["pattern-128k"]
	c, err := NewCompressor(6)
	if err != nil {
		b.Fatalf("NewCompressor failed: %v", err)
	}
	out := make([]byte, c.CompressBound(len(inputData))+32)

	b.ReportAllocs()
	b.SetBytes(int64(len(inputData)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if n := c.CompressGzip(inputData, out); n == 0 {
			b.Fatalf("CompressGzip returned 0")
		}
	}
}
