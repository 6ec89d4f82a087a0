// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate (derived from github.com/woozymasta/lzo)

package deflate

// Compressor is a reusable DEFLATE encoder handle (spec.md §5: a
// single-threaded, sole-owner object). Construct one with NewCompressor
// and reuse it across many Compress calls; each call resets the
// matchfinder and block-splitter state from scratch, mirroring the
// teacher's reusable sliding-window-dictionary pattern generalized from
// one LZO level to this codec's matchfinder/parser variants.
type Compressor struct {
	level  int
	params levelParams
}

// NewCompressor constructs a compressor for level (0..12, spec.md §6).
func NewCompressor(level int) (*Compressor, error) {
	if level < 0 || level > 12 {
		return nil, ErrInvalidLevel
	}
	markCodecCreated()
	return &Compressor{level: level, params: levels[level]}, nil
}

// CompressBound returns an upper bound on the number of bytes Compress can
// produce for an input of inputLen bytes (spec.md §6 formula).
func (c *Compressor) CompressBound(inputLen int) int {
	blocks := (inputLen + minBlockLength - 1) / minBlockLength
	if blocks < 1 {
		blocks = 1
	}
	return 5*blocks + inputLen + 1 + outputEndPadding
}

// Compress writes a complete DEFLATE stream for input into output,
// returning the number of bytes written, or 0 if output was too small to
// hold it (spec.md §6/§7 — compression has no other failure mode given
// valid slices).
func (c *Compressor) Compress(input, output []byte) (n int) {
	defer func() {
		if recover() != nil {
			n = 0
		}
	}()

	bw := newBitWriter(output)
	c.runBlocks(input, &bw)

	written := bw.finish()
	if written < 0 {
		return 0
	}
	return written
}

// runBlocks drives the parser/splitter loop that turns input into a
// sequence of DEFLATE blocks, dispatching on the compressor's level
// parameters (spec.md §9 "polymorphic matchfinder dispatch").
func (c *Compressor) runBlocks(input []byte, bw *bitWriter) {
	if c.params.parser == parserUncompressedOnly {
		emitBlock(bw, input, 0, len(input), []sequence{{litRunLen: uint32(len(input))}}, true, true)
		return
	}

	var (
		hc *hcMatcher
		ht *htMatcher
		bt *btMatcher
	)
	switch c.params.matchfinder {
	case matchfinderHT:
		ht = newHTMatcher(input)
	case matchfinderHC:
		hc = newHCMatcher(input)
	case matchfinderBT:
		bt = newBTMatcher(input)
	}

	splitter := &blockSplitter{}
	pos := 0
	n := len(input)

	if n == 0 {
		emitBlock(bw, input, 0, 0, []sequence{{}}, true, false)
		return
	}

	for pos < n {
		var seqs []sequence
		var newPos int

		switch c.params.parser {
		case parserGreedy:
			var m greedyMatcher
			if ht != nil {
				m = ht
			} else {
				m = hc
			}
			seqs, newPos = parseGreedyBlock(m, input, pos, c.params.niceLen, c.params.maxSearchDepth, splitter)
		case parserLazy:
			seqs, newPos = parseLazyBlock(hc, input, pos, c.params.niceLen, c.params.maxSearchDepth, false, splitter)
		case parserLazy2:
			seqs, newPos = parseLazyBlock(hc, input, pos, c.params.niceLen, c.params.maxSearchDepth, true, splitter)
		default: // parserNearOptimal
			seqs, newPos = parseNearOptimalBlock(bt, input, pos, c.params.niceLen, c.params.maxSearchDepth, c.params.numOptimPasses, splitter)
		}

		isFinal := newPos >= n
		emitBlock(bw, input, pos, newPos-pos, seqs, isFinal, false)
		splitter.reset()
		pos = newPos
	}
}
