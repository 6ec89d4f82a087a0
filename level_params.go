// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate (derived from github.com/woozymasta/lzo)

package deflate

// matchfinderKind and parserKind identify which matchfinder/parser
// implementation a compression level selects (spec.md §9 "polymorphic
// matchfinder dispatch": a tagged variant rather than an interface, since
// the three matchfinders have incompatible state shapes and this keeps
// the Compressor free of a heap-allocated interface value per call).
type matchfinderKind int

const (
	matchfinderNone matchfinderKind = iota
	matchfinderHT
	matchfinderHC
	matchfinderBT
)

type parserKind int

const (
	parserUncompressedOnly parserKind = iota
	parserGreedy
	parserLazy
	parserLazy2
	parserNearOptimal
)

// levelParams holds the tunables for one compression level, generalizing
// the teacher's compressLevelParams (9 LZO1X-999 levels: tryLazy/goodLen/
// maxLazy/niceLen/maxChain/flags) to this codec's 13 DEFLATE levels (0..12)
// with a matchfinder kind, a parser kind, and the near-optimal pass count
// (spec.md §6 "Compression level semantics").
type levelParams struct {
	matchfinder    matchfinderKind
	parser         parserKind
	niceLen        int
	maxSearchDepth int
	numOptimPasses int
}

// levels is indexed directly by compression level 0..12.
var levels = [13]levelParams{
	0:  {matchfinder: matchfinderNone, parser: parserUncompressedOnly},
	1:  {matchfinder: matchfinderHT, parser: parserGreedy, niceLen: 8, maxSearchDepth: 1},
	2:  {matchfinder: matchfinderHC, parser: parserGreedy, niceLen: 16, maxSearchDepth: 6},
	3:  {matchfinder: matchfinderHC, parser: parserGreedy, niceLen: 18, maxSearchDepth: 12},
	4:  {matchfinder: matchfinderHC, parser: parserGreedy, niceLen: 24, maxSearchDepth: 16},
	5:  {matchfinder: matchfinderHC, parser: parserLazy, niceLen: 30, maxSearchDepth: 30},
	6:  {matchfinder: matchfinderHC, parser: parserLazy, niceLen: 60, maxSearchDepth: 35},
	7:  {matchfinder: matchfinderHC, parser: parserLazy, niceLen: 80, maxSearchDepth: 60},
	8:  {matchfinder: matchfinderHC, parser: parserLazy2, niceLen: 128, maxSearchDepth: 90},
	9:  {matchfinder: matchfinderHC, parser: parserLazy2, niceLen: 133, maxSearchDepth: 128},
	10: {matchfinder: matchfinderBT, parser: parserNearOptimal, niceLen: 24, maxSearchDepth: 32, numOptimPasses: 2},
	11: {matchfinder: matchfinderBT, parser: parserNearOptimal, niceLen: 32, maxSearchDepth: 48, numOptimPasses: 3},
	12: {matchfinder: matchfinderBT, parser: parserNearOptimal, niceLen: 133, maxSearchDepth: 80, numOptimPasses: 4},
}
