// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate

package deflate

// numObservationTypes: 8 literal buckets keyed by ((byte>>5)&0x6)|(byte&1)
// plus 2 match buckets (short if length < shortMatchBound, else long),
// spec.md §4.6.
const (
	numObservationTypes  = 10
	shortMatchBound      = 9
	matchObservationBase = 8
)

// blockSplitter decides, as the parser walks forward, when the current
// block has drifted far enough from its opening statistics to end it
// (spec.md §4.6). There is no teacher equivalent — the LZO format has no
// block concept — so this is authored directly from spec.md's
// observation-bucket heuristic, in the teacher's plain-struct,
// no-floating-point style.
type blockSplitter struct {
	newObs   [numObservationTypes]uint32
	oldObs   [numObservationTypes]uint32
	numNew   uint32
	numOld   uint32
	blockLen int
}

func litObservationType(b byte) int {
	return int(((b>>5)&0x6)|(b&1))
}

func matchObservationType(length int) int {
	if length < shortMatchBound {
		return matchObservationBase
	}
	return matchObservationBase + 1
}

// addBytes records that n more input bytes have been folded into the
// current block (literal or match length), for the MIN_BLOCK_LENGTH gate.
func (s *blockSplitter) addBytes(n int) {
	s.blockLen += n
}

// observe records one literal/match observation and reports whether the
// block should end here. Once it reports true, the caller must call
// reset before continuing to parse the next block.
func (s *blockSplitter) observe(obsType int) bool {
	s.newObs[obsType]++
	s.numNew++

	if s.numNew < numObservationsPerBlockCheck || s.blockLen <= minBlockLength {
		return false
	}

	if s.numOld == 0 {
		s.foldNewIntoOld()
		return false
	}

	var totalDelta uint64
	for i := 0; i < numObservationTypes; i++ {
		a := uint64(s.newObs[i]) * uint64(s.numOld)
		b := uint64(s.oldObs[i]) * uint64(s.numNew)
		if a > b {
			totalDelta += a - b
		} else {
			totalDelta += b - a
		}
	}

	cutoff := uint64(s.numNew) * 200 / 512 * uint64(s.numOld)
	if s.blockLen < 2*minBlockLength {
		// Scale the cutoff up for a still-short block so a small number of
		// confirming observations cannot prematurely end it.
		cutoff *= 2
	}

	threshold := totalDelta + uint64(s.blockLen/4096)*uint64(s.numOld)
	if threshold >= cutoff {
		return true
	}

	s.foldNewIntoOld()
	return false
}

func (s *blockSplitter) foldNewIntoOld() {
	for i := range s.oldObs {
		s.oldObs[i] += s.newObs[i]
		s.newObs[i] = 0
	}
	s.numOld += s.numNew
	s.numNew = 0
}

// reset clears all running statistics for the next block.
func (s *blockSplitter) reset() {
	*s = blockSplitter{}
}
