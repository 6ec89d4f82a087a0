// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate

package deflate

import (
	"encoding/binary"
	"math/bits"
)

// lzExtend returns how far buf[curPos:] and buf[matchPos:] agree, capped at
// maxLen (spec.md §4.4 "Common extension routine"). curPos > matchPos is
// the caller's responsibility; lzExtend never reads at or beyond
// curPos+maxLen.
//
// Dispatch mirrors spec.md §9's accelerator slot: on hosts with fast
// unaligned loads (accelerator.go), agreement is found word-at-a-time with
// a trailing-zero count pinpointing the first differing byte; elsewhere a
// byte-at-a-time scan is always correct.
func lzExtend(buf []byte, curPos, matchPos, maxLen int) int {
	if unalignedLoadsFast {
		return lzExtendFast(buf, curPos, matchPos, maxLen)
	}
	return lzExtendScalar(buf, curPos, matchPos, maxLen)
}

func lzExtendFast(buf []byte, curPos, matchPos, maxLen int) int {
	n := 0
	for n+8 <= maxLen {
		a := binary.LittleEndian.Uint64(buf[curPos+n:])
		b := binary.LittleEndian.Uint64(buf[matchPos+n:])
		if a != b {
			return n + bits.TrailingZeros64(a^b)/8
		}
		n += 8
	}
	for n < maxLen && buf[curPos+n] == buf[matchPos+n] {
		n++
	}
	return n
}

func lzExtendScalar(buf []byte, curPos, matchPos, maxLen int) int {
	n := 0
	for n < maxLen && buf[curPos+n] == buf[matchPos+n] {
		n++
	}
	return n
}
