// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate

package deflate

import (
	"bytes"
	"testing"
)

func TestHCMatcher_FindsExactRepeat(t *testing.T) {
	input := []byte("abcdefgh" + "xxxxx" + "abcdefgh")
	m := newHCMatcher(input)

	for i := 0; i < 13; i++ {
		m.insert(i)
	}

	pos := 13
	length, distance := m.findLongest(pos, 258, 32)
	if length < 8 {
		t.Fatalf("length = %d, want >= 8", length)
	}
	if distance != 13 {
		t.Fatalf("distance = %d, want 13", distance)
	}
}

func TestHCMatcher_NoMatchOnUniqueData(t *testing.T) {
	input := allByteValues()
	m := newHCMatcher(input)
	for i := 0; i < 3; i++ {
		m.insert(i)
	}
	length, _ := m.findLongest(3, 258, 32)
	if length != 0 {
		t.Fatalf("length = %d, want 0 on all-distinct bytes", length)
	}
}

func TestHTMatcher_FindsRepeatAndOverwritesSlot(t *testing.T) {
	input := []byte("wxyz" + "____" + "wxyz" + "____" + "wxyz")
	m := newHTMatcher(input)

	l0, _ := m.findAndInsert(0)
	if l0 != 0 {
		t.Fatalf("first occurrence should have no match, got length %d", l0)
	}
	l1, d1 := m.findAndInsert(8)
	if l1 < 4 || d1 != 8 {
		t.Fatalf("second occurrence: length=%d distance=%d, want length>=4 distance=8", l1, d1)
	}
	// Third occurrence should now match against the second (slot overwritten).
	l2, d2 := m.findAndInsert(16)
	if l2 < 4 || d2 != 8 {
		t.Fatalf("third occurrence: length=%d distance=%d, want length>=4 distance=8", l2, d2)
	}
}

func TestBTMatcher_CachesDistinctLengthMatches(t *testing.T) {
	input := []byte("match" + "." + "match!" + "." + "match!!")
	m := newBTMatcher(input)

	for i := 0; i < 6; i++ {
		m.insertAndFindMatches(i, 258, 64)
	}

	matches := m.insertAndFindMatches(6, 258, 64)
	if len(matches) == 0 {
		t.Fatalf("expected at least one match against the first 'match' occurrence")
	}
	longest := 0
	for _, mt := range matches {
		if mt.length > longest {
			longest = mt.length
		}
	}
	if longest < 5 {
		t.Fatalf("longest cached match = %d, want >= 5", longest)
	}
}

func TestMfRebase_SaturatesAtNullPos(t *testing.T) {
	positions := []mfPos{mfNullPos, 0, windowSize - 1, 100}
	mfRebase(positions)

	if positions[0] != mfNullPos {
		t.Fatalf("already-null position changed after rebase: %d", positions[0])
	}
	if positions[1] != mfNullPos {
		t.Fatalf("position 0 after rebase should saturate to mfNullPos, got %d", positions[1])
	}
	if positions[2] != -1 {
		t.Fatalf("position windowSize-1 after rebase = %d, want -1", positions[2])
	}
	if positions[3] != mfPos(100-windowSize) {
		t.Fatalf("position 100 after rebase = %d, want %d", positions[3], 100-windowSize)
	}
}

func TestLzExtend_FastAndScalarAgree(t *testing.T) {
	buf := bytes.Repeat([]byte("0123456789"), 20)
	buf[55] = '_' // break the run somewhere in the middle

	fast := lzExtendFast(buf, 0, 10, len(buf)-10)
	scalar := lzExtendScalar(buf, 0, 10, len(buf)-10)
	if fast != scalar {
		t.Fatalf("lzExtendFast = %d, lzExtendScalar = %d, want equal", fast, scalar)
	}
}

func TestLzExtend_CapsAtMaxLen(t *testing.T) {
	buf := bytes.Repeat([]byte{'a'}, 100)
	n := lzExtend(buf, 0, 50, 10)
	if n != 10 {
		t.Fatalf("lzExtend with identical bytes and maxLen=10 returned %d, want 10", n)
	}
}
