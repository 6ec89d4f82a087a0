// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate (derived from github.com/woozymasta/lzo)

package deflate

// mfPos is a matchfinder position relative to a movable base (spec.md §3
// "Window / position"). windowSize (32768) is exactly -math.MinInt16, so a
// 16-bit signed integer can represent every in-window offset plus one full
// extra window of "definitely stale" negative offsets before saturating.
type mfPos int16

// mfNullPos is the initialization/out-of-window sentinel: -window_size.
const mfNullPos mfPos = -windowSize

// mfRebase shifts every position in positions by -windowSize with signed
// saturation to mfNullPos, the operation applied when the matchfinder's
// base advances by one window (spec.md §4.4, §9 "Rebase"). A position that
// was already out of window stays out of window: this is the invariant
// spec.md §8 property 10 requires.
func mfRebase(positions []mfPos) {
	for i, p := range positions {
		shifted := int32(p) - windowSize
		if shifted < int32(mfNullPos) {
			positions[i] = mfNullPos
		} else {
			positions[i] = mfPos(shifted)
		}
	}
}

// mfBase tracks the absolute input offset that a matchfinder's relative
// positions are measured from, rebasing whenever the active window would
// otherwise overflow mfPos's range.
type mfBase struct {
	base int
}

// maybeRebase advances base by windowSize and rebases every position array
// in tables once the current absolute position reaches base+windowSize.
// Returns true if a rebase occurred (callers that cache absolute positions
// derived from a matchfinder must recompute them after a rebase).
func (m *mfBase) maybeRebase(curAbsPos int, tables ...[]mfPos) bool {
	if curAbsPos < m.base+windowSize {
		return false
	}
	m.base += windowSize
	for _, t := range tables {
		mfRebase(t)
	}
	return true
}

func (m *mfBase) rel(absPos int) mfPos {
	return mfPos(absPos - m.base)
}

func (m *mfBase) abs(p mfPos) int {
	return m.base + int(p)
}
