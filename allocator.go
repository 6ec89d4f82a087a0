// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate (derived from github.com/woozymasta/lzo)

package deflate

import "sync"

// Allocator lets a host process supply its own allocation strategy for the
// scratch buffers the compressor and decompressor keep (spec.md §5/§6).
// It is a thin seam: Go has no manual free, so Free is advisory and may be
// nil. The codec does not route its own allocations through it: Compressor
// and Decompressor state is allocated with ordinary Go allocation, and the
// installed Alloc and Free are never called by this package (see
// DESIGN.md O1).
type Allocator struct {
	Alloc func(n int) []byte
	Free  func([]byte)
}

var (
	allocatorMu     sync.Mutex
	allocatorSet    bool
	anyCodecCreated bool
	allocator       = Allocator{
		Alloc: func(n int) []byte { return make([]byte, n) },
	}
)

// SetMemoryAllocator installs a process-wide allocator. It may be called
// exactly once, and only before any Compressor or Decompressor has been
// constructed (spec.md §5, §9 "global state"); subsequent calls, or calls
// made after the first codec is constructed, return ErrAllocatorAlreadySet.
func SetMemoryAllocator(a Allocator) error {
	allocatorMu.Lock()
	defer allocatorMu.Unlock()

	if allocatorSet || anyCodecCreated {
		return ErrAllocatorAlreadySet
	}
	if a.Alloc == nil {
		a.Alloc = func(n int) []byte { return make([]byte, n) }
	}
	allocator = a
	allocatorSet = true
	return nil
}

// markCodecCreated records that a Compressor or Decompressor now exists,
// closing the window for SetMemoryAllocator.
func markCodecCreated() {
	allocatorMu.Lock()
	anyCodecCreated = true
	allocatorMu.Unlock()
}

func allocBytes(n int) []byte {
	allocatorMu.Lock()
	alloc := allocator.Alloc
	allocatorMu.Unlock()
	return alloc(n)
}

func freeBytes(b []byte) {
	allocatorMu.Lock()
	free := allocator.Free
	allocatorMu.Unlock()
	if free != nil {
		free(b)
	}
}
