// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate (derived from github.com/woozymasta/lzo)

package deflate

import (
	"hash/adler32"
	"hash/crc32"
)

// Checksums are explicitly out of scope as an algorithm this codec
// implements (spec.md §1 "opaque streaming hashes"); they are satisfied by
// the standard library, the same way the zlib/gzip wrapper examples in the
// pack reach for hash/adler32 and hash/crc32 rather than hand-rolling
// either polynomial. This file is the single place zlib.go/gzip.go call
// into those packages, so the wrapper files themselves stay framing-only.

// zlibChecksum computes the Adler-32 checksum RFC 1950 trailers carry.
func zlibChecksum(data []byte) uint32 {
	return adler32.Checksum(data)
}

// gzipChecksum computes the CRC-32 (IEEE polynomial) checksum RFC 1952
// trailers carry.
func gzipChecksum(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}
