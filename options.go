// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/goflate (derived from github.com/woozymasta/lzo)

package deflate

// GzipOptions configures the optional metadata fields of a gzip (RFC 1952)
// wrapper written by (*Compressor).CompressGzip. The zero value is valid
// and produces a header with no name, no comment, MTIME 0 and OS 0
// (RFC 1952 "FAT filesystem"); DefaultGzipOptions gives OS 255 "unknown".
type GzipOptions struct {
	// MTIME is the modification time in Unix seconds, or 0 if unavailable.
	MTIME uint32
	// OS identifies the originating filesystem (RFC 1952 §2.3.1); 255 means
	// unknown. It is written as given, so the zero value writes 0, and
	// DefaultGzipOptions sets 255 explicitly.
	OS byte
	// Name, if non-empty, is written as the NUL-terminated FNAME field.
	Name string
	// Comment, if non-empty, is written as the NUL-terminated FCOMMENT field.
	Comment string
}

// DefaultGzipOptions returns options for the minimal gzip header: no name,
// no comment, MTIME 0, OS 255 (unknown).
func DefaultGzipOptions() GzipOptions {
	return GzipOptions{OS: 255}
}

// ZlibOptions configures the zlib (RFC 1950) wrapper. It carries no
// optional metadata fields (the format has none); it exists for symmetry
// with GzipOptions and so CompressZlib's signature can grow without
// breaking callers.
type ZlibOptions struct{}
