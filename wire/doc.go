// Copyright (c) 2013-2024 The btcsuite developers
// Copyright (c) 2025 The blockwalk developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wire implements read-only parsing of the on-disk Bitcoin block-file
format used by a reference full node (blk*.dat).

Unlike the peer-to-peer wire protocol this package's ancestor implemented,
nothing here is ever serialized: every type is a borrowed view over a byte
slice supplied by the caller (typically a memory-mapped file), valid only
for as long as that slice is. Callers that need a value to outlive the
underlying mapping must copy it explicitly.

# Framing

ReadBlock frames one block record at a time from a Cursor positioned at the
start of a blk*.dat file (or at the position immediately following a
previously read block). Block records start with a 4-byte little-endian
network magic, followed by a 4-byte little-endian length, followed by that
many bytes of block data. Trailing zero padding and an abrupt zero magic are
both treated as a clean end of file rather than an error.
*/
package wire
