// Copyright (c) 2013-2024 The btcsuite developers
// Copyright (c) 2025 The blockwalk developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
)

// Cursor is a forward-only reader over a borrowed byte slice. Every read
// advances the cursor and returns a sub-slice of the original buffer;
// nothing is copied.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor returns a Cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Len returns the number of unread bytes.
func (c *Cursor) Len() int {
	return len(c.buf) - c.pos
}

// Pos returns the cursor's current offset into the original buffer.
func (c *Cursor) Pos() int {
	return c.pos
}

// Bytes returns the entire buffer the cursor was created over, independent
// of the current read position. Used to carve out contiguous sub-ranges
// (such as a transaction's non-witness serialization) after the fact.
func (c *Cursor) Bytes() []byte {
	return c.buf
}

// Peek returns the next n bytes without advancing the cursor. ok is false
// if fewer than n bytes remain.
func (c *Cursor) Peek(n int) (b []byte, ok bool) {
	if c.Len() < n {
		return nil, false
	}
	return c.buf[c.pos : c.pos+n], true
}

// SkipZeros consumes and discards leading zero bytes, returning the count
// skipped. Reference-node block files pad the tail of each file this way.
func (c *Cursor) SkipZeros() int {
	n := 0
	for c.pos < len(c.buf) && c.buf[c.pos] == 0 {
		c.pos++
		n++
	}
	return n
}

// ReadSlice consumes and returns the next n bytes.
func (c *Cursor) ReadSlice(n int) ([]byte, error) {
	if c.Len() < n {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrEOF, n, c.Len())
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadU8 reads a single byte.
func (c *Cursor) ReadU8() (byte, error) {
	b, err := c.ReadSlice(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16LE reads a little-endian uint16.
func (c *Cursor) ReadU16LE() (uint16, error) {
	b, err := c.ReadSlice(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32LE reads a little-endian uint32.
func (c *Cursor) ReadU32LE() (uint32, error) {
	b, err := c.ReadSlice(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadU64LE reads a little-endian uint64.
func (c *Cursor) ReadU64LE() (uint64, error) {
	b, err := c.ReadSlice(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadVarInt reads a Bitcoin Core "CompactSize" variable-length integer:
// values below 0xfd are encoded as a single byte; 0xfd, 0xfe and 0xff
// prefix a following uint16, uint32 and uint64 respectively.
func (c *Cursor) ReadVarInt() (uint64, error) {
	prefix, err := c.ReadU8()
	if err != nil {
		return 0, err
	}
	switch prefix {
	case 0xfd:
		v, err := c.ReadU16LE()
		return uint64(v), err
	case 0xfe:
		v, err := c.ReadU32LE()
		return uint64(v), err
	case 0xff:
		return c.ReadU64LE()
	default:
		return uint64(prefix), nil
	}
}
