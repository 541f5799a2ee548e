// Copyright (c) 2013-2024 The btcsuite developers
// Copyright (c) 2025 The blockwalk developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorReadUints(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}
	c := NewCursor(buf)

	u8, err := c.ReadU8()
	require.NoError(t, err)
	require.Equal(t, byte(0x01), u8)

	u16, err := c.ReadU16LE()
	require.NoError(t, err)
	require.Equal(t, uint16(0x0302), u16)

	u32, err := c.ReadU32LE()
	require.NoError(t, err)
	require.Equal(t, uint32(0x07060504), u32)

	require.Equal(t, 0, c.Len())
}

func TestCursorReadEOF(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02})
	_, err := c.ReadU32LE()
	require.ErrorIs(t, err, ErrEOF)
}

func TestCursorReadVarInt(t *testing.T) {
	cases := []struct {
		encoded []byte
		want    uint64
	}{
		{[]byte{0x00}, 0},
		{[]byte{0xfc}, 0xfc},
		{[]byte{0xfd, 0xfd, 0x00}, 0xfd},
		{[]byte{0xfd, 0xff, 0xff}, 0xffff},
		{[]byte{0xfe, 0x00, 0x00, 0x01, 0x00}, 0x00010000},
		{[]byte{0xff, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00}, 0x0000000100000000},
	}
	for _, tc := range cases {
		c := NewCursor(tc.encoded)
		got, err := c.ReadVarInt()
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
		require.Equal(t, 0, c.Len())
	}
}

func TestCursorSkipZeros(t *testing.T) {
	c := NewCursor([]byte{0x00, 0x00, 0x00, 0x09})
	n := c.SkipZeros()
	require.Equal(t, 3, n)
	b, err := c.ReadU8()
	require.NoError(t, err)
	require.Equal(t, byte(0x09), b)
}

func TestCursorPeekDoesNotAdvance(t *testing.T) {
	c := NewCursor([]byte{0xaa, 0xbb, 0xcc})
	peeked, ok := c.Peek(2)
	require.True(t, ok)
	require.Equal(t, []byte{0xaa, 0xbb}, peeked)
	require.Equal(t, 0, c.Pos())

	_, ok = c.Peek(10)
	require.False(t, ok)
}
