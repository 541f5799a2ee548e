// Copyright (c) 2013-2024 The btcsuite developers
// Copyright (c) 2025 The blockwalk developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "fmt"

// Block is a borrowed view over a single block record: an 80-byte header
// followed by a varint transaction count and that many transactions.
type Block struct {
	raw []byte
}

// Header returns the block's 80-byte header view.
func (b Block) Header() BlockHeader {
	return NewBlockHeader(b.raw[:BlockHeaderLen])
}

// Bytes returns the block's raw byte view, header included.
func (b Block) Bytes() []byte {
	return b.raw
}

// Transactions parses and returns every transaction in the block in
// on-disk order.
func (b Block) Transactions() ([]Transaction, error) {
	cur := NewCursor(b.raw[BlockHeaderLen:])
	count, err := cur.ReadVarInt()
	if err != nil {
		return nil, fmt.Errorf("reading transaction count: %w", err)
	}

	txs := make([]Transaction, 0, count)
	for i := uint64(0); i < count; i++ {
		tx, err := readTransaction(cur)
		if err != nil {
			return nil, fmt.Errorf("reading transaction %d/%d: %w", i, count, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// ReadBlock frames a single block record off the cursor.
//
// It skips any leading zero padding, then inspects the next 4-byte magic:
// a zero magic or an empty cursor means there are no more blocks in this
// buffer (ok is false, err is nil); MainNet's magic is followed by a
// 4-byte length and exactly that many bytes of block data; any other
// magic is a framing error.
func ReadBlock(c *Cursor) (blk Block, ok bool, err error) {
	c.SkipZeros()

	if c.Len() == 0 {
		return Block{}, false, nil
	}

	magic, err := c.ReadU32LE()
	if err != nil {
		return Block{}, false, err
	}
	if magic == 0 {
		return Block{}, false, nil
	}
	if BitcoinNet(magic) != MainNet {
		return Block{}, false, fmt.Errorf("%w: 0x%08x", ErrInvalidMagic, magic)
	}

	length, err := c.ReadU32LE()
	if err != nil {
		return Block{}, false, err
	}
	if length < BlockHeaderLen {
		return Block{}, false, fmt.Errorf("%w: block length %d below header size", ErrEOF, length)
	}

	raw, err := c.ReadSlice(int(length))
	if err != nil {
		return Block{}, false, err
	}
	return Block{raw: raw}, true, nil
}
