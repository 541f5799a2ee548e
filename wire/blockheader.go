// Copyright (c) 2013-2024 The btcsuite developers
// Copyright (c) 2025 The blockwalk developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// BlockHeaderLen is the fixed size, in bytes, of a block header.
const BlockHeaderLen = 80

// BlockHeader is a borrowed, 80-byte view over a block's header fields.
// It performs no allocation on construction; every accessor decodes
// directly from the underlying slice.
type BlockHeader struct {
	raw []byte
}

// NewBlockHeader wraps exactly BlockHeaderLen bytes as a BlockHeader. The
// caller must guarantee len(raw) == BlockHeaderLen.
func NewBlockHeader(raw []byte) BlockHeader {
	return BlockHeader{raw: raw}
}

// Version returns the block's version field.
func (h BlockHeader) Version() int32 {
	return int32(binary.LittleEndian.Uint32(h.raw[0:4]))
}

// PrevHash returns the hash of the previous block header in the chain.
func (h BlockHeader) PrevHash() chainhash.Hash {
	var hash chainhash.Hash
	copy(hash[:], h.raw[4:36])
	return hash
}

// MerkleRoot returns the merkle root of the block's transactions.
func (h BlockHeader) MerkleRoot() chainhash.Hash {
	var hash chainhash.Hash
	copy(hash[:], h.raw[36:68])
	return hash
}

// Timestamp returns the block's creation time.
func (h BlockHeader) Timestamp() time.Time {
	secs := binary.LittleEndian.Uint32(h.raw[68:72])
	return time.Unix(int64(secs), 0).UTC()
}

// Bits returns the block's compact difficulty target.
func (h BlockHeader) Bits() uint32 {
	return binary.LittleEndian.Uint32(h.raw[72:76])
}

// Nonce returns the block's proof-of-work nonce.
func (h BlockHeader) Nonce() uint32 {
	return binary.LittleEndian.Uint32(h.raw[76:80])
}

// CurHash computes the block's identity hash: the double-SHA-256 of its
// 80-byte header. This is the value a child block references as its
// PrevHash.
func (h BlockHeader) CurHash() chainhash.Hash {
	return chainhash.DoubleHashH(h.raw)
}

// Bytes returns the raw 80-byte header.
func (h BlockHeader) Bytes() []byte {
	return h.raw
}
