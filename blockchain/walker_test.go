// Copyright (c) 2025 The blockwalk developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"encoding/binary"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/satoshigraph/blockwalk/visitor"
	"github.com/satoshigraph/blockwalk/wire"
	"github.com/stretchr/testify/require"
)

// recorder is a minimal Visitor that records the order and height of
// every emitted block, for assertions against the scenarios in the
// design's testable-properties section.
type recorder struct {
	heights []uint64
	hashes  []chainhash.Hash
}

func (r *recorder) VisitBlockBegin(header wire.BlockHeader, height uint64) struct{} {
	r.heights = append(r.heights, height)
	r.hashes = append(r.hashes, header.CurHash())
	return struct{}{}
}
func (r *recorder) VisitBlockEnd(wire.BlockHeader, uint64, struct{}) {}
func (r *recorder) VisitTransactionBegin(struct{}) struct{}         { return struct{}{} }
func (r *recorder) VisitTransactionInput(wire.TransactionInput, struct{}, struct{}, *struct{}) {
}
func (r *recorder) VisitTransactionOutput(wire.TransactionOutput, int, struct{}, struct{}) *struct{} {
	return nil
}
func (r *recorder) VisitTransactionEnd(wire.Transaction, struct{}, struct{}) {}
func (r *recorder) Done() int                                                { return len(r.heights) }

var _ visitor.Visitor[struct{}, struct{}, struct{}, int] = (*recorder)(nil)

func writeVarInt(buf []byte, v uint64) []byte {
	return append(buf, byte(v))
}

func buildCoinbase() []byte {
	var tx []byte
	tx = append(tx, 1, 0, 0, 0) // version
	tx = writeVarInt(tx, 1)     // 1 input
	tx = append(tx, make([]byte, 32)...)
	tx = append(tx, 0xff, 0xff, 0xff, 0xff) // prev index
	tx = writeVarInt(tx, 0)                 // empty script
	tx = append(tx, 0xff, 0xff, 0xff, 0xff) // sequence
	tx = writeVarInt(tx, 1)                 // 1 output
	tx = append(tx, make([]byte, 8)...)      // value 0
	tx = writeVarInt(tx, 0)                  // empty script
	tx = append(tx, 0, 0, 0, 0)              // locktime
	return tx
}

func buildHeader(prev chainhash.Hash) []byte {
	h := make([]byte, 0, wire.BlockHeaderLen)
	h = append(h, 1, 0, 0, 0) // version
	h = append(h, prev[:]...)
	h = append(h, make([]byte, 32)...) // merkle root
	h = append(h, make([]byte, 4)...)  // timestamp
	h = append(h, make([]byte, 4)...)  // bits
	h = append(h, make([]byte, 4)...)  // nonce
	return h
}

func buildBlockRecord(prev chainhash.Hash) ([]byte, chainhash.Hash) {
	header := buildHeader(prev)
	tx := buildCoinbase()

	body := make([]byte, 0, len(header)+len(tx)+1)
	body = append(body, header...)
	body = writeVarInt(body, 1)
	body = append(body, tx...)

	record := make([]byte, 0, 8+len(body))
	magic := make([]byte, 4)
	binary.LittleEndian.PutUint32(magic, uint32(wire.MainNet))
	record = append(record, magic...)
	length := make([]byte, 4)
	binary.LittleEndian.PutUint32(length, uint32(len(body)))
	record = append(record, length...)
	record = append(record, body...)

	curHash := chainhash.DoubleHashH(header)
	return record, curHash
}

func chainOf(n int) ([]byte, []chainhash.Hash) {
	var data []byte
	hashes := make([]chainhash.Hash, 0, n)
	prev := chainhash.Hash{}
	for i := 0; i < n; i++ {
		record, cur := buildBlockRecord(prev)
		data = append(data, record...)
		hashes = append(hashes, cur)
		prev = cur
	}
	return data, hashes
}

func TestWalkSliceEmptyInput(t *testing.T) {
	state := newWalkState[struct{}]()
	r := &recorder{}
	require.NoError(t, walkSlice[struct{}, struct{}, struct{}, int](r, state, nil))
	require.Empty(t, r.heights)
}

func TestWalkSliceLinearChain(t *testing.T) {
	data, hashes := chainOf(4)
	state := newWalkState[struct{}]()
	r := &recorder{}
	require.NoError(t, walkSlice[struct{}, struct{}, struct{}, int](r, state, data))

	// The last block of a traversal is held as lastBlock and only
	// emitted once a successor (or drain) confirms it; with nothing
	// following it, it is never flushed. So height-1 blocks emit.
	require.Equal(t, []uint64{0, 1, 2}, r.heights)
	require.Equal(t, hashes[0], r.hashes[0])
	require.Equal(t, hashes[1], r.hashes[1])
	require.Equal(t, hashes[2], r.hashes[2])
}

func TestWalkSliceOutOfOrderWithinFile(t *testing.T) {
	records := make([][]byte, 0, 3)
	hashes := make([]chainhash.Hash, 0, 3)
	prev := chainhash.Hash{}
	for i := 0; i < 3; i++ {
		record, cur := buildBlockRecord(prev)
		records = append(records, record)
		hashes = append(hashes, cur)
		prev = cur
	}

	// Reorder: block 0, block 2, block 1. Block 2 cites block 1's hash
	// as its parent, so it gets deferred to skipped until block 1
	// arrives and drains it.
	var data []byte
	data = append(data, records[0]...)
	data = append(data, records[2]...)
	data = append(data, records[1]...)

	state := newWalkState[struct{}]()
	r := &recorder{}
	require.NoError(t, walkSlice[struct{}, struct{}, struct{}, int](r, state, data))

	require.Equal(t, []uint64{0, 1}, r.heights)
	require.Equal(t, hashes[0], r.hashes[0])
	require.Equal(t, hashes[1], r.hashes[1])
}

func TestWalkCrossFileDeferral(t *testing.T) {
	records := make([][]byte, 0, 3)
	hashes := make([]chainhash.Hash, 0, 3)
	prev := chainhash.Hash{}
	for i := 0; i < 3; i++ {
		record, cur := buildBlockRecord(prev)
		records = append(records, record)
		hashes = append(hashes, cur)
		prev = cur
	}

	state := newWalkState[struct{}]()
	r := &recorder{}

	// First file: blocks 0 and 2 (2 deferred, parent unknown yet; 0 is
	// held as lastBlock, so nothing is emitted yet).
	file1 := append(append([]byte{}, records[0]...), records[2]...)
	require.NoError(t, walkSlice[struct{}, struct{}, struct{}, int](r, state, file1))
	require.Empty(t, r.heights)

	// Second file: block 1 arrives, draining block 2 behind it.
	file2 := append([]byte{}, records[1]...)
	require.NoError(t, walkSlice[struct{}, struct{}, struct{}, int](r, state, file2))
	require.Equal(t, []uint64{0, 1, 2}, r.heights)
	require.Equal(t, hashes[1], r.hashes[1])
	require.Equal(t, hashes[2], r.hashes[2])
}

func TestWalkSliceTwoWaySplit(t *testing.T) {
	base, baseHashes := chainOf(1)
	parent := baseHashes[0]

	sideA, curA := buildBlockRecord(parent)
	sideB, _ := buildBlockRecord(parent)
	sideB[8+76] = 1 // distinct nonce, so sideB is a different block from sideA
	curB := chainhash.DoubleHashH(sideB[8 : 8+wire.BlockHeaderLen])
	require.NotEqual(t, curA, curB)

	// childOfA cites sideA as its parent, resolving the split in A's favor.
	childOfA, curChild := buildBlockRecord(curA)

	var data []byte
	data = append(data, base...)
	data = append(data, sideA...)
	data = append(data, sideB...)
	data = append(data, childOfA...)

	state := newWalkState[struct{}]()
	r := &recorder{}
	require.NoError(t, walkSlice[struct{}, struct{}, struct{}, int](r, state, data))

	require.Equal(t, []uint64{0, 1, 2}, r.heights)
	require.Equal(t, baseHashes[0], r.hashes[0])
	require.Equal(t, curA, r.hashes[1])
	require.Equal(t, curChild, r.hashes[2])
}

func TestWalkHeightMonotonic(t *testing.T) {
	data, _ := chainOf(6)
	state := newWalkState[struct{}]()
	r := &recorder{}
	require.NoError(t, walkSlice[struct{}, struct{}, struct{}, int](r, state, data))

	for i := 1; i < len(r.heights); i++ {
		require.Equal(t, r.heights[i-1]+1, r.heights[i])
	}
}
