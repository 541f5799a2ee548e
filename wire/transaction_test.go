// Copyright (c) 2013-2024 The btcsuite developers
// Copyright (c) 2025 The blockwalk developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadTransactionLegacy(t *testing.T) {
	raw := buildCoinbaseTx([]byte{0x51})
	c := NewCursor(raw)
	tx, err := readTransaction(c)
	require.NoError(t, err)
	require.Equal(t, int32(1), tx.Version)
	require.Len(t, tx.Inputs, 1)
	require.Len(t, tx.Outputs, 1)
	require.Equal(t, 0, c.Len())
}

// buildSegwitTx builds a one-input, one-output segwit transaction and
// returns both its bytes and the bytes of the legacy-equivalent
// transaction (same fields, no marker/flag/witness) used to confirm the
// two compute identical txids.
func buildSegwitTx(witnessItems [][]byte) (segwit []byte, legacyEquivalent []byte) {
	var body []byte
	body = writeVarInt(body, 1) // inputs region reused for both
	body = append(body, make([]byte, 32)...)
	body = writeU32LE(body, 0)
	sig := []byte{0x16}
	body = writeVarInt(body, uint64(len(sig)))
	body = append(body, sig...)
	body = writeU32LE(body, 0xffffffff)
	body = writeVarInt(body, 1)
	body = writeU64LE(body, 1000)
	out := []byte{0x00, 0x14}
	body = writeVarInt(body, uint64(len(out)))
	body = append(body, out...)

	legacy := append([]byte{1, 0, 0, 0}, body...)
	legacy = writeU32LE(legacy, 0)

	sw := append([]byte{1, 0, 0, 0}, segwitMarker, segwitFlag)
	sw = append(sw, body...)
	sw = writeVarInt(sw, uint64(len(witnessItems)))
	for _, item := range witnessItems {
		sw = writeVarInt(sw, uint64(len(item)))
		sw = append(sw, item...)
	}
	sw = writeU32LE(sw, 0)

	return sw, legacy
}

func writeU32LE(buf []byte, v uint32) []byte {
	return append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

func writeU64LE(buf []byte, v uint64) []byte {
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		out[i] = byte(v >> (8 * i))
	}
	return append(buf, out...)
}

func TestReadTransactionSegwitTxidExcludesWitness(t *testing.T) {
	swBytes, legacyBytes := buildSegwitTx([][]byte{{0xde, 0xad}, {0xbe, 0xef}})

	swTx, err := readTransaction(NewCursor(swBytes))
	require.NoError(t, err)

	legacyTx, err := readTransaction(NewCursor(legacyBytes))
	require.NoError(t, err)

	require.Equal(t, legacyTx.Txid(), swTx.Txid())
}
