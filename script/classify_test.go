// Copyright (c) 2013-2024 The btcsuite developers
// Copyright (c) 2025 The blockwalk developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyPayToPubkeyHash(t *testing.T) {
	hash := [20]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}
	s := append([]byte{0x76, 0xa9, 0x14}, hash[:]...)
	s = append(s, 0x88, 0xac)

	hl := Classify(s)
	require.Equal(t, PayToPubkeyHash, hl.Kind)
	require.Equal(t, hash, hl.Hash160)
}

func TestClassifyPayToScriptHash(t *testing.T) {
	hash := [20]byte{20, 19, 18, 17, 16, 15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	s := append([]byte{0xa9, 0x14}, hash[:]...)
	s = append(s, 0x87)

	hl := Classify(s)
	require.Equal(t, PayToScriptHash, hl.Kind)
	require.Equal(t, hash, hl.Hash160)
}

func TestClassifyPayToWitnessPubkeyHash(t *testing.T) {
	program := [20]byte{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	s := append([]byte{0x00, 0x14}, program[:]...)

	hl := Classify(s)
	require.Equal(t, PayToWitnessPubkeyHash, hl.Kind)
	require.Equal(t, program[:], hl.WitnessProgram)
}

func TestClassifyOpReturn(t *testing.T) {
	s := []byte{0x6a, 0x04, 0xde, 0xad, 0xbe, 0xef}
	hl := Classify(s)
	require.Equal(t, OpReturn, hl.Kind)
}

func TestClassifyOther(t *testing.T) {
	s := []byte{0x51, 0x52, 0x93} // OP_1 OP_2 OP_ADD, not a standard template
	hl := Classify(s)
	require.Equal(t, Other, hl.Kind)
}
