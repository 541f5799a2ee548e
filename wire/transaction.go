// Copyright (c) 2013-2024 The btcsuite developers
// Copyright (c) 2025 The blockwalk developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// segwitMarker and segwitFlag are the two bytes a segwit transaction
// inserts immediately after its version field (BIP144).
const (
	segwitMarker = 0x00
	segwitFlag   = 0x01
)

// TransactionInput is a borrowed view over a single transaction input.
type TransactionInput struct {
	PrevHash  chainhash.Hash
	PrevIndex uint32
	Script    []byte
	Sequence  uint32
}

// TransactionOutput is a borrowed view over a single transaction output.
type TransactionOutput struct {
	Value  uint64
	Script []byte
}

// Transaction is a borrowed view over a single transaction.
type Transaction struct {
	Version  int32
	Inputs   []TransactionInput
	Outputs  []TransactionOutput
	LockTime uint32

	txid chainhash.Hash
}

// Txid returns the transaction's identity hash: the double-SHA-256 of its
// non-witness serialization, matching BIP141 so that segwit and legacy
// transactions referencing the same spend agree on the txid.
func (t Transaction) Txid() chainhash.Hash {
	return t.txid
}

// readTransaction parses one transaction off the cursor, leaving it
// positioned at the first byte after the transaction (after any witness
// data).
func readTransaction(c *Cursor) (Transaction, error) {
	verBytes, err := c.ReadSlice(4)
	if err != nil {
		return Transaction{}, fmt.Errorf("version: %w", err)
	}
	version := int32(uint32(verBytes[0]) | uint32(verBytes[1])<<8 | uint32(verBytes[2])<<16 | uint32(verBytes[3])<<24)

	hasWitness := false
	if peek, ok := c.Peek(2); ok && peek[0] == segwitMarker && peek[1] == segwitFlag {
		if _, err := c.ReadSlice(2); err != nil {
			return Transaction{}, err
		}
		hasWitness = true
	}

	inputsStart := c.Pos()
	inCount, err := c.ReadVarInt()
	if err != nil {
		return Transaction{}, fmt.Errorf("input count: %w", err)
	}
	inputs := make([]TransactionInput, inCount)
	for i := range inputs {
		prevHashBytes, err := c.ReadSlice(chainhash.HashSize)
		if err != nil {
			return Transaction{}, fmt.Errorf("input %d prev hash: %w", i, err)
		}
		var prevHash chainhash.Hash
		copy(prevHash[:], prevHashBytes)

		prevIndex, err := c.ReadU32LE()
		if err != nil {
			return Transaction{}, fmt.Errorf("input %d prev index: %w", i, err)
		}
		scriptLen, err := c.ReadVarInt()
		if err != nil {
			return Transaction{}, fmt.Errorf("input %d script length: %w", i, err)
		}
		script, err := c.ReadSlice(int(scriptLen))
		if err != nil {
			return Transaction{}, fmt.Errorf("input %d script: %w", i, err)
		}
		sequence, err := c.ReadU32LE()
		if err != nil {
			return Transaction{}, fmt.Errorf("input %d sequence: %w", i, err)
		}
		inputs[i] = TransactionInput{
			PrevHash:  prevHash,
			PrevIndex: prevIndex,
			Script:    script,
			Sequence:  sequence,
		}
	}
	inputsEnd := c.Pos()

	outputsStart := c.Pos()
	outCount, err := c.ReadVarInt()
	if err != nil {
		return Transaction{}, fmt.Errorf("output count: %w", err)
	}
	outputs := make([]TransactionOutput, outCount)
	for i := range outputs {
		value, err := c.ReadU64LE()
		if err != nil {
			return Transaction{}, fmt.Errorf("output %d value: %w", i, err)
		}
		scriptLen, err := c.ReadVarInt()
		if err != nil {
			return Transaction{}, fmt.Errorf("output %d script length: %w", i, err)
		}
		script, err := c.ReadSlice(int(scriptLen))
		if err != nil {
			return Transaction{}, fmt.Errorf("output %d script: %w", i, err)
		}
		outputs[i] = TransactionOutput{Value: value, Script: script}
	}
	outputsEnd := c.Pos()

	if hasWitness {
		for i := range inputs {
			itemCount, err := c.ReadVarInt()
			if err != nil {
				return Transaction{}, fmt.Errorf("input %d witness count: %w", i, err)
			}
			for j := uint64(0); j < itemCount; j++ {
				itemLen, err := c.ReadVarInt()
				if err != nil {
					return Transaction{}, fmt.Errorf("input %d witness item %d length: %w", i, j, err)
				}
				if _, err := c.ReadSlice(int(itemLen)); err != nil {
					return Transaction{}, fmt.Errorf("input %d witness item %d: %w", i, j, err)
				}
			}
		}
	}

	lockTimeBytes, err := c.ReadSlice(4)
	if err != nil {
		return Transaction{}, fmt.Errorf("locktime: %w", err)
	}
	lockTime := uint32(lockTimeBytes[0]) | uint32(lockTimeBytes[1])<<8 | uint32(lockTimeBytes[2])<<16 | uint32(lockTimeBytes[3])<<24

	preimage := make([]byte, 0, 4+(inputsEnd-inputsStart)+(outputsEnd-outputsStart)+4)
	preimage = append(preimage, verBytes...)
	preimage = append(preimage, c.Bytes()[inputsStart:inputsEnd]...)
	preimage = append(preimage, c.Bytes()[outputsStart:outputsEnd]...)
	preimage = append(preimage, lockTimeBytes...)

	return Transaction{
		Version:  version,
		Inputs:   inputs,
		Outputs:  outputs,
		LockTime: lockTime,
		txid:     chainhash.DoubleHashH(preimage),
	}, nil
}
