// Copyright (c) 2013-2024 The btcsuite developers
// Copyright (c) 2025 The blockwalk developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"github.com/btcsuite/btcd/btcutil"
	btcdchaincfg "github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// Kind enumerates the locking-script templates this module distinguishes.
// It mirrors the spec's HighLevel sum type: every other template
// collapses to Other.
type Kind int

const (
	PayToPubkey Kind = iota
	PayToPubkeyHash
	PayToScriptHash
	PayToWitnessPubkeyHash
	PayToWitnessScriptHash
	OpReturn
	Other
)

// HighLevel is the classification of a single locking script, carrying
// just enough payload to build an address: a 20-byte hash160 for the
// Base58Check templates, or a witness program for the segwit ones.
type HighLevel struct {
	Kind           Kind
	Hash160        [20]byte
	WitnessProgram []byte
}

// Classify inspects a locking script and returns its HighLevel
// classification. Scripts that don't match any of the recognized
// templates, or that txscript cannot uniquely attribute to a single
// address, classify as Other.
func Classify(pkScript []byte) HighLevel {
	class := txscript.GetScriptClass(pkScript)
	if class == txscript.NullDataTy {
		return HighLevel{Kind: OpReturn}
	}

	_, addrs, _, err := txscript.ExtractPkScriptAddrs(pkScript, &btcdchaincfg.MainNetParams)
	if err != nil || len(addrs) != 1 {
		return HighLevel{Kind: Other}
	}

	switch addr := addrs[0].(type) {
	case *btcutil.AddressPubKeyHash:
		var h [20]byte
		copy(h[:], addr.Hash160()[:])
		return HighLevel{Kind: PayToPubkeyHash, Hash160: h}

	case *btcutil.AddressScriptHash:
		var h [20]byte
		copy(h[:], addr.Hash160()[:])
		return HighLevel{Kind: PayToScriptHash, Hash160: h}

	case *btcutil.AddressPubKey:
		var h [20]byte
		copy(h[:], addr.AddressPubKeyHash().Hash160()[:])
		return HighLevel{Kind: PayToPubkey, Hash160: h}

	case *btcutil.AddressWitnessPubKeyHash:
		program := addr.WitnessProgram()
		return HighLevel{Kind: PayToWitnessPubkeyHash, WitnessProgram: program}

	case *btcutil.AddressWitnessScriptHash:
		program := addr.WitnessProgram()
		return HighLevel{Kind: PayToWitnessScriptHash, WitnessProgram: program}

	default:
		return HighLevel{Kind: Other}
	}
}
