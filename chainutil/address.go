// Copyright (c) 2013-2024 The btcsuite developers
// Copyright (c) 2025 The blockwalk developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainutil

import (
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/satoshigraph/blockwalk/chaincfg"
)

// witnessVersion0 is the only witness version this module ever encodes;
// it covers P2WPKH and P2WSH, the two segwit templates the clusterizer
// projects to addresses.
const witnessVersion0 = 0

// Address is an opaque, comparable identifier for a bitcoin output
// script, encoded in its canonical textual form (Base58Check or Bech32).
// Two addresses are equal iff their textual forms are equal.
type Address struct {
	encoded string
}

// String returns the address's canonical textual form.
func (a Address) String() string {
	return a.encoded
}

// NewAddressPubKeyHash encodes a pay-to-pubkey-hash address from a 20-byte
// hash160.
func NewAddressPubKeyHash(hash160 [20]byte, params *chaincfg.Params) Address {
	return Address{encoded: base58.CheckEncode(hash160[:], params.PubKeyHashAddrID)}
}

// NewAddressScriptHash encodes a pay-to-script-hash address from a
// 20-byte hash160.
func NewAddressScriptHash(hash160 [20]byte, params *chaincfg.Params) Address {
	return Address{encoded: base58.CheckEncode(hash160[:], params.ScriptHashAddrID)}
}

// NewAddressWitnessPubKeyHash encodes a P2WPKH segwit address from its
// 20-byte witness program.
func NewAddressWitnessPubKeyHash(program []byte, params *chaincfg.Params) (Address, error) {
	return encodeSegwitAddress(params.Bech32HRPSegwit, program)
}

// NewAddressWitnessScriptHash encodes a P2WSH segwit address from its
// 32-byte witness program.
func NewAddressWitnessScriptHash(program []byte, params *chaincfg.Params) (Address, error) {
	return encodeSegwitAddress(params.Bech32HRPSegwit, program)
}

func encodeSegwitAddress(hrp string, program []byte) (Address, error) {
	converted, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return Address{}, err
	}

	combined := make([]byte, 0, len(converted)+1)
	combined = append(combined, witnessVersion0)
	combined = append(combined, converted...)

	encoded, err := bech32.Encode(hrp, combined)
	if err != nil {
		return Address{}, err
	}
	return Address{encoded: encoded}, nil
}
