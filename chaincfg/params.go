// Copyright (c) 2014-2024 The btcsuite developers
// Copyright (c) 2025 The blockwalk developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the network parameters this module needs to
// frame block files and encode addresses for Bitcoin mainnet.
package chaincfg

import "github.com/satoshigraph/blockwalk/wire"

// Params groups the network-specific constants a traversal needs: the
// block-file magic value and the address version/HRP bytes used to
// project a locking script to a textual address.
type Params struct {
	// Name is a human-readable identifier for the network.
	Name string

	// Net is the magic value prefixing every block record on disk.
	Net wire.BitcoinNet

	// PubKeyHashAddrID is the Base58Check version byte for P2PKH
	// addresses.
	PubKeyHashAddrID byte

	// ScriptHashAddrID is the Base58Check version byte for P2SH
	// addresses.
	ScriptHashAddrID byte

	// Bech32HRPSegwit is the human-readable part used to Bech32-encode
	// segwit addresses.
	Bech32HRPSegwit string
}

// MainNetParams defines the parameters for Bitcoin's main network. This
// is the only network this module supports; testnet/signet/regtest
// parameters are intentionally not provided.
var MainNetParams = Params{
	Name:             "mainnet",
	Net:              wire.MainNet,
	PubKeyHashAddrID: 0x00,
	ScriptHashAddrID: 0x05,
	Bech32HRPSegwit:  "bc",
}
