// Copyright (c) 2025 The blockwalk developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package clusterizer implements the common-input address-clustering
// heuristic as a visitor.Visitor: every address spent as an input of the
// same transaction is assumed to be controlled by one entity, and is
// union-found accordingly. The result is written out as one
// address,cluster-root line per known address.
package clusterizer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/satoshigraph/blockwalk/chaincfg"
	"github.com/satoshigraph/blockwalk/chainutil"
	"github.com/satoshigraph/blockwalk/disjointset"
	"github.com/satoshigraph/blockwalk/script"
	"github.com/satoshigraph/blockwalk/wire"
)

// BlockItem and TxItem name the payload types the walker threads through
// Clusterizer's callbacks; both carry no per-block state, so BlockItem is
// empty and TxItem collects the addresses touched by one transaction's
// inputs so they can be chain-unioned at VisitTransactionEnd.
type BlockItem = struct{}
type TxItem = map[chainutil.Address]struct{}

// Summary reports the outcome of a completed traversal.
type Summary struct {
	Addresses int
	Bytes     int64
}

// Clusterizer unions addresses under the common-input heuristic and
// streams the clustering result to an io.Writer on Done.
type Clusterizer struct {
	sets   *disjointset.Set[chainutil.Address]
	out    *bufio.Writer
	params *chaincfg.Params
}

// New returns a Clusterizer that writes its result to w, classifying
// scripts against chaincfg.MainNetParams.
func New(w io.Writer) *Clusterizer {
	return &Clusterizer{
		sets:   disjointset.New[chainutil.Address](),
		out:    bufio.NewWriter(w),
		params: &chaincfg.MainNetParams,
	}
}

func (c *Clusterizer) VisitBlockBegin(header wire.BlockHeader, height uint64) BlockItem {
	return BlockItem{}
}

func (c *Clusterizer) VisitBlockEnd(header wire.BlockHeader, height uint64, item BlockItem) {}

func (c *Clusterizer) VisitTransactionBegin(blockItem BlockItem) TxItem {
	return make(TxItem, 8)
}

func (c *Clusterizer) VisitTransactionInput(input wire.TransactionInput, blockItem BlockItem, txItem TxItem, spent *chainutil.Address) {
	if input.PrevHash == (chainhash.Hash{}) {
		// coinbase: no prior owner to cluster against.
		return
	}
	if spent == nil {
		return
	}
	txItem[*spent] = struct{}{}
}

func (c *Clusterizer) VisitTransactionOutput(output wire.TransactionOutput, index int, blockItem BlockItem, txItem TxItem) *chainutil.Address {
	addr, ok := addressFromScript(output.Script, c.params)
	if !ok {
		return nil
	}
	return &addr
}

func (c *Clusterizer) VisitTransactionEnd(tx wire.Transaction, blockItem BlockItem, txItem TxItem) {
	if len(txItem) < 2 {
		return
	}

	var prev chainutil.Address
	i := 0
	for addr := range txItem {
		if i == 0 {
			c.sets.MakeSet(addr)
		} else {
			c.sets.Union(prev, addr)
		}
		prev = addr
		i++
	}
}

func (c *Clusterizer) Done() Summary {
	c.sets.Finalize()
	items := c.sets.Items()

	summary := Summary{Addresses: len(items)}
	for addr, root := range items {
		n, err := fmt.Fprintf(c.out, "%s,%d\n", addr.String(), root)
		if err != nil {
			log.Warnf("writing clustering result: %v", err)
			continue
		}
		summary.Bytes += int64(n)
	}
	if err := c.out.Flush(); err != nil {
		log.Warnf("flushing clustering result: %v", err)
	}
	return summary
}

// addressFromScript projects a highlevel script classification onto this
// module's own Address representation. Only pay-to-pubkey-hash,
// pay-to-script-hash and the two segwit templates project to an address;
// everything else (bare pay-to-pubkey included) carries no output item
// and returns ok=false.
func addressFromScript(pkScript []byte, params *chaincfg.Params) (chainutil.Address, bool) {
	hl := script.Classify(pkScript)

	switch hl.Kind {
	case script.PayToPubkeyHash:
		return chainutil.NewAddressPubKeyHash(hl.Hash160, params), true
	case script.PayToScriptHash:
		return chainutil.NewAddressScriptHash(hl.Hash160, params), true
	case script.PayToWitnessPubkeyHash:
		addr, err := chainutil.NewAddressWitnessPubKeyHash(hl.WitnessProgram, params)
		if err != nil {
			return chainutil.Address{}, false
		}
		return addr, true
	case script.PayToWitnessScriptHash:
		addr, err := chainutil.NewAddressWitnessScriptHash(hl.WitnessProgram, params)
		if err != nil {
			return chainutil.Address{}, false
		}
		return addr, true
	default:
		return chainutil.Address{}, false
	}
}
