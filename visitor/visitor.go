// Copyright (c) 2025 The blockwalk developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package visitor defines the callback protocol the chain-reconciliation
// walker drives every emitted block through. It is the Go rendering of
// the original implementation's visitor trait with associated types:
// Go generics bind the four payload types statically, so a visitor never
// has to downcast from an opaque interface value.
package visitor

import "github.com/satoshigraph/blockwalk/wire"

// Visitor receives the walker's callbacks for one full traversal. B, T
// and O are the payload types a concrete visitor attaches to a block, a
// transaction and a spendable output respectively; D is the value
// returned once traversal completes.
type Visitor[B, T, O, D any] interface {
	// VisitBlockBegin is called once a block has been selected for
	// emission, before any of its transactions are visited.
	VisitBlockBegin(header wire.BlockHeader, height uint64) B

	// VisitBlockEnd is called after every transaction in the block has
	// been visited.
	VisitBlockEnd(header wire.BlockHeader, height uint64, item B)

	// VisitTransactionBegin is called before a transaction's inputs and
	// outputs are visited.
	VisitTransactionBegin(blockItem B) T

	// VisitTransactionInput is called once per input, after the walker
	// has looked up (and removed) the output item the input spends, if
	// any. spent is nil for a coinbase input or for an output that was
	// never assigned a payload.
	VisitTransactionInput(input wire.TransactionInput, blockItem B, txItem T, spent *O)

	// VisitTransactionOutput is called once per output, in order. A
	// non-nil return value is stored in the output-items table, keyed by
	// this transaction's txid and the output's index, until it is spent
	// or traversal ends.
	VisitTransactionOutput(output wire.TransactionOutput, index int, blockItem B, txItem T) *O

	// VisitTransactionEnd is called after every input and output of the
	// transaction has been visited.
	VisitTransactionEnd(tx wire.Transaction, blockItem B, txItem T)

	// Done is called exactly once, after every block file has been
	// walked.
	Done() D
}
