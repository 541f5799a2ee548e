// Copyright (c) 2025 The blockwalk developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/satoshigraph/blockwalk/visitor"
	"github.com/satoshigraph/blockwalk/wire"
)

// Stats summarizes one completed traversal.
type Stats struct {
	// Height is the number of blocks actually emitted to the visitor.
	Height uint64

	// Tip is the walker's final goalPrevHash: the cur-hash of the block
	// left in lastBlock at the end of the traversal when one is held
	// (that block is never emitted, §5.3), otherwise the cur-hash of the
	// last emitted block.
	Tip chainhash.Hash
}

// walkState is the chain-reconciliation walker's persistent state,
// threaded across every block file in a traversal.
type walkState[O any] struct {
	goalPrevHash chainhash.Hash
	lastBlock    *wire.Block
	height       uint64
	skipped      map[chainhash.Hash]wire.Block
	outputItems  map[chainhash.Hash][]*O
}

func newWalkState[O any]() *walkState[O] {
	return &walkState[O]{
		skipped:     make(map[chainhash.Hash]wire.Block),
		outputItems: make(map[chainhash.Hash][]*O),
	}
}

// Walk drives v across every block file bc holds, in file order, using
// the chain-reconciliation algorithm described in the design: blocks are
// delivered to v in ascending height order regardless of the order they
// appear on disk, with out-of-order and briefly-forked blocks buffered
// until their parent (or a winning sibling) is known.
func Walk[B, T, O, D any](bc *BlockChain, v visitor.Visitor[B, T, O, D]) (Stats, D, error) {
	state := newWalkState[O]()

	for i, m := range bc.maps {
		if err := walkSlice(v, state, []byte(m)); err != nil {
			var zero D
			return Stats{}, zero, fmt.Errorf("walking file %d: %w", i, err)
		}
	}

	done := v.Done()
	return Stats{Height: state.height, Tip: state.goalPrevHash}, done, nil
}

// walkSlice frames and emits every resolvable block in data, updating
// state in place. State persists across calls so blocks deferred in one
// file can be resolved by a parent appearing in a later one.
func walkSlice[B, T, O, D any](v visitor.Visitor[B, T, O, D], state *walkState[O], data []byte) error {
	cur := wire.NewCursor(data)

	for {
		if err := drainSkipped(v, state); err != nil {
			return err
		}

		block, ok, err := wire.ReadBlock(cur)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		header := block.Header()
		if header.PrevHash() != state.goalPrevHash {
			state.skipped[header.PrevHash()] = block

			if state.lastBlock != nil && state.lastBlock.Header().PrevHash() == header.PrevHash() {
				if err := resolveSplit(cur, state, *state.lastBlock, block); err != nil {
					return err
				}
			}
			continue
		}

		if state.lastBlock != nil {
			if err := emitBlock(v, state, *state.lastBlock, state.height); err != nil {
				return err
			}
			state.height++
		}
		b := block
		state.lastBlock = &b
		state.goalPrevHash = header.CurHash()
	}
}

// drainSkipped does nothing unless the skipped table holds a child of
// goalPrevHash. When it does, it flushes the deferred lastBlock (if any)
// and then walks the skipped table forward from goalPrevHash for as long
// as each next child is already known, advancing height and goalPrevHash
// as it goes.
func drainSkipped[B, T, O, D any](v visitor.Visitor[B, T, O, D], state *walkState[O]) error {
	for {
		child, ok := state.skipped[state.goalPrevHash]
		if !ok {
			return nil
		}

		if state.lastBlock != nil {
			if err := emitBlock(v, state, *state.lastBlock, state.height); err != nil {
				return err
			}
			state.height++
			state.lastBlock = nil
		}

		delete(state.skipped, state.goalPrevHash)
		if err := emitBlock(v, state, child, state.height); err != nil {
			return err
		}
		state.height++
		state.goalPrevHash = child.Header().CurHash()
	}
}

// resolveSplit handles a two-way fork at the current tip: first and
// second both extend the same parent. It reads ahead, adding every block
// it sees to the skipped table, until one side is cited as a parent by a
// new block — that side wins and becomes the new lastBlock. Running out
// of blocks in this file without resolving leaves first as lastBlock and
// goalPrevHash at first's hash: a later child of first (possibly in a
// later file) is picked up by the next drain, while a later child of
// second stays in the skipped table and does not switch the chain.
func resolveSplit[O any](cur *wire.Cursor, state *walkState[O], first, second wire.Block) error {
	firstHash := first.Header().CurHash()
	secondHash := second.Header().CurHash()

	for {
		candidate, ok, err := wire.ReadBlock(cur)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		parent := candidate.Header().PrevHash()
		state.skipped[parent] = candidate

		switch parent {
		case firstHash:
			return nil
		case secondHash:
			b := second
			state.lastBlock = &b
			state.goalPrevHash = secondHash
			return nil
		}
	}
}

// emitBlock expands one block into the visitor's callback sequence (§5.4
// of the design): block begin, then for every transaction, begin,
// inputs (each looking up and removing the output item it spends),
// outputs (each possibly producing a new output item), end, then block
// end.
func emitBlock[B, T, O, D any](v visitor.Visitor[B, T, O, D], state *walkState[O], block wire.Block, height uint64) error {
	header := block.Header()
	blockItem := v.VisitBlockBegin(header, height)

	txs, err := block.Transactions()
	if err != nil {
		return fmt.Errorf("block at height %d: %w", height, err)
	}

	for _, tx := range txs {
		txItem := v.VisitTransactionBegin(blockItem)

		for _, in := range tx.Inputs {
			var spent *O
			if entries, ok := state.outputItems[in.PrevHash]; ok && int(in.PrevIndex) < len(entries) {
				spent = entries[in.PrevIndex]
				entries[in.PrevIndex] = nil
			}
			v.VisitTransactionInput(in, blockItem, txItem, spent)
		}

		outputs := make([]*O, len(tx.Outputs))
		for i, out := range tx.Outputs {
			outputs[i] = v.VisitTransactionOutput(out, i, blockItem, txItem)
		}
		state.outputItems[tx.Txid()] = outputs

		v.VisitTransactionEnd(tx, blockItem, txItem)
	}

	v.VisitBlockEnd(header, height, blockItem)
	return nil
}
