// Copyright (c) 2013-2024 The btcsuite developers
// Copyright (c) 2025 The blockwalk developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockchain discovers a reference node's blk*.dat files, memory
// maps them, and drives the chain-reconciliation walker (§5.3 of the
// design) across their concatenated contents in on-disk order.
package blockchain

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/edsrzf/mmap-go"
)

// BlockChain holds the memory-mapped contents of every discovered block
// file, in the order they will be walked.
type BlockChain struct {
	maps []mmap.MMap
}

// Open globs blk*.dat in blocksDir, memory-maps each match read-only in
// lexicographic order, and returns the resulting BlockChain. A file that
// fails to open is logged and skipped; a file that fails to map stops
// discovery, leaving the chain walkable over the prefix that did map.
func Open(blocksDir string) (*BlockChain, error) {
	matches, err := filepath.Glob(filepath.Join(blocksDir, "blk*.dat"))
	if err != nil {
		return nil, fmt.Errorf("blockchain: globbing %s: %w", blocksDir, err)
	}
	sort.Strings(matches)

	bc := &BlockChain{maps: make([]mmap.MMap, 0, len(matches))}
	for _, path := range matches {
		f, err := os.Open(path)
		if err != nil {
			log.Warnf("skipping %s: %v", path, err)
			continue
		}

		m, err := mmap.Map(f, mmap.RDONLY, 0)
		f.Close()
		if err != nil {
			log.Warnf("stopping discovery at %s: failed to map: %v", path, err)
			break
		}
		bc.maps = append(bc.maps, m)
	}

	log.Infof("discovered %d block file(s) under %s", len(bc.maps), blocksDir)
	return bc, nil
}

// Close unmaps every block file. The BlockChain must not be walked again
// afterwards.
func (bc *BlockChain) Close() error {
	var firstErr error
	for _, m := range bc.maps {
		if err := m.Unmap(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// FileCount returns the number of block files currently mapped.
func (bc *BlockChain) FileCount() int {
	return len(bc.maps)
}
