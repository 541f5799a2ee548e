// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2025 The blockwalk developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/satoshigraph/blockwalk/blockchain"
	"github.com/satoshigraph/blockwalk/chainutil"
	"github.com/satoshigraph/blockwalk/clusterizer"
)

// appVersion is the semantic version reported by --version.
const appVersion = "0.1.0"

func version() string {
	return appVersion
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := loadConfig()
	if err != nil {
		return 1
	}

	if err := initLogging(cfg.LogFile, cfg.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
		return 1
	}

	out := os.Stdout
	if cfg.Out != "" {
		f, err := os.Create(cfg.Out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create output file: %v\n", err)
			return 1
		}
		defer f.Close()
		out = f
	}

	bc, err := blockchain.Open(cfg.BlocksDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open blocks directory: %v\n", err)
		return 1
	}
	defer bc.Close()

	cz := clusterizer.New(out)

	stats, summary, err := blockchain.Walk[
		clusterizer.BlockItem, clusterizer.TxItem, chainutil.Address, clusterizer.Summary,
	](bc, cz)
	if err != nil {
		fmt.Fprintf(os.Stderr, "traversal failed: %v\n", err)
		return 1
	}

	fmt.Fprintf(os.Stderr, "walked %d blocks, tip %s\n", stats.Height, stats.Tip)
	fmt.Fprintf(os.Stderr, "wrote %d addresses (%d bytes)\n", summary.Addresses, summary.Bytes)
	return 0
}
