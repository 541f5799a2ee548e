// Copyright (c) 2013-2024 The btcsuite developers
// Copyright (c) 2025 The blockwalk developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "fmt"

// BitcoinNet represents which bitcoin network a block file belongs to,
// identified by the magic value prefixing every block record.
type BitcoinNet uint32

// Constants used to identify the network a block record belongs to. Only
// MainNet is ever parsed by this package; the others are listed for
// completeness and error reporting.
const (
	// MainNet represents the main bitcoin network.
	MainNet BitcoinNet = 0xd9b4bef9

	// TestNet3 represents the test network (version 3).
	TestNet3 BitcoinNet = 0x0709110b

	// RegTest represents the regression test network.
	RegTest BitcoinNet = 0xdab5bffa
)

var netStrings = map[BitcoinNet]string{
	MainNet:  "MainNet",
	TestNet3: "TestNet3",
	RegTest:  "RegTest",
}

// String returns the BitcoinNet in human-readable form.
func (n BitcoinNet) String() string {
	if s, ok := netStrings[n]; ok {
		return s
	}
	return fmt.Sprintf("Unknown BitcoinNet (0x%08x)", uint32(n))
}
