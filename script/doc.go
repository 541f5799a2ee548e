// Copyright (c) 2013-2024 The btcsuite developers
// Copyright (c) 2025 The blockwalk developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package script classifies a bitcoin locking script into the handful of
templates the clusterizer cares about for address projection.

Script execution and opcode-level parsing are delegated entirely to
github.com/btcsuite/btcd/txscript; this package only narrows its result
down to the HighLevel sum type and the raw hash/program bytes needed to
build an address.
*/
package script
