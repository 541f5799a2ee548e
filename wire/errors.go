// Copyright (c) 2013-2024 The btcsuite developers
// Copyright (c) 2025 The blockwalk developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "errors"

// ErrEOF is returned whenever a read runs off the end of the supplied
// buffer before the structure being parsed was complete.
var ErrEOF = errors.New("wire: unexpected end of buffer")

// ErrInvalidMagic is returned when a block record's magic value is neither
// the expected network magic nor the zero value used to mark a clean
// end of file.
var ErrInvalidMagic = errors.New("wire: invalid block magic")
