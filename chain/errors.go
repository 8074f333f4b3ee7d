// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "errors"

var (
	// ErrNotFound is returned when no block is stored at the requested height.
	ErrNotFound = errors.New("chain: block not found")
	// ErrChainCorrupt is returned by Append when the block below the next
	// height is missing or unreadable, or when the next height is already
	// occupied. The store must be repaired out of band.
	ErrChainCorrupt = errors.New("chain: corrupt chain")
	// ErrStore wraps every failure of the underlying store, and failures to
	// encode a block.
	ErrStore = errors.New("chain: store failure")
	// ErrMalformedBlock is returned when stored bytes do not decode into a
	// block.
	ErrMalformedBlock = errors.New("chain: malformed block")
)
