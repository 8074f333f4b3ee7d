// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package database

import "io"

//go:generate mockgen -package=${GOPACKAGE}mock -destination=${GOPACKAGE}mock/height_index.go -mock_names=HeightIndex=HeightIndex,HeightIterator=HeightIterator . HeightIndex,HeightIterator

// HeightIndex is a key-value store keyed by block height.
//
// It is the storage contract of a chain: every block is written under its
// own height and nothing else is stored in it.
type HeightIndex interface {
	// Put writes [value] at [height], overwriting any existing value.
	Put(height uint64, value []byte) error

	// Get returns the value stored at [height].
	// Returns ErrNotFound if nothing is stored at [height].
	Get(height uint64) ([]byte, error)

	// Has returns true if a value is stored at [height].
	Has(height uint64) (bool, error)

	// Delete removes the value stored at [height], if any.
	Delete(height uint64) error

	// NewHeightIterator returns an iterator over every stored height in
	// increasing order. The iterator reads a consistent view of the keys
	// present when it was created.
	NewHeightIterator() HeightIterator

	io.Closer
}

// HeightIterator iterates over the heights of a HeightIndex in increasing
// order.
//
// Like Iterator, it must be released after use and is not safe for
// concurrent use.
type HeightIterator interface {
	// Next moves the iterator to the next stored height.
	Next() bool

	// Error returns any accumulated error.
	Error() error

	// Height returns the current height. Undefined if Next returned false.
	Height() uint64

	// Value returns the value stored at the current height.
	Value() []byte

	// Release releases associated resources.
	Release()
}
