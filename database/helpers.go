// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package database

import (
	"encoding/binary"
	"errors"
)

const Uint64Size = 8 // bytes

var ErrWrongSize = errors.New("value has unexpected size")

// PackUInt64 encodes [val] big-endian, so packed values sort in numeric order.
func PackUInt64(val uint64) []byte {
	bytes := make([]byte, Uint64Size)
	binary.BigEndian.PutUint64(bytes, val)
	return bytes
}

func ParseUInt64(b []byte) (uint64, error) {
	if len(b) != Uint64Size {
		return 0, ErrWrongSize
	}
	return binary.BigEndian.Uint64(b), nil
}

// CountHeights returns the number of heights stored in [db].
func CountHeights(db HeightIndex) (uint64, error) {
	iterator := db.NewHeightIterator()
	defer iterator.Release()

	var count uint64
	for iterator.Next() {
		count++
	}
	return count, iterator.Error()
}
