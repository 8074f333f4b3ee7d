// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// HeightIndexTests is a list of all HeightIndex tests
var HeightIndexTests = map[string]func(t *testing.T, db HeightIndex){
	"PutGet":           TestHeightIndexPutGet,
	"Overwrite":        TestHeightIndexOverwrite,
	"Delete":           TestHeightIndexDelete,
	"IteratorOrder":    TestHeightIndexIteratorOrder,
	"IteratorSnapshot": TestHeightIndexIteratorSnapshot,
	"Closed":           TestHeightIndexClosed,
}

func TestHeightIndexPutGet(t *testing.T, db HeightIndex) {
	require := require.New(t)

	has, err := db.Has(0)
	require.NoError(err)
	require.False(has)

	_, err = db.Get(0)
	require.ErrorIs(err, ErrNotFound)

	require.NoError(db.Put(0, []byte("genesis")))

	has, err = db.Has(0)
	require.NoError(err)
	require.True(has)

	value, err := db.Get(0)
	require.NoError(err)
	require.Equal([]byte("genesis"), value)

	_, err = db.Get(1)
	require.ErrorIs(err, ErrNotFound)
}

func TestHeightIndexOverwrite(t *testing.T, db HeightIndex) {
	require := require.New(t)

	require.NoError(db.Put(7, []byte("first")))
	require.NoError(db.Put(7, []byte("second")))

	value, err := db.Get(7)
	require.NoError(err)
	require.Equal([]byte("second"), value)

	count, err := CountHeights(db)
	require.NoError(err)
	require.Equal(uint64(1), count)
}

func TestHeightIndexDelete(t *testing.T, db HeightIndex) {
	require := require.New(t)

	require.NoError(db.Delete(3))
	require.NoError(db.Put(3, []byte("value")))
	require.NoError(db.Delete(3))

	has, err := db.Has(3)
	require.NoError(err)
	require.False(has)
}

// TestHeightIndexIteratorOrder tests that heights are iterated numerically,
// not in the order they were written.
func TestHeightIndexIteratorOrder(t *testing.T, db HeightIndex) {
	require := require.New(t)

	heights := []uint64{256, 0, 1 << 40, 2, 255, 1}
	for _, height := range heights {
		require.NoError(db.Put(height, PackUInt64(height)))
	}

	iterator := db.NewHeightIterator()
	defer iterator.Release()

	var got []uint64
	for iterator.Next() {
		height := iterator.Height()
		require.Equal(PackUInt64(height), iterator.Value())
		got = append(got, height)
	}
	require.NoError(iterator.Error())
	require.Equal([]uint64{0, 1, 2, 255, 256, 1 << 40}, got)
}

func TestHeightIndexIteratorSnapshot(t *testing.T, db HeightIndex) {
	require := require.New(t)

	require.NoError(db.Put(0, []byte("zero")))

	iterator := db.NewHeightIterator()
	defer iterator.Release()

	require.NoError(db.Put(1, []byte("one")))

	require.True(iterator.Next())
	require.Zero(iterator.Height())
	require.False(iterator.Next())
	require.NoError(iterator.Error())
}

func TestHeightIndexClosed(t *testing.T, db HeightIndex) {
	require := require.New(t)

	require.NoError(db.Put(0, []byte("zero")))
	require.NoError(db.Close())

	_, err := db.Get(0)
	require.ErrorIs(err, ErrClosed)
	require.ErrorIs(db.Put(1, nil), ErrClosed)

	iterator := db.NewHeightIterator()
	defer iterator.Release()

	require.False(iterator.Next())
	require.ErrorIs(iterator.Error(), ErrClosed)
}
