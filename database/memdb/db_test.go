// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memdb

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hashchain/database"
)

func TestInterface(t *testing.T) {
	for name, test := range database.Tests {
		t.Run(name, func(t *testing.T) {
			test(t, New())
		})
	}
}

func TestCopy(t *testing.T) {
	require := require.New(t)

	db := New()
	require.NoError(db.Put([]byte("key"), []byte("value")))

	dbCopy, err := Copy(db)
	require.NoError(err)

	// Writes to the original must not leak into the copy
	require.NoError(db.Put([]byte("key"), []byte("changed")))

	value, err := dbCopy.Get([]byte("key"))
	require.NoError(err)
	require.Equal([]byte("value"), value)
}

func TestCopyClosed(t *testing.T) {
	db := New()
	require.NoError(t, db.Close())

	_, err := Copy(db)
	require.ErrorIs(t, err, database.ErrClosed)
}

func TestIteratorSkipsKeysBeforePrefix(t *testing.T) {
	require := require.New(t)

	db := New()
	for _, key := range []string{"a", "b1", "b2", "c"} {
		require.NoError(db.Put([]byte(key), []byte(key)))
	}

	iterator := db.NewIteratorWithStartAndPrefix([]byte("a"), []byte("b"))
	defer iterator.Release()

	var keys []string
	for iterator.Next() {
		keys = append(keys, string(iterator.Key()))
	}
	require.NoError(iterator.Error())
	require.Equal([]string{"b1", "b2"}, keys)
}
