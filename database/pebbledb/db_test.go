// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebbledb

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hashchain/database"
	"github.com/ava-labs/hashchain/utils/logging"
)

func newDB(t testing.TB) *Database {
	db, err := New(t.TempDir(), []byte(`{"cacheSize":1048576}`), logging.NoLog{})
	require.NoError(t, err)
	return db
}

func TestInterface(t *testing.T) {
	for name, test := range database.Tests {
		t.Run(name, func(t *testing.T) {
			db := newDB(t)
			test(t, db)

			// The database may have been closed by the test, so we don't care if it
			// errors here.
			_ = db.Close()
		})
	}
}

func TestCloseReleasesIterators(t *testing.T) {
	require := require.New(t)

	db := newDB(t)
	require.NoError(db.Put([]byte("key"), []byte("value")))

	it := db.NewIterator()
	require.True(it.Next())
	require.NoError(db.Close())
	require.Empty(db.openIterators)

	require.False(it.Next())
	require.ErrorIs(it.Error(), database.ErrClosed)
	it.Release()
}

func TestPrefixBounds(t *testing.T) {
	tests := []struct {
		name     string
		prefix   []byte
		expected []byte
	}{
		{
			name:     "empty",
			prefix:   nil,
			expected: nil,
		},
		{
			name:     "simple",
			prefix:   []byte{1, 2, 3},
			expected: []byte{1, 2, 4},
		},
		{
			name:     "trailing max byte",
			prefix:   []byte{1, 0xFF},
			expected: []byte{2},
		},
		{
			name:     "all max bytes",
			prefix:   []byte{0xFF, 0xFF},
			expected: nil,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			bounds := prefixBounds(test.prefix)
			require.Equal(test.prefix, bounds.LowerBound)
			require.Equal(test.expected, bounds.UpperBound)
		})
	}
}
