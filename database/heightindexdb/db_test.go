// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package heightindexdb

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hashchain/database"
	"github.com/ava-labs/hashchain/database/leveldb"
	"github.com/ava-labs/hashchain/database/memdb"
	"github.com/ava-labs/hashchain/database/pebbledb"
	"github.com/ava-labs/hashchain/database/prefixdb"
	"github.com/ava-labs/hashchain/utils/logging"
)

func TestInterface(t *testing.T) {
	backends := map[string]func(t *testing.T) database.Database{
		memdb.Name: func(*testing.T) database.Database {
			return memdb.New()
		},
		leveldb.Name: func(t *testing.T) database.Database {
			db, err := leveldb.New(t.TempDir(), nil, logging.NoLog{})
			require.NoError(t, err)
			return db
		},
		pebbledb.Name: func(t *testing.T) database.Database {
			db, err := pebbledb.New(t.TempDir(), []byte(`{"cacheSize":1048576}`), logging.NoLog{})
			require.NoError(t, err)
			return db
		},
		"prefixdb": func(*testing.T) database.Database {
			return prefixdb.New([]byte("chain"), memdb.New())
		},
	}
	for backendName, newDB := range backends {
		for testName, test := range database.HeightIndexTests {
			t.Run(backendName+"/"+testName, func(t *testing.T) {
				db := New(newDB(t))
				test(t, db)

				// The database may have been closed by the test, so we don't care
				// if it errors here.
				_ = db.Close()
			})
		}
	}
}

func TestIteratorRejectsForeignKeys(t *testing.T) {
	require := require.New(t)

	base := memdb.New()
	db := New(base)
	require.NoError(db.Put(0, []byte("zero")))
	require.NoError(base.Put([]byte("not a height"), []byte("value")))

	it := db.NewHeightIterator()
	defer it.Release()

	require.True(it.Next())
	require.Zero(it.Height())
	require.False(it.Next())
	require.ErrorIs(it.Error(), database.ErrWrongSize)
	require.False(it.Next())
}
