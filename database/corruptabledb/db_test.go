// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package corruptabledb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hashchain/database"
	"github.com/ava-labs/hashchain/database/memdb"
)

var errTest = errors.New("non-nil error")

func TestInterface(t *testing.T) {
	for name, test := range database.Tests {
		t.Run(name, func(t *testing.T) {
			test(t, New(memdb.New()))
		})
	}
}

// TestCorruption tests to make sure corruptabledb wrapper works as expected.
func TestCorruption(t *testing.T) {
	key := []byte("hello")
	value := []byte("world")
	tests := map[string]func(db database.Database) error{
		"corrupted has": func(db database.Database) error {
			_, err := db.Has(key)
			return err
		},
		"corrupted get": func(db database.Database) error {
			_, err := db.Get(key)
			return err
		},
		"corrupted put": func(db database.Database) error {
			return db.Put(key, value)
		},
		"corrupted delete": func(db database.Database) error {
			return db.Delete(key)
		},
		"corrupted iterator": func(db database.Database) error {
			it := db.NewIterator()
			defer it.Release()

			require.False(t, it.Next())
			return it.Error()
		},
	}
	corruptableDB := New(memdb.New())
	_ = corruptableDB.handleError(errTest)
	for name, testFn := range tests {
		t.Run(name, func(t *testing.T) {
			err := testFn(corruptableDB)
			require.ErrorIs(t, err, errTest)
			require.ErrorIs(t, err, database.ErrAvoidCorruption)
		})
	}
}

func TestExpectedErrorsDoNotCorrupt(t *testing.T) {
	require := require.New(t)

	db := New(memdb.New())

	_, err := db.Get([]byte("missing"))
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(db.Put([]byte("key"), []byte("value")))
	require.NoError(db.Close())

	_, err = db.Get([]byte("key"))
	require.ErrorIs(err, database.ErrClosed)
	require.NoError(db.corrupted())
}
