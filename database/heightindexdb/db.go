// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package heightindexdb

import (
	"fmt"

	"github.com/ava-labs/hashchain/database"
)

var (
	_ database.HeightIndex    = (*Database)(nil)
	_ database.HeightIterator = (*iterator)(nil)
)

// Database stores each height under its 8 byte big-endian encoding, so the
// underlying key order matches numeric height order.
//
// The wrapped database must not contain keys other than the ones written
// through this adapter. A foreign key fails iteration with
// [database.ErrWrongSize].
type Database struct {
	db database.Database
}

func New(db database.Database) *Database {
	return &Database{db: db}
}

func (db *Database) Put(height uint64, value []byte) error {
	return db.db.Put(database.PackUInt64(height), value)
}

func (db *Database) Get(height uint64) ([]byte, error) {
	return db.db.Get(database.PackUInt64(height))
}

func (db *Database) Has(height uint64) (bool, error) {
	return db.db.Has(database.PackUInt64(height))
}

func (db *Database) Delete(height uint64) error {
	return db.db.Delete(database.PackUInt64(height))
}

func (db *Database) NewHeightIterator() database.HeightIterator {
	return &iterator{
		it: db.db.NewIterator(),
	}
}

// Close closes the wrapped database.
func (db *Database) Close() error {
	return db.db.Close()
}

type iterator struct {
	it     database.Iterator
	height uint64
	err    error
}

func (i *iterator) Next() bool {
	if i.err != nil {
		return false
	}
	if !i.it.Next() {
		return false
	}

	key := i.it.Key()
	height, err := database.ParseUInt64(key)
	if err != nil {
		i.err = fmt.Errorf("%w: key %x is not a height", err, key)
		return false
	}
	i.height = height
	return true
}

func (i *iterator) Error() error {
	if i.err != nil {
		return i.err
	}
	return i.it.Error()
}

func (i *iterator) Height() uint64 {
	return i.height
}

func (i *iterator) Value() []byte {
	return i.it.Value()
}

func (i *iterator) Release() {
	i.it.Release()
}
