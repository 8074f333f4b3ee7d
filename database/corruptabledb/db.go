// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package corruptabledb

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ava-labs/hashchain/database"
)

var (
	_ database.Database = (*Database)(nil)
	_ database.Iterator = (*iterator)(nil)
)

// Database is a wrapper around Database that prevents any future calls once an
// unexpected error has occurred.
type Database struct {
	database.Database

	// initialError stores the error other than "not found" or "closed" that
	// was first returned by the underlying database. Once set, Has, Get, Put,
	// Delete and new iterators fail with this error.
	initialError     error
	initialErrorLock sync.RWMutex
}

func New(db database.Database) *Database {
	return &Database{Database: db}
}

// Has returns if the key is set in the database
func (db *Database) Has(key []byte) (bool, error) {
	if err := db.corrupted(); err != nil {
		return false, err
	}
	has, err := db.Database.Has(key)
	return has, db.handleError(err)
}

// Get returns the value the key maps to in the database
func (db *Database) Get(key []byte) ([]byte, error) {
	if err := db.corrupted(); err != nil {
		return nil, err
	}
	value, err := db.Database.Get(key)
	return value, db.handleError(err)
}

// Put sets the value of the provided key to the provided value
func (db *Database) Put(key []byte, value []byte) error {
	if err := db.corrupted(); err != nil {
		return err
	}
	return db.handleError(db.Database.Put(key, value))
}

// Delete removes the key from the database
func (db *Database) Delete(key []byte) error {
	if err := db.corrupted(); err != nil {
		return err
	}
	return db.handleError(db.Database.Delete(key))
}

func (db *Database) Close() error {
	return db.handleError(db.Database.Close())
}

func (db *Database) NewIterator() database.Iterator {
	return db.NewIteratorWithStartAndPrefix(nil, nil)
}

func (db *Database) NewIteratorWithStart(start []byte) database.Iterator {
	return db.NewIteratorWithStartAndPrefix(start, nil)
}

func (db *Database) NewIteratorWithPrefix(prefix []byte) database.Iterator {
	return db.NewIteratorWithStartAndPrefix(nil, prefix)
}

func (db *Database) NewIteratorWithStartAndPrefix(start, prefix []byte) database.Iterator {
	if err := db.corrupted(); err != nil {
		return &database.IteratorError{
			Err: err,
		}
	}
	return &iterator{
		Iterator: db.Database.NewIteratorWithStartAndPrefix(start, prefix),
		db:       db,
	}
}

func (db *Database) corrupted() error {
	db.initialErrorLock.RLock()
	defer db.initialErrorLock.RUnlock()

	return db.initialError
}

func (db *Database) handleError(err error) error {
	switch {
	case err == nil, errors.Is(err, database.ErrNotFound), errors.Is(err, database.ErrClosed):
	// If we get an error other than "not found" or "closed", disallow future
	// database operations to avoid possible corruption
	default:
		db.initialErrorLock.Lock()
		defer db.initialErrorLock.Unlock()

		if db.initialError == nil {
			db.initialError = fmt.Errorf("%w: %w", database.ErrAvoidCorruption, err)
		}
	}
	return err
}

type iterator struct {
	database.Iterator
	db *Database
}

func (it *iterator) Error() error {
	return it.db.handleError(it.Iterator.Error())
}
