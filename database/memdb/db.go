// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memdb

import (
	"slices"
	"strings"
	"sync"

	"github.com/google/btree"

	"github.com/ava-labs/hashchain/database"
)

const (
	// Name is the name of this database for database switches
	Name = "memdb"

	treeDegree = 2
)

var (
	_ database.Database = (*Database)(nil)
	_ database.Iterator = (*iterator)(nil)
)

type entry struct {
	key   string
	value []byte
}

func lessEntry(a, b entry) bool {
	return a.key < b.key
}

// Database is an ephemeral key-value store that keeps its entries in key
// order.
type Database struct {
	lock sync.RWMutex
	// nil once the database is closed
	tree *btree.BTreeG[entry]
}

func New() *Database {
	return &Database{
		tree: btree.NewG(treeDegree, lessEntry),
	}
}

// Copy returns a Database with the same key-value pairs as db. Later writes to
// either database are not seen by the other.
func Copy(db *Database) (*Database, error) {
	db.lock.Lock()
	defer db.lock.Unlock()

	if db.tree == nil {
		return nil, database.ErrClosed
	}
	return &Database{tree: db.tree.Clone()}, nil
}

func (db *Database) Close() error {
	db.lock.Lock()
	defer db.lock.Unlock()

	if db.tree == nil {
		return database.ErrClosed
	}
	db.tree = nil
	return nil
}

func (db *Database) isClosed() bool {
	db.lock.RLock()
	defer db.lock.RUnlock()

	return db.tree == nil
}

func (db *Database) Has(key []byte) (bool, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.tree == nil {
		return false, database.ErrClosed
	}
	return db.tree.Has(entry{key: string(key)}), nil
}

func (db *Database) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.tree == nil {
		return nil, database.ErrClosed
	}
	e, ok := db.tree.Get(entry{key: string(key)})
	if !ok {
		return nil, database.ErrNotFound
	}
	return slices.Clone(e.value), nil
}

func (db *Database) Put(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	if db.tree == nil {
		return database.ErrClosed
	}
	// A nil value would read back as nil instead of empty.
	v := make([]byte, len(value))
	copy(v, value)
	db.tree.ReplaceOrInsert(entry{
		key:   string(key),
		value: v,
	})
	return nil
}

func (db *Database) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	if db.tree == nil {
		return database.ErrClosed
	}
	db.tree.Delete(entry{key: string(key)})
	return nil
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

// NewIteratorWithStartAndPrefix iterates over a lazy clone of the tree, so
// the iterator observes a snapshot of the database.
func (db *Database) NewIteratorWithStartAndPrefix(start, prefix []byte) database.Iterator {
	// Cloning mutates the tree's copy-on-write state.
	db.lock.Lock()
	defer db.lock.Unlock()

	if db.tree == nil {
		return &database.IteratorError{
			Err: database.ErrClosed,
		}
	}

	// Every key with the prefix is at least the prefix itself.
	pivot := max(string(start), string(prefix))
	return &iterator{
		db:     db,
		tree:   db.tree.Clone(),
		prefix: string(prefix),
		pivot:  pivot,
	}
}

type iterator struct {
	db     *Database
	tree   *btree.BTreeG[entry]
	prefix string
	// smallest key that may still be returned
	pivot   string
	current *entry
	err     error
}

func (it *iterator) Next() bool {
	// Short-circuit and set an error if the underlying database has been closed.
	if it.db.isClosed() {
		it.Release()
		it.err = database.ErrClosed
		return false
	}
	if it.tree == nil {
		return false
	}

	it.current = nil
	it.tree.AscendGreaterOrEqual(entry{key: it.pivot}, func(e entry) bool {
		if strings.HasPrefix(e.key, it.prefix) {
			it.current = &e
		}
		return false
	})
	if it.current == nil {
		it.Release()
		return false
	}
	// The smallest string greater than the current key.
	it.pivot = it.current.key + "\x00"
	return true
}

func (it *iterator) Error() error {
	return it.err
}

func (it *iterator) Key() []byte {
	if it.current == nil {
		return nil
	}
	return []byte(it.current.key)
}

func (it *iterator) Value() []byte {
	if it.current == nil {
		return nil
	}
	return slices.Clone(it.current.value)
}

func (it *iterator) Release() {
	it.tree = nil
	it.current = nil
}
