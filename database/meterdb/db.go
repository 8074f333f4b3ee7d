// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package meterdb

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/hashchain/database"
	"github.com/ava-labs/hashchain/utils/wrappers"
)

const methodLabel = "method"

var (
	_ database.Database = (*Database)(nil)
	_ database.Iterator = (*iterator)(nil)

	methodLabels = []string{methodLabel}
	hasLabel     = prometheus.Labels{
		methodLabel: "has",
	}
	getLabel = prometheus.Labels{
		methodLabel: "get",
	}
	putLabel = prometheus.Labels{
		methodLabel: "put",
	}
	deleteLabel = prometheus.Labels{
		methodLabel: "delete",
	}
	newIteratorLabel = prometheus.Labels{
		methodLabel: "new_iterator",
	}
	closeLabel = prometheus.Labels{
		methodLabel: "close",
	}
	iNextLabel = prometheus.Labels{
		methodLabel: "iterator_next",
	}
	iErrorLabel = prometheus.Labels{
		methodLabel: "iterator_error",
	}
	iKeyLabel = prometheus.Labels{
		methodLabel: "iterator_key",
	}
	iValueLabel = prometheus.Labels{
		methodLabel: "iterator_value",
	}
	iReleaseLabel = prometheus.Labels{
		methodLabel: "iterator_release",
	}
)

// Database tracks the amount of time each operation takes and how many bytes
// are read/written to the underlying database instance.
type Database struct {
	db database.Database

	calls    *prometheus.CounterVec
	duration *prometheus.CounterVec
	size     *prometheus.CounterVec
}

// New returns a new database with added metrics
func New(
	reg prometheus.Registerer,
	db database.Database,
) (*Database, error) {
	meterDB := &Database{
		db: db,
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calls",
				Help: "number of calls to the database",
			},
			methodLabels,
		),
		duration: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "duration",
				Help: "time spent in database calls (ns)",
			},
			methodLabels,
		),
		size: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "size",
				Help: "size of data passed in database calls",
			},
			methodLabels,
		),
	}

	errs := wrappers.Errs{}
	errs.Add(
		reg.Register(meterDB.calls),
		reg.Register(meterDB.duration),
		reg.Register(meterDB.size),
	)
	return meterDB, errs.Err
}

func (db *Database) Has(key []byte) (bool, error) {
	start := time.Now()
	has, err := db.db.Has(key)
	db.observe(hasLabel, start, len(key))
	return has, err
}

func (db *Database) Get(key []byte) ([]byte, error) {
	start := time.Now()
	value, err := db.db.Get(key)
	db.observe(getLabel, start, len(key)+len(value))
	return value, err
}

func (db *Database) Put(key, value []byte) error {
	start := time.Now()
	err := db.db.Put(key, value)
	db.observe(putLabel, start, len(key)+len(value))
	return err
}

func (db *Database) Delete(key []byte) error {
	start := time.Now()
	err := db.db.Delete(key)
	db.observe(deleteLabel, start, len(key))
	return err
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

func (db *Database) NewIteratorWithStartAndPrefix(
	start,
	prefix []byte,
) database.Iterator {
	startTime := time.Now()
	it := &iterator{
		db:       db,
		iterator: db.db.NewIteratorWithStartAndPrefix(start, prefix),
	}
	db.observe(newIteratorLabel, startTime, len(start)+len(prefix))
	return it
}

func (db *Database) Close() error {
	start := time.Now()
	err := db.db.Close()
	db.observe(closeLabel, start, 0)
	return err
}

func (db *Database) observe(labels prometheus.Labels, start time.Time, size int) {
	duration := time.Since(start)
	db.calls.With(labels).Inc()
	db.duration.With(labels).Add(float64(duration))
	if size > 0 {
		db.size.With(labels).Add(float64(size))
	}
}

type iterator struct {
	db       *Database
	iterator database.Iterator
}

func (it *iterator) Next() bool {
	start := time.Now()
	next := it.iterator.Next()
	it.db.observe(iNextLabel, start, 0)
	return next
}

func (it *iterator) Error() error {
	start := time.Now()
	err := it.iterator.Error()
	it.db.observe(iErrorLabel, start, 0)
	return err
}

func (it *iterator) Key() []byte {
	start := time.Now()
	key := it.iterator.Key()
	it.db.observe(iKeyLabel, start, len(key))
	return key
}

func (it *iterator) Value() []byte {
	start := time.Now()
	value := it.iterator.Value()
	it.db.observe(iValueLabel, start, len(value))
	return value
}

func (it *iterator) Release() {
	start := time.Now()
	it.iterator.Release()
	it.db.observe(iReleaseLabel, start, 0)
}
