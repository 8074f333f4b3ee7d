// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package factory

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/hashchain/database"
	"github.com/ava-labs/hashchain/database/corruptabledb"
	"github.com/ava-labs/hashchain/database/leveldb"
	"github.com/ava-labs/hashchain/database/memdb"
	"github.com/ava-labs/hashchain/database/meterdb"
	"github.com/ava-labs/hashchain/database/pebbledb"
	"github.com/ava-labs/hashchain/utils/logging"
)

// MeterDBPrefix prefixes the metrics reported by the meterdb wrapper.
const MeterDBPrefix = "db_"

type DatabaseConfig struct {
	// Path to database
	Path string `json:"path"`

	// Name of the database type to use
	Name string `json:"name"`

	// Backend specific JSON config
	Config []byte `json:"-"`
}

// NewDatabase creates a new database instance based on the provided
// configuration. It supports LevelDB, MemDB, and PebbleDB as database types.
// The database is wrapped with a corruptable DB and a meter DB, whose metrics
// are registered on [registerer].
func NewDatabase(dbConfig DatabaseConfig, registerer prometheus.Registerer, logger logging.Logger) (database.Database, error) {
	var (
		db  database.Database
		err error
	)
	switch dbConfig.Name {
	case leveldb.Name:
		db, err = leveldb.New(dbConfig.Path, dbConfig.Config, logger)
		if err != nil {
			return nil, fmt.Errorf("couldn't create %s at %s: %w", leveldb.Name, dbConfig.Path, err)
		}
	case memdb.Name:
		db = memdb.New()
	case pebbledb.Name:
		db, err = pebbledb.New(dbConfig.Path, dbConfig.Config, logger)
		if err != nil {
			return nil, fmt.Errorf("couldn't create %s at %s: %w", pebbledb.Name, dbConfig.Path, err)
		}
	default:
		return nil, fmt.Errorf(
			"db-type was %q but should have been one of {%s, %s, %s}",
			dbConfig.Name,
			leveldb.Name,
			memdb.Name,
			pebbledb.Name,
		)
	}

	db = corruptabledb.New(db)

	meterDB, err := meterdb.New(prometheus.WrapRegistererWithPrefix(MeterDBPrefix, registerer), db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create meterdb: %w", err)
	}
	return meterDB, nil
}
