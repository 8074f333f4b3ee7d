// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package node

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/hashchain/chain"
	"github.com/ava-labs/hashchain/config"
	"github.com/ava-labs/hashchain/database"
	"github.com/ava-labs/hashchain/database/factory"
	"github.com/ava-labs/hashchain/database/heightindexdb"
	"github.com/ava-labs/hashchain/database/prefixdb"
	"github.com/ava-labs/hashchain/utils/logging"
	"github.com/ava-labs/hashchain/utils/ulimit"
	"github.com/ava-labs/hashchain/utils/wrappers"
)

const chainLoggerName = "chain"

// Node owns the database of a hashchain process and the chain stored in it.
type Node struct {
	Log        logging.Logger
	LogFactory logging.Factory
	Config     config.Config

	// Registry holds the metrics of the database and the chain.
	Registry *prometheus.Registry

	// DB is the metered database opened from the configuration. The chain
	// only sees its namespace of it.
	DB database.Database

	// Store is the height index the chain writes its blocks to.
	Store database.HeightIndex

	Chain *chain.Chain

	shutdownOnce sync.Once
	shutdownErr  error
}

// New returns a node whose chain is ready for use.
//
// On error, every resource opened so far is released.
func New(
	config config.Config,
	logFactory logging.Factory,
	logger logging.Logger,
) (*Node, error) {
	n := &Node{
		Log:        logger,
		LogFactory: logFactory,
		Config:     config,
		Registry:   prometheus.NewRegistry(),
	}

	if _, err := ulimit.Raise(n.Config.FdLimit, n.Log); err != nil {
		return nil, fmt.Errorf("problem raising fd-limit: %w", err)
	}

	if err := n.initDatabase(); err != nil {
		return nil, fmt.Errorf("problem initializing database: %w", err)
	}

	if err := n.initChain(); err != nil {
		_ = n.Shutdown()
		return nil, fmt.Errorf("problem initializing chain: %w", err)
	}
	return n, nil
}

// initDatabase opens the configured database and narrows it down to the
// chain's namespace.
func (n *Node) initDatabase() error {
	db, err := factory.NewDatabase(n.Config.Database, n.Registry, n.Log)
	if err != nil {
		return err
	}
	n.DB = db

	n.Log.Info("initializing database",
		zap.String("type", n.Config.Database.Name),
		zap.String("path", n.Config.Database.Path),
		logging.UserString("namespace", n.Config.Namespace),
	)

	// The empty namespace is prefixed too. Heights stored at the root would
	// share the keyspace with every other namespace.
	n.Store = heightindexdb.New(prefixdb.New([]byte(n.Config.Namespace), db))
	return nil
}

func (n *Node) initChain() error {
	chainLog, err := n.LogFactory.Make(chainLoggerName)
	if err != nil {
		return fmt.Errorf("problem initializing chain logger: %w", err)
	}

	registerer := prometheus.WrapRegistererWith(
		prometheus.Labels{"namespace": n.Config.Namespace},
		n.Registry,
	)
	n.Chain, err = chain.New(
		n.Config.Chain,
		n.Store,
		chainLog.With(logging.UserString("namespace", n.Config.Namespace)),
		registerer,
	)
	return err
}

// Shutdown closes the chain's store and the database. It is safe to call
// more than once; later calls return the result of the first one.
func (n *Node) Shutdown() error {
	n.shutdownOnce.Do(func() {
		n.Log.Info("shutting down the node")

		errs := wrappers.Errs{}
		if n.Store != nil {
			errs.Add(n.Store.Close())
		}
		if n.DB != nil {
			errs.Add(n.DB.Close())
		}
		n.shutdownErr = errs.Err
	})
	return n.shutdownErr
}
