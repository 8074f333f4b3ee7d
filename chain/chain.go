// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/hashchain/database"
	"github.com/ava-labs/hashchain/utils/hashing"
	"github.com/ava-labs/hashchain/utils/logging"
	"github.com/ava-labs/hashchain/utils/timer/mockable"
)

// EmptyHeight is the height reported for a store that holds no block.
const EmptyHeight int64 = -1

// Chain is an append-only sequence of hash-linked blocks kept in a
// [database.HeightIndex].
//
// The store is the only source of truth: nothing about the chain is cached in
// memory, so out-of-band changes to the store are observed by every read and
// by validation.
type Chain struct {
	config  Config
	hash    hashing.HashFunc
	store   database.HeightIndex
	log     logging.Logger
	metrics *metrics
	clock   mockable.Clock

	// lock serializes appends, from reading the current height to writing the
	// new block. Reads do not take it.
	lock sync.Mutex
}

// New returns a chain over [store]. If the store is empty, the genesis block
// is appended before New returns.
func New(
	config Config,
	store database.HeightIndex,
	log logging.Logger,
	registerer prometheus.Registerer,
) (*Chain, error) {
	config = config.withDefaults()
	hash, err := hashing.Lookup(config.HashAlgorithm)
	if err != nil {
		return nil, err
	}

	m, err := newMetrics(registerer)
	if err != nil {
		return nil, fmt.Errorf("failed to register chain metrics: %w", err)
	}

	c := &Chain{
		config:  config,
		hash:    hash,
		store:   store,
		log:     log,
		metrics: m,
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	height, err := c.CurrentHeight()
	if err != nil {
		return nil, err
	}
	if height != EmptyHeight {
		c.metrics.height.Set(float64(height))
		c.log.Info("loaded chain",
			zap.Int64("height", height),
			zap.String("hashAlgorithm", config.HashAlgorithm),
		)
		return c, nil
	}

	genesis, err := c.append(config.GenesisData)
	if err != nil {
		return nil, fmt.Errorf("failed to create genesis block: %w", err)
	}
	c.log.Info("created genesis block",
		zap.String("hash", genesis.Hash),
		zap.String("hashAlgorithm", config.HashAlgorithm),
	)
	return c, nil
}

// Append seals [data] into a new block on top of the chain and stores it.
//
// [data] is encoded as JSON. The returned block is the one that was stored.
func (c *Chain) Append(data any) (*Block, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.append(data)
}

// Assumes [c.lock] is held.
func (c *Chain) append(data any) (*Block, error) {
	start := time.Now()

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode payload: %w", ErrStore, err)
	}

	current, err := c.CurrentHeight()
	if err != nil {
		return nil, err
	}
	height := uint64(current + 1)

	// With a hole below the top of the chain, the block count points at an
	// existing height.
	occupied, err := c.store.Has(height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}
	if occupied {
		return nil, fmt.Errorf("%w: height %d is already occupied", ErrChainCorrupt, height)
	}

	block := &Block{
		Height: height,
		Time:   c.clock.Unix(),
		Data:   payload,
	}
	if height > 0 {
		parent, err := c.GetBlock(height - 1)
		switch {
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrMalformedBlock):
			return nil, fmt.Errorf("%w: parent of height %d is unreadable: %w", ErrChainCorrupt, height, err)
		case err != nil:
			return nil, err
		}
		block.PreviousBlockHash = parent.Hash
		// Timestamps never decrease, even if the wall clock moved backwards.
		block.Time = max(block.Time, parent.Time)
	}

	block.Hash, err = block.ComputeHash(c.hash)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode block: %w", ErrStore, err)
	}
	blockBytes, err := block.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode block: %w", ErrStore, err)
	}
	if err := c.store.Put(height, blockBytes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}

	c.metrics.appended.Inc()
	c.metrics.height.Set(float64(height))
	c.metrics.appendDuration.Add(float64(time.Since(start)))
	c.log.Debug("appended block",
		zap.Uint64("height", height),
		zap.String("hash", block.Hash),
		zap.String("previousBlockHash", block.PreviousBlockHash),
	)
	return block, nil
}

// CurrentHeight returns the number of stored blocks minus one, or
// [EmptyHeight] if the store holds no block. The store is scanned on every
// call.
func (c *Chain) CurrentHeight() (int64, error) {
	count, err := database.CountHeights(c.store)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStore, err)
	}
	return int64(count) - 1, nil
}

// GetBlock returns the block stored at [height].
func (c *Chain) GetBlock(height uint64) (*Block, error) {
	blockBytes, err := c.getBytes(height)
	if err != nil {
		return nil, err
	}
	block, err := ParseBlock(blockBytes)
	if err != nil {
		return nil, fmt.Errorf("height %d: %w", height, err)
	}
	return block, nil
}

func (c *Chain) getBytes(height uint64) ([]byte, error) {
	blockBytes, err := c.store.Get(height)
	switch {
	case errors.Is(err, database.ErrNotFound):
		return nil, fmt.Errorf("%w: height %d", ErrNotFound, height)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	default:
		return blockBytes, nil
	}
}

// ValidateBlock reports whether the hash stored in the block at [height]
// matches the hash recomputed from its other fields. Stored bytes that do not
// decode into a block are reported as invalid.
func (c *Chain) ValidateBlock(height uint64) (bool, error) {
	blockBytes, err := c.getBytes(height)
	if err != nil {
		return false, err
	}
	block, err := ParseBlock(blockBytes)
	if err != nil {
		c.log.Warn("block is malformed",
			zap.Uint64("height", height),
			zap.Error(err),
		)
		return false, nil
	}

	computed, err := block.ComputeHash(c.hash)
	if err != nil {
		return false, fmt.Errorf("%w: failed to encode block: %w", ErrStore, err)
	}
	if computed != block.Hash {
		c.log.Warn("block hash mismatch",
			zap.Uint64("height", height),
			zap.String("storedHash", block.Hash),
			zap.String("computedHash", computed),
		)
		return false, nil
	}
	return true, nil
}
