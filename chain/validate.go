// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// Reason describes why a height failed validation.
type Reason string

const (
	// HashMismatch means the stored hash differs from the hash recomputed
	// from the block's other fields.
	HashMismatch Reason = "hash mismatch"
	// LinkMismatch means the previousBlockHash does not equal the hash stored
	// at the height below, or that block is missing or malformed. For the
	// genesis block it means previousBlockHash is not empty.
	LinkMismatch Reason = "link mismatch"
	// HeightMismatch means the height recorded in the block differs from the
	// height it is stored at.
	HeightMismatch Reason = "height mismatch"
	// Missing means no block is stored at a height below the top of the
	// chain.
	Missing Reason = "missing"
	// Malformed means the stored bytes do not decode into a block.
	Malformed Reason = "malformed"
)

// Fault is a single validation failure.
type Fault struct {
	Height uint64 `json:"height"`
	Reason Reason `json:"reason"`
}

// Report is the result of a full chain validation.
type Report struct {
	// Checked is the number of heights inspected, including missing ones.
	Checked uint64  `json:"checked"`
	Faults  []Fault `json:"faults"`
}

// Valid returns true if no fault was found.
func (r *Report) Valid() bool {
	return len(r.Faults) == 0
}

// Heights returns the failing heights in increasing order, each once.
func (r *Report) Heights() []uint64 {
	heights := make([]uint64, 0, len(r.Faults))
	for _, fault := range r.Faults {
		heights = append(heights, fault.Height)
	}
	// Faults are recorded in height order.
	return slices.Compact(heights)
}

func (r *Report) add(height uint64, reason Reason) {
	r.Faults = append(r.Faults, Fault{
		Height: height,
		Reason: reason,
	})
}

// ValidateChain returns every height, in increasing order, whose block fails
// the hash check or, above genesis, the link check against the hash stored at
// the height below. A valid chain returns an empty list.
//
// Heights are walked up to the highest stored key rather than
// [Chain.CurrentHeight], and a height missing below it counts as invalid.
func (c *Chain) ValidateChain() ([]uint64, error) {
	report, err := c.Verify()
	if err != nil {
		return nil, err
	}
	return report.Heights(), nil
}

// Verify walks every height from 0 to the highest stored height in a single
// pass over the store and reports each failure with its reason.
//
// A block's link is compared with the hash stored in its predecessor, so a
// block whose own hash was overwritten is reported together with the block
// above it.
func (c *Chain) Verify() (*Report, error) {
	it := c.store.NewHeightIterator()
	defer it.Release()

	var (
		report = &Report{
			Faults: []Fault{},
		}
		next uint64 // lowest height not inspected yet
		// hash stored at height next-1, if that block was readable
		parentHash     string
		parentReadable bool
	)
	for it.Next() {
		height := it.Height()
		for ; next < height; next++ {
			report.add(next, Missing)
			parentReadable = false
		}
		next = height + 1

		block, err := ParseBlock(it.Value())
		if err != nil {
			report.add(height, Malformed)
			parentReadable = false
			continue
		}

		if block.Height != height {
			report.add(height, HeightMismatch)
		}

		computed, err := block.ComputeHash(c.hash)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode block: %w", ErrStore, err)
		}
		if computed != block.Hash {
			c.log.Warn("block hash mismatch",
				zap.Uint64("height", height),
				zap.String("storedHash", block.Hash),
				zap.String("computedHash", computed),
			)
			report.add(height, HashMismatch)
		}

		linked := block.PreviousBlockHash == ""
		if height > 0 {
			linked = parentReadable && block.PreviousBlockHash == parentHash
		}
		if !linked {
			report.add(height, LinkMismatch)
		}

		parentHash = block.Hash
		parentReadable = true
	}
	if err := it.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}
	report.Checked = next

	c.metrics.validations.Inc()
	heights := report.Heights()
	c.metrics.invalidBlocks.Add(float64(len(heights)))

	if report.Valid() {
		c.log.Info("no errors detected",
			zap.Uint64("checked", report.Checked),
		)
		return report, nil
	}
	for _, fault := range report.Faults {
		c.log.Warn("block failed validation",
			zap.Uint64("height", fault.Height),
			zap.String("reason", string(fault.Reason)),
		)
	}
	c.log.Error("chain validation failed",
		zap.Int("errors", len(heights)),
		zap.Uint64s("heights", heights),
	)
	return report, nil
}
