// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ava-labs/hashchain/utils/hashing"
)

var errTrailingData = errors.New("trailing data after block")

// Block is one entry of the chain.
//
// The field order is the canonical serialization order and is covered by
// every block hash. Do not reorder.
type Block struct {
	Height            uint64          `json:"height"`
	Time              int64           `json:"time"`
	Data              json.RawMessage `json:"data"`
	PreviousBlockHash string          `json:"previousBlockHash"`
	Hash              string          `json:"hash"`
}

// ParseBlock decodes the canonical serialization of a block. Unknown fields
// and trailing data are rejected.
func ParseBlock(b []byte) (*Block, error) {
	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.DisallowUnknownFields()

	block := &Block{}
	if err := decoder.Decode(block); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBlock, err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBlock, errTrailingData)
	}
	return block, nil
}

// Bytes returns the canonical serialization of the block.
func (b *Block) Bytes() ([]byte, error) {
	return json.Marshal(b)
}

// ComputeHash returns the lowercase hex digest of the block serialized with an
// empty Hash. The block itself is not modified.
func (b *Block) ComputeHash(hash hashing.HashFunc) (string, error) {
	unsealed := *b
	unsealed.Hash = ""
	bytes, err := unsealed.Bytes()
	if err != nil {
		return "", err
	}
	return hashing.HexHash(hash, bytes), nil
}

// UnmarshalData decodes the payload into v.
func (b *Block) UnmarshalData(v any) error {
	return json.Unmarshal(b.Data, v)
}

// Timestamp returns the time the block was appended.
func (b *Block) Timestamp() time.Time {
	return time.Unix(b.Time, 0)
}
