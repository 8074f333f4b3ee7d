// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "github.com/ava-labs/hashchain/utils/hashing"

// DefaultGenesisData is the payload of the genesis block unless configured
// otherwise.
const DefaultGenesisData = "Genesis block"

type Config struct {
	// GenesisData is the payload of the block written at height 0 when the
	// chain is created on an empty store. Ignored for existing chains.
	GenesisData any `json:"genesisData"`

	// HashAlgorithm names the digest used to seal blocks. It must never change
	// for an existing chain, or every block fails validation.
	HashAlgorithm string `json:"hashAlgorithm"`
}

func DefaultConfig() Config {
	return Config{
		GenesisData:   DefaultGenesisData,
		HashAlgorithm: hashing.SHA256,
	}
}

// Validate returns an error if the configured hash algorithm is unknown.
func (c Config) Validate() error {
	_, err := hashing.Lookup(c.HashAlgorithm)
	return err
}

// withDefaults replaces zero values with their defaults.
func (c Config) withDefaults() Config {
	if c.GenesisData == nil {
		c.GenesisData = DefaultGenesisData
	}
	if c.HashAlgorithm == "" {
		c.HashAlgorithm = hashing.SHA256
	}
	return c
}
