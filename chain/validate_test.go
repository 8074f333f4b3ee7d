// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateBlockDetectsTampering(t *testing.T) {
	tests := []struct {
		name   string
		tamper func(*Block)
	}{
		{
			name: "data",
			tamper: func(b *Block) {
				b.Data = json.RawMessage(`"tampered"`)
			},
		},
		{
			name: "time",
			tamper: func(b *Block) {
				b.Time++
			},
		},
		{
			name: "previousBlockHash",
			tamper: func(b *Block) {
				b.PreviousBlockHash = "00"
			},
		},
		{
			name: "height",
			tamper: func(b *Block) {
				b.Height = 99
			},
		},
		{
			name: "hash",
			tamper: func(b *Block) {
				b.Hash = "ff"
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			c, store := newTestChain(t, DefaultConfig())
			appendAll(t, c, 4)

			block, err := c.GetBlock(2)
			require.NoError(err)
			test.tamper(block)
			overwrite(t, store, 2, block)

			valid, err := c.ValidateBlock(2)
			require.NoError(err)
			require.False(valid)

			for _, height := range []uint64{0, 1, 3, 4} {
				valid, err := c.ValidateBlock(height)
				require.NoError(err)
				require.True(valid)
			}

			invalid, err := c.ValidateChain()
			require.NoError(err)
			require.Contains(invalid, uint64(2))
		})
	}
}

func TestValidateChainCorruptedHash(t *testing.T) {
	require := require.New(t)

	c, store := newTestChain(t, DefaultConfig())
	appendAll(t, c, 5)

	const k = 3
	block, err := c.GetBlock(k)
	require.NoError(err)
	block.Hash = "0000000000000000000000000000000000000000000000000000000000000000"
	overwrite(t, store, k, block)

	invalid, err := c.ValidateChain()
	require.NoError(err)
	require.Equal([]uint64{k, k + 1}, invalid)

	report, err := c.Verify()
	require.NoError(err)
	require.False(report.Valid())
	require.Equal(uint64(6), report.Checked)
	require.Equal([]Fault{
		{Height: k, Reason: HashMismatch},
		{Height: k + 1, Reason: LinkMismatch},
	}, report.Faults)
}

func TestValidateChainResealedBlock(t *testing.T) {
	require := require.New(t)

	c, store := newTestChain(t, DefaultConfig())
	appendAll(t, c, 4)

	// Rewriting the data and resealing the block keeps its own hash valid,
	// but the block above still links to the original hash.
	block, err := c.GetBlock(2)
	require.NoError(err)
	block.Data = json.RawMessage(`"rewritten"`)
	block.Hash, err = block.ComputeHash(c.hash)
	require.NoError(err)
	overwrite(t, store, 2, block)

	valid, err := c.ValidateBlock(2)
	require.NoError(err)
	require.True(valid)

	report, err := c.Verify()
	require.NoError(err)
	require.Equal([]Fault{
		{Height: 3, Reason: LinkMismatch},
	}, report.Faults)
}

func TestVerifyMissingBlock(t *testing.T) {
	require := require.New(t)

	c, store := newTestChain(t, DefaultConfig())
	appendAll(t, c, 4)
	require.NoError(store.Delete(2))

	report, err := c.Verify()
	require.NoError(err)
	require.Equal(uint64(5), report.Checked)
	require.Equal([]Fault{
		{Height: 2, Reason: Missing},
		{Height: 3, Reason: LinkMismatch},
	}, report.Faults)
	require.Equal([]uint64{2, 3}, report.Heights())

	// The block count now points at height 4, which is occupied.
	_, err = c.Append("after hole")
	require.ErrorIs(err, ErrChainCorrupt)
}

func TestValidateChainWalksPastCurrentHeight(t *testing.T) {
	require := require.New(t)

	c, store := newTestChain(t, DefaultConfig())
	appendAll(t, c, 4)
	require.NoError(store.Delete(1))

	height, err := c.CurrentHeight()
	require.NoError(err)
	require.Equal(int64(3), height)

	invalid, err := c.ValidateChain()
	require.NoError(err)
	require.Equal([]uint64{1, 2}, invalid)

	report, err := c.Verify()
	require.NoError(err)
	require.Equal(uint64(5), report.Checked)
}

func TestAppendMissingParent(t *testing.T) {
	require := require.New(t)

	c, store := newTestChain(t, DefaultConfig())
	appendAll(t, c, 3)
	require.NoError(store.Delete(1))
	require.NoError(store.Delete(2))

	// Two blocks remain, so the next height is 2 and its parent is missing.
	_, err := c.Append("orphan")
	require.ErrorIs(err, ErrChainCorrupt)
	require.ErrorIs(err, ErrNotFound)

	has, err := store.Has(2)
	require.NoError(err)
	require.False(has)
}

func TestMalformedBlock(t *testing.T) {
	require := require.New(t)

	c, store := newTestChain(t, DefaultConfig())
	appendAll(t, c, 3)
	require.NoError(store.Put(1, []byte("not json")))

	_, err := c.GetBlock(1)
	require.ErrorIs(err, ErrMalformedBlock)

	valid, err := c.ValidateBlock(1)
	require.NoError(err)
	require.False(valid)

	report, err := c.Verify()
	require.NoError(err)
	require.Equal([]Fault{
		{Height: 1, Reason: Malformed},
		{Height: 2, Reason: LinkMismatch},
	}, report.Faults)

	// Appending on top of a malformed block is refused.
	require.NoError(store.Put(3, []byte(`{"height":3}`+"trailing")))
	_, err = c.Append("next")
	require.ErrorIs(err, ErrChainCorrupt)
}

func TestVerifyHeightMismatch(t *testing.T) {
	require := require.New(t)

	c, store := newTestChain(t, DefaultConfig())
	appendAll(t, c, 3)

	// Store a copy of block 1 at height 2.
	block, err := c.GetBlock(1)
	require.NoError(err)
	overwrite(t, store, 2, block)

	report, err := c.Verify()
	require.NoError(err)
	require.Equal([]Fault{
		{Height: 2, Reason: HeightMismatch},
		{Height: 2, Reason: LinkMismatch},
		{Height: 3, Reason: LinkMismatch},
	}, report.Faults)
	require.Equal([]uint64{2, 3}, report.Heights())
}

func TestVerifyGenesisLink(t *testing.T) {
	require := require.New(t)

	c, store := newTestChain(t, DefaultConfig())

	genesis, err := c.GetBlock(0)
	require.NoError(err)
	genesis.PreviousBlockHash = "ff"
	genesis.Hash, err = genesis.ComputeHash(c.hash)
	require.NoError(err)
	overwrite(t, store, 0, genesis)

	report, err := c.Verify()
	require.NoError(err)
	require.Equal([]Fault{
		{Height: 0, Reason: LinkMismatch},
	}, report.Faults)
}

func TestParseBlockStrict(t *testing.T) {
	tests := []struct {
		name  string
		bytes string
	}{
		{
			name:  "unknown field",
			bytes: `{"height":0,"time":0,"data":null,"previousBlockHash":"","hash":"","extra":1}`,
		},
		{
			name:  "trailing data",
			bytes: `{"height":0,"time":0,"data":null,"previousBlockHash":"","hash":""}{}`,
		},
		{
			name:  "wrong type",
			bytes: `{"height":"zero"}`,
		},
		{
			name:  "empty",
			bytes: ``,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseBlock([]byte(test.bytes))
			require.ErrorIs(t, err, ErrMalformedBlock)
		})
	}
}

func TestCanonicalFieldOrder(t *testing.T) {
	require := require.New(t)

	block := &Block{
		Height:            1,
		Time:              2,
		Data:              json.RawMessage(`"x"`),
		PreviousBlockHash: "ab",
		Hash:              "cd",
	}
	blockBytes, err := block.Bytes()
	require.NoError(err)
	require.Equal(
		`{"height":1,"time":2,"data":"x","previousBlockHash":"ab","hash":"cd"}`,
		string(blockBytes),
	)

	parsed, err := ParseBlock(blockBytes)
	require.NoError(err)
	require.Equal(block, parsed)
}
