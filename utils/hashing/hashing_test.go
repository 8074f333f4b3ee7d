// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKnownDigests(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     SHA256,
			input:    "abc",
			expected: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
		{
			name:     SHA256,
			input:    "",
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     Blake2b256,
			input:    "",
			expected: "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		},
	}
	for _, test := range tests {
		t.Run(test.name+"/"+test.input, func(t *testing.T) {
			require := require.New(t)

			hash, err := Lookup(test.name)
			require.NoError(err)
			require.Equal(test.expected, HexHash(hash, []byte(test.input)))
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("md5")
	require.ErrorIs(t, err, ErrUnknownHashAlgorithm)
}

func TestToHash256(t *testing.T) {
	require := require.New(t)

	digest := ComputeHash256([]byte("hello"))
	hash, err := ToHash256(digest)
	require.NoError(err)
	require.Equal(ComputeHash256Array([]byte("hello")), hash)

	_, err = ToHash256(digest[:31])
	require.ErrorIs(err, ErrInvalidHashLen)
}
