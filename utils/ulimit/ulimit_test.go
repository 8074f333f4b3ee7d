// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build linux || darwin || netbsd || openbsd

package ulimit

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hashchain/utils/logging"
)

func current() (uint64, error) {
	var rLimit syscall.Rlimit
	err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	return rLimit.Cur, err
}

func TestRaiseNeverLowers(t *testing.T) {
	require := require.New(t)

	before, err := current()
	require.NoError(err)

	limit, err := Raise(1, logging.NoLog{})
	require.NoError(err)
	require.Equal(before, limit)

	after, err := current()
	require.NoError(err)
	require.Equal(before, after)
}

func TestRaiseDefault(t *testing.T) {
	require := require.New(t)

	before, err := current()
	require.NoError(err)

	limit, err := Raise(DefaultFDLimit, logging.NoLog{})
	require.NoError(err)
	require.GreaterOrEqual(limit, before)

	after, err := current()
	require.NoError(err)
	require.Equal(limit, after)
}
