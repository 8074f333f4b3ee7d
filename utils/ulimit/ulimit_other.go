// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !(linux || darwin || netbsd || openbsd)

package ulimit

import "github.com/ava-labs/hashchain/utils/logging"

// Raise is a no-op on platforms without RLIMIT_NOFILE.
func Raise(uint64, logging.Logger) (uint64, error) {
	return 0, nil
}
