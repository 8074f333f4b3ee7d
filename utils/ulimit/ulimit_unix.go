// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build linux || darwin || netbsd || openbsd

package ulimit

import (
	"fmt"
	"syscall"

	"go.uber.org/zap"

	"github.com/ava-labs/hashchain/utils/logging"
)

// Raise lifts the soft limit on open file descriptors to [limit] and returns
// the soft limit in effect afterwards. The limit is never lowered, and is
// capped by the hard limit, which only a superuser could raise.
// see: http://0pointer.net/blog/file-descriptor-limits.html
func Raise(limit uint64, log logging.Logger) (uint64, error) {
	var rLimit syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		return 0, fmt.Errorf("error getting rlimit: %w", err)
	}

	if limit > rLimit.Max {
		log.Warn("fd-limit is greater than the hard limit",
			zap.Uint64("limit", limit),
			zap.Uint64("hardLimit", rLimit.Max),
		)
		limit = rLimit.Max
	}

	if limit > rLimit.Cur {
		rLimit.Cur = limit
		if err := syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
			return 0, fmt.Errorf("error setting fd-limit: %w", err)
		}

		// verify limit
		if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
			return 0, fmt.Errorf("error getting rlimit: %w", err)
		}
	}

	if rLimit.Cur < DefaultFDLimit {
		log.Warn("fd-limit is less than recommended and could result in reduced database performance",
			zap.Uint64("limit", rLimit.Cur),
			zap.Uint64("recommendedLimit", DefaultFDLimit),
		)
	}
	return rLimit.Cur, nil
}
