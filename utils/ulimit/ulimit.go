// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ulimit adjusts the open file descriptor limit of the process. The
// on-disk databases keep many table files open at once.
package ulimit

const DefaultFDLimit = 32 * 1024
