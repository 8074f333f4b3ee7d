// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package units

const (
	KiB = 1024 // 1 kibibyte
	MiB = 1024 * KiB
)
