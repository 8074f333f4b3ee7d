// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey                = "config-file"
	FdLimitKey                   = "fd-limit"
	DBTypeKey                    = "db-type"
	DBPathKey                    = "db-dir"
	DBConfigFileKey              = "db-config-file"
	ChainNamespaceKey            = "chain-namespace"
	HashAlgorithmKey             = "hash-algorithm"
	GenesisDataKey               = "genesis-data"
	LogsDirKey                   = "log-dir"
	LogLevelKey                  = "log-level"
	LogDisplayLevelKey           = "log-display-level"
	LogFormatKey                 = "log-format"
	LogRotaterMaxSizeKey         = "log-rotater-max-size"
	LogRotaterMaxFilesKey        = "log-rotater-max-files"
	LogRotaterMaxAgeKey          = "log-rotater-max-age"
	LogRotaterCompressEnabledKey = "log-rotater-compress-enabled"
	LogDisableDisplayKey         = "log-disable-display"
)
