// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/hashchain/chain"
	"github.com/ava-labs/hashchain/database/leveldb"
	"github.com/ava-labs/hashchain/database/memdb"
	"github.com/ava-labs/hashchain/database/pebbledb"
	"github.com/ava-labs/hashchain/utils/hashing"
	"github.com/ava-labs/hashchain/utils/ulimit"
)

const (
	AppName = "hashchain"

	// EnvPrefix is prepended to the upper-cased, underscore-separated flag
	// name to form the environment variable read for that flag.
	EnvPrefix = AppName

	DefaultNamespace = "default"
)

var (
	defaultDataDir = filepath.Join("$HOME", "."+AppName)
	defaultDBDir   = filepath.Join(defaultDataDir, "db")
	defaultLogDir  = filepath.Join(defaultDataDir, "logs")
)

// AddFlags registers every hashchain flag on [fs].
func AddFlags(fs *pflag.FlagSet) {
	// Config file
	fs.String(ConfigFileKey, "", "Specifies a JSON or YAML config file. Flags override its values")

	// System
	fs.Uint64(FdLimitKey, ulimit.DefaultFDLimit, "Attempts to raise the process file descriptor limit to at least this value")

	// Database
	fs.String(DBTypeKey, leveldb.Name, fmt.Sprintf("Database type to use. Must be one of {%s, %s, %s}", leveldb.Name, memdb.Name, pebbledb.Name))
	fs.String(DBPathKey, defaultDBDir, "Path to database directory")
	fs.String(DBConfigFileKey, "", "Path to a JSON file holding database backend specific config")

	// Chain
	fs.String(ChainNamespaceKey, DefaultNamespace, "Namespace of the chain within the database. Chains in different namespaces never see each other's blocks")
	fs.String(HashAlgorithmKey, hashing.SHA256, fmt.Sprintf("Digest used to seal blocks. Must be one of {%s, %s}", hashing.SHA256, hashing.Blake2b256))
	fs.String(GenesisDataKey, chain.DefaultGenesisData, "Payload of the genesis block. Only used when the chain is created")

	// Logging
	fs.String(LogsDirKey, defaultLogDir, "Logging directory")
	fs.String(LogLevelKey, "info", "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayLevelKey, "", "The log display level. If left blank, will inherit the value of log-level. Otherwise, should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogFormatKey, "auto", "The structure of log format. Defaults to 'auto' which formats terminal-like logs, when the output is a terminal. Otherwise, should be one of {auto, plain, colors, json}")
	fs.Uint(LogRotaterMaxSizeKey, 8, "The maximum file size in megabytes of the log file before it gets rotated")
	fs.Uint(LogRotaterMaxFilesKey, 7, "The maximum number of old log files to retain. 0 means retain all old log files")
	fs.Uint(LogRotaterMaxAgeKey, 0, "The maximum number of days to retain old log files based on the timestamp encoded in their filename. 0 means retain all old log files")
	fs.Bool(LogRotaterCompressEnabledKey, false, "Enables the compression of rotated log files through gzip")
	fs.Bool(LogDisableDisplayKey, false, "Disables writing logs to stdout. Log files are still written")
}

// BuildFlagSet returns a flag set holding every hashchain flag.
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(AppName, pflag.ContinueOnError)
	AddFlags(fs)
	return fs
}

// BuildViper returns the viper environment bound to the already parsed [fs],
// to the environment and, if one is specified, to the config file.
//
// Values are resolved in the order: set flag, environment variable, config
// file, flag default.
func BuildViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(EnvPrefix)
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if v.IsSet(ConfigFileKey) {
		v.SetConfigFile(os.ExpandEnv(v.GetString(ConfigFileKey)))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return v, nil
}
