// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hashchain/chain"
	"github.com/ava-labs/hashchain/database/leveldb"
	"github.com/ava-labs/hashchain/database/memdb"
	"github.com/ava-labs/hashchain/database/pebbledb"
	"github.com/ava-labs/hashchain/utils/hashing"
	"github.com/ava-labs/hashchain/utils/logging"
	"github.com/ava-labs/hashchain/utils/ulimit"
)

func setupViper(t *testing.T, args ...string) *viper.Viper {
	fs := BuildFlagSet()
	require.NoError(t, fs.Parse(args))
	v, err := BuildViper(fs)
	require.NoError(t, err)
	return v
}

// setupConfigFile writes [value] to a config file in a fresh directory and
// returns its path.
func setupConfigFile(t *testing.T, fileName string, value string) string {
	path := filepath.Join(t.TempDir(), fileName)
	require.NoError(t, os.WriteFile(path, []byte(value), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	require := require.New(t)

	home := t.TempDir()
	t.Setenv("HOME", home)

	config, err := GetConfig(setupViper(t))
	require.NoError(err)

	require.Equal(uint64(ulimit.DefaultFDLimit), config.FdLimit)
	require.Equal(leveldb.Name, config.Database.Name)
	require.Equal(filepath.Join(home, ".hashchain", "db", leveldb.Name), config.Database.Path)
	require.Empty(config.Database.Config)
	require.Equal(DefaultNamespace, config.Namespace)
	require.Equal(chain.DefaultGenesisData, config.Chain.GenesisData)
	require.Equal(hashing.SHA256, config.Chain.HashAlgorithm)

	require.Equal(filepath.Join(home, ".hashchain", "logs"), config.Logging.Directory)
	require.Equal(logging.Info, config.Logging.LogLevel)
	require.Equal(logging.Info, config.Logging.DisplayLevel)
	require.Equal(8, config.Logging.MaxSize)
	require.Equal(7, config.Logging.MaxFiles)
	require.Zero(config.Logging.MaxAge)
	require.False(config.Logging.Compress)
	require.False(config.Logging.DisableWriterDisplaying)
}

func TestFlags(t *testing.T) {
	require := require.New(t)

	dbDir := t.TempDir()
	logDir := t.TempDir()
	config, err := GetConfig(setupViper(t,
		"--"+DBTypeKey+"="+pebbledb.Name,
		"--"+DBPathKey+"="+dbDir,
		"--"+ChainNamespaceKey+"=ledger",
		"--"+HashAlgorithmKey+"="+hashing.Blake2b256,
		"--"+GenesisDataKey+"=In the beginning",
		"--"+LogsDirKey+"="+logDir,
		"--"+LogLevelKey+"=debug",
		"--"+LogDisplayLevelKey+"=warn",
		"--"+LogFormatKey+"=json",
		"--"+LogRotaterCompressEnabledKey,
	))
	require.NoError(err)

	require.Equal(pebbledb.Name, config.Database.Name)
	require.Equal(filepath.Join(dbDir, pebbledb.Name), config.Database.Path)
	require.Equal("ledger", config.Namespace)
	require.Equal("In the beginning", config.Chain.GenesisData)
	require.Equal(hashing.Blake2b256, config.Chain.HashAlgorithm)
	require.Equal(logDir, config.Logging.Directory)
	require.Equal(logging.Debug, config.Logging.LogLevel)
	require.Equal(logging.Warn, config.Logging.DisplayLevel)
	require.Equal(logging.JSON, config.Logging.LogFormat)
	require.True(config.Logging.Compress)
	require.False(config.Logging.DisableWriterDisplaying)
}

func TestDisableDisplay(t *testing.T) {
	require := require.New(t)

	config, err := GetConfig(setupViper(t,
		"--"+LogLevelKey+"=debug",
		"--"+LogDisableDisplayKey,
	))
	require.NoError(err)
	require.Equal(logging.Debug, config.Logging.LogLevel)
	require.Equal(logging.Off, config.Logging.DisplayLevel)
	require.True(config.Logging.DisableWriterDisplaying)
}

func TestDisplayLevelInheritsLogLevel(t *testing.T) {
	require := require.New(t)

	config, err := GetConfig(setupViper(t, "--"+LogLevelKey+"=error"))
	require.NoError(err)
	require.Equal(logging.Error, config.Logging.LogLevel)
	require.Equal(logging.Error, config.Logging.DisplayLevel)
}

func TestMemDBHasNoPath(t *testing.T) {
	require := require.New(t)

	config, err := GetConfig(setupViper(t, "--"+DBTypeKey+"="+memdb.Name))
	require.NoError(err)
	require.Equal(memdb.Name, config.Database.Name)
	require.Empty(config.Database.Path)
}

func TestEnvironment(t *testing.T) {
	require := require.New(t)

	t.Setenv("HASHCHAIN_DB_TYPE", memdb.Name)
	t.Setenv("HASHCHAIN_CHAIN_NAMESPACE", "from-env")

	config, err := GetConfig(setupViper(t, "--"+ChainNamespaceKey+"=from-flag"))
	require.NoError(err)
	require.Equal(memdb.Name, config.Database.Name)
	require.Equal("from-flag", config.Namespace)
}

func TestConfigFile(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		contents string
	}{
		{
			name:     "json",
			fileName: "config.json",
			contents: `{"db-type":"memdb","chain-namespace":"from-file","hash-algorithm":"blake2b-256","log-level":"trace"}`,
		},
		{
			name:     "yaml",
			fileName: "config.yaml",
			contents: "db-type: memdb\nchain-namespace: from-file\nhash-algorithm: blake2b-256\nlog-level: trace\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			path := setupConfigFile(t, test.fileName, test.contents)
			config, err := GetConfig(setupViper(t, "--"+ConfigFileKey+"="+path))
			require.NoError(err)

			require.Equal(memdb.Name, config.Database.Name)
			require.Equal("from-file", config.Namespace)
			require.Equal(hashing.Blake2b256, config.Chain.HashAlgorithm)
			require.Equal(logging.Trace, config.Logging.LogLevel)
		})
	}
}

func TestFlagOverridesConfigFile(t *testing.T) {
	require := require.New(t)

	path := setupConfigFile(t, "config.json", `{"chain-namespace":"from-file"}`)
	config, err := GetConfig(setupViper(t,
		"--"+ConfigFileKey+"="+path,
		"--"+ChainNamespaceKey+"=from-flag",
	))
	require.NoError(err)
	require.Equal("from-flag", config.Namespace)
}

func TestMissingConfigFile(t *testing.T) {
	fs := BuildFlagSet()
	require.NoError(t, fs.Parse([]string{
		"--" + ConfigFileKey + "=" + filepath.Join(t.TempDir(), "missing.json"),
	}))
	_, err := BuildViper(fs)
	require.ErrorContains(t, err, "failed to read config file")
}

func TestDatabaseConfigFile(t *testing.T) {
	require := require.New(t)

	const dbConfig = `{"sync":true}`
	path := setupConfigFile(t, "db.json", dbConfig)
	config, err := GetConfig(setupViper(t, "--"+DBConfigFileKey+"="+path))
	require.NoError(err)
	require.Equal([]byte(dbConfig), config.Database.Config)
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectedErr error
	}{
		{
			name:        "unknown hash algorithm",
			args:        []string{"--" + HashAlgorithmKey + "=md5"},
			expectedErr: hashing.ErrUnknownHashAlgorithm,
		},
		{
			name:        "unknown log level",
			args:        []string{"--" + LogLevelKey + "=loud"},
			expectedErr: logging.ErrUnknownLevel,
		},
		{
			name:        "unknown display level",
			args:        []string{"--" + LogDisplayLevelKey + "=loud"},
			expectedErr: logging.ErrUnknownLevel,
		},
		{
			name:        "unknown log format",
			args:        []string{"--" + LogFormatKey + "=xml"},
			expectedErr: logging.ErrUnknownFormat,
		},
		{
			name:        "empty db dir",
			args:        []string{"--" + DBPathKey + "="},
			expectedErr: errEmptyDBDir,
		},
		{
			name:        "empty log dir",
			args:        []string{"--" + LogsDirKey + "="},
			expectedErr: errEmptyLogDir,
		},
		{
			name:        "missing db config file",
			args:        []string{"--" + DBConfigFileKey + "=" + filepath.Join(os.TempDir(), "hashchain-missing-db-config.json")},
			expectedErr: os.ErrNotExist,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := GetConfig(setupViper(t, test.args...))
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}
