// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ava-labs/hashchain/chain"
	"github.com/ava-labs/hashchain/database/factory"
	"github.com/ava-labs/hashchain/database/memdb"
	"github.com/ava-labs/hashchain/utils/logging"
)

var (
	errEmptyDBDir  = errors.New("db-dir must not be empty")
	errEmptyLogDir = errors.New("log-dir must not be empty")
)

// Config is the fully resolved configuration of a hashchain process.
type Config struct {
	FdLimit   uint64                 `json:"fdLimit"`
	Database  factory.DatabaseConfig `json:"database"`
	Namespace string                 `json:"namespace"`
	Chain     chain.Config           `json:"chain"`
	Logging   logging.Config         `json:"logging"`
}

// GetConfig reads the hashchain configuration out of [v].
func GetConfig(v *viper.Viper) (Config, error) {
	dbConfig, err := getDatabaseConfig(v)
	if err != nil {
		return Config{}, err
	}

	chainConfig := chain.Config{
		GenesisData:   v.GetString(GenesisDataKey),
		HashAlgorithm: v.GetString(HashAlgorithmKey),
	}
	if err := chainConfig.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", HashAlgorithmKey, err)
	}

	loggingConfig, err := getLoggingConfig(v)
	if err != nil {
		return Config{}, err
	}

	return Config{
		FdLimit:   v.GetUint64(FdLimitKey),
		Database:  dbConfig,
		Namespace: v.GetString(ChainNamespaceKey),
		Chain:     chainConfig,
		Logging:   loggingConfig,
	}, nil
}

func getDatabaseConfig(v *viper.Viper) (factory.DatabaseConfig, error) {
	name := v.GetString(DBTypeKey)
	configFile := v.GetString(DBConfigFileKey)

	var configBytes []byte
	if configFile != "" {
		var err error
		configBytes, err = os.ReadFile(filepath.Clean(os.ExpandEnv(configFile)))
		if err != nil {
			return factory.DatabaseConfig{}, fmt.Errorf("unable to read %s: %w", DBConfigFileKey, err)
		}
	}

	config := factory.DatabaseConfig{
		Name:   name,
		Config: configBytes,
	}
	if name == memdb.Name {
		return config, nil
	}

	dbDir := os.ExpandEnv(v.GetString(DBPathKey))
	if dbDir == "" {
		return factory.DatabaseConfig{}, errEmptyDBDir
	}
	// Each backend gets its own directory so switching db-type never opens
	// the files of another engine.
	config.Path = filepath.Join(dbDir, name)
	return config, nil
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	loggingConfig := logging.Config{}
	loggingConfig.Directory = os.ExpandEnv(v.GetString(LogsDirKey))
	if loggingConfig.Directory == "" {
		return loggingConfig, errEmptyLogDir
	}

	var err error
	loggingConfig.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return loggingConfig, err
	}

	logDisplayLevel := v.GetString(LogDisplayLevelKey)
	if logDisplayLevel == "" {
		logDisplayLevel = v.GetString(LogLevelKey)
	}
	loggingConfig.DisplayLevel, err = logging.ToLevel(logDisplayLevel)
	if err != nil {
		return loggingConfig, err
	}

	loggingConfig.LogFormat, err = logging.ToFormat(v.GetString(LogFormatKey), os.Stdout.Fd())
	if err != nil {
		return loggingConfig, err
	}

	loggingConfig.MaxSize = int(v.GetUint(LogRotaterMaxSizeKey))
	loggingConfig.MaxFiles = int(v.GetUint(LogRotaterMaxFilesKey))
	loggingConfig.MaxAge = int(v.GetUint(LogRotaterMaxAgeKey))
	loggingConfig.Compress = v.GetBool(LogRotaterCompressEnabledKey)
	if v.GetBool(LogDisableDisplayKey) {
		loggingConfig.DisplayLevel = logging.Off
		loggingConfig.DisableWriterDisplaying = true
	}
	return loggingConfig, nil
}
