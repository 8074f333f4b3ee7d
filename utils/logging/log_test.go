// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bufferCloser struct {
	bytes.Buffer
}

func (*bufferCloser) Close() error {
	return nil
}

func TestLog(t *testing.T) {
	log := NewLogger("", NewWrappedCore(Info, Discard, Plain.ConsoleEncoder()))

	recovered := new(bool)
	panicFunc := func() {
		panic("DON'T PANIC!")
	}
	exitFunc := func() {
		*recovered = true
	}
	log.RecoverAndExit(panicFunc, exitFunc)

	require.True(t, *recovered)
}

func TestLevelFiltering(t *testing.T) {
	require := require.New(t)

	buf := &bufferCloser{}
	log := NewLogger("chain", NewWrappedCore(Info, buf, Plain.ConsoleEncoder()))

	log.Debug("hidden")
	log.Info("appended block", zap.Uint64("height", 7))
	require.NotContains(buf.String(), "hidden")
	require.Contains(buf.String(), "appended block")
	require.Contains(buf.String(), `"height": 7`)
	require.Contains(buf.String(), "INFO")
	require.Contains(buf.String(), "chain")

	require.False(log.Enabled(Debug))
	log.SetLevel(Verbo)
	require.True(log.Enabled(Verbo))
	log.Verbo("shown")
	require.Contains(buf.String(), "shown")
}

func TestJSONFormat(t *testing.T) {
	require := require.New(t)

	buf := &bufferCloser{}
	log := NewLogger("", NewWrappedCore(Info, buf, JSON.ConsoleEncoder()))
	log.With(zap.String("namespace", "default")).Warn("fault detected")

	require.Contains(buf.String(), `"level":"warn"`)
	require.Contains(buf.String(), `"msg":"fault detected"`)
	require.Contains(buf.String(), `"namespace":"default"`)
}

func TestUserString(t *testing.T) {
	buf := &bufferCloser{}
	log := NewLogger("", NewWrappedCore(Info, buf, JSON.ConsoleEncoder()))
	log.Info("payload", UserString("data", "line1\nline2"))

	require.Contains(t, buf.String(), `line1\\nline2`)
}

func TestFactory(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	factory := NewFactory(Config{
		RotatingWriterConfig: RotatingWriterConfig{
			Directory: dir,
			MaxSize:   1,
		},
		DisableWriterDisplaying: true,
		LogLevel:                Info,
		DisplayLevel:            Off,
	})

	log, err := factory.Make("main")
	require.NoError(err)

	_, err = factory.Make("main")
	require.ErrorIs(err, ErrLoggerExists)

	require.NoError(factory.SetLogLevel("main", Debug))
	level, err := factory.GetLogLevel("main")
	require.NoError(err)
	require.Equal(Debug, level)

	displayLevel, err := factory.GetDisplayLevel("main")
	require.NoError(err)
	require.Equal(Off, displayLevel)

	require.ErrorIs(factory.SetDisplayLevel("missing", Info), ErrLoggerNotFound)
	require.Equal([]string{"main"}, factory.GetLoggerNames())

	log.Debug("written to file")
	factory.Close()

	contents, err := os.ReadFile(filepath.Join(dir, "main.log"))
	require.NoError(err)
	require.Contains(string(contents), "written to file")
}

func TestToFormat(t *testing.T) {
	require := require.New(t)

	format, err := ToFormat("json", os.Stdout.Fd())
	require.NoError(err)
	require.Equal(JSON, format)

	_, err = ToFormat("xml", os.Stdout.Fd())
	require.ErrorIs(err, ErrUnknownFormat)
}
