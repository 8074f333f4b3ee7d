// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLevelRoundTrip(t *testing.T) {
	for _, level := range []Level{Verbo, Debug, Trace, Info, Warn, Error, Fatal, Off} {
		t.Run(level.String(), func(t *testing.T) {
			require := require.New(t)

			parsed, err := ToLevel(level.LowerString())
			require.NoError(err)
			require.Equal(level, parsed)

			b, err := json.Marshal(level)
			require.NoError(err)

			var unmarshalled Level
			require.NoError(json.Unmarshal(b, &unmarshalled))
			require.Equal(level, unmarshalled)
		})
	}
}

func TestUnknownLevel(t *testing.T) {
	_, err := ToLevel("loud")
	require.ErrorIs(t, err, ErrUnknownLevel)
}

func TestLevelsMatchZap(t *testing.T) {
	require := require.New(t)

	require.Equal(zapcore.DebugLevel, zapcore.Level(Trace))
	require.Equal(zapcore.InfoLevel, zapcore.Level(Info))
	require.Equal(zapcore.WarnLevel, zapcore.Level(Warn))
	require.Equal(zapcore.ErrorLevel, zapcore.Level(Error))
	require.Less(Verbo, Debug)
}
