// SPDX-License-Identifier: MIT

package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"WARN", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, tc := range tests {
		got, err := parseLevel(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got)
	}

	_, err := parseLevel("loud")
	require.Error(t, err)
}

func TestNew(t *testing.T) {
	t.Parallel()

	l, err := New(Config{Level: "debug", Development: true})
	require.NoError(t, err)
	require.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = New(DefaultConfig())
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(zapcore.DebugLevel))
	require.True(t, l.Core().Enabled(zapcore.InfoLevel))

	_, err = New(Config{Level: "loud"})
	require.Error(t, err)

	require.NotNil(t, NewDefault())
	require.False(t, Nop().Core().Enabled(zapcore.ErrorLevel))
}

func TestEncoding(t *testing.T) {
	t.Parallel()

	require.Equal(t, "console", encodingFormat(true))
	require.Equal(t, "json", encodingFormat(false))
	require.Equal(t, "message", encoderConfig(false).MessageKey)
	require.Equal(t, "M", encoderConfig(true).MessageKey)
}
