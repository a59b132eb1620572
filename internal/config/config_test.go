// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MATBENCH_ITERATIONS", "10")
	t.Setenv("MATBENCH_SIZE", "8")
	t.Setenv("MATBENCH_ROUNDS", "3")
	t.Setenv("MATBENCH_OPS", "false")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_DEV", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, BenchConfig{Iterations: 10, Size: 8, Rounds: 3, Ops: false}, cfg.Bench)
	require.Equal(t, LogConfig{Level: "debug", Development: true}, cfg.Logging)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, val string
	}{
		{"MATBENCH_ITERATIONS", "0"},
		{"MATBENCH_SIZE", "-1"},
		{"MATBENCH_ROUNDS", "0"},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			_, err := Load()
			require.ErrorIs(t, err, ErrInvalid)
		})
	}

	t.Run("NotANumber", func(t *testing.T) {
		t.Setenv("MATBENCH_ITERATIONS", "many")
		_, err := Load()
		require.Error(t, err)
	})
}
