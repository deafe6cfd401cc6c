package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/hamroute/core"
	"github.com/katalvlaran/hamroute/hampath"
	"github.com/katalvlaran/hamroute/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hamroute.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no ./hamroute.yaml here

	cfg, err := config.Load(config.NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, hampath.DefaultParallel, cfg.Solver.Parallel)
	assert.Equal(t, hampath.DefaultSharedMemo, cfg.Solver.SharedMemo)
	assert.Equal(t, hampath.DefaultConnectivityCheck, cfg.Solver.ConnectivityCheck)
	assert.Equal(t, hampath.MaxLocations, cfg.Solver.MaxLocations)
	assert.False(t, cfg.Input.Strict)
	assert.Empty(t, cfg.GraphOptions())
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `solver:
  parallel: 4
  shared_memo: false
  max_locations: 12
log:
  level: debug
`)
	cfg, err := config.Load(config.NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Solver.Parallel)
	assert.False(t, cfg.Solver.SharedMemo)
	assert.True(t, cfg.Solver.ConnectivityCheck, "unset keys keep defaults")
	assert.Equal(t, 12, cfg.Solver.MaxLocations)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("HAMROUTE_SOLVER_PARALLEL", "3")
	t.Setenv("HAMROUTE_LOG_LEVEL", "info")
	path := writeConfig(t, "solver:\n  parallel: 2\n")

	cfg, err := config.Load(config.NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Solver.Parallel, "env beats file")
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_InputStrict(t *testing.T) {
	cfg, err := config.Load(config.NewViper(), writeConfig(t, "input:\n  strict: true\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Input.Strict)
	require.Len(t, cfg.GraphOptions(), 1)
	assert.True(t, core.NewGraph(cfg.GraphOptions()...).Strict())

	t.Setenv("HAMROUTE_INPUT_STRICT", "false")
	cfg, err = config.Load(config.NewViper(), writeConfig(t, "input:\n  strict: true\n"))
	require.NoError(t, err)
	assert.False(t, cfg.Input.Strict, "env beats file")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero workers", "solver:\n  parallel: 0\n"},
		{"limit too high", "solver:\n  max_locations: 40\n"},
		{"bad level", "log:\n  level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(config.NewViper(), writeConfig(t, tt.body))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Load(config.NewViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestSolverOptions(t *testing.T) {
	cfg := config.Config{
		Solver: config.SolverConfig{Parallel: 2, SharedMemo: true, ConnectivityCheck: true, MaxLocations: 10},
		Log:    config.LogConfig{Level: "warn"},
	}
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.SolverOptions(nil), 4)
	assert.Len(t, cfg.SolverOptions(zap.NewNop()), 5)
}
