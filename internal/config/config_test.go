package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/systop/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, time.Second, cfg.Interval)
	assert.Equal(t, 60, cfg.HistorySize)
	assert.Equal(t, "cpu", cfg.Sort)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.NoError(t, Validate(cfg))
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
version: 1
interval: 2s
history_size: 30
sort: memory
debug: true
output:
  color: never
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Interval)
	assert.Equal(t, 30, cfg.HistorySize)
	assert.Equal(t, "memory", cfg.Sort)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "never", cfg.Output.Color)
}

func TestLoadPartialConfigMergesDefaults(t *testing.T) {
	path := writeConfig(t, `
version: 1
interval: 500ms
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.Interval)
	assert.Equal(t, 60, cfg.HistorySize)
	assert.Equal(t, "cpu", cfg.Sort)
	assert.Equal(t, "auto", cfg.Output.Color)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "interval: [not: valid")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults pass",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "interval too fast",
			mutate:  func(cfg *Config) { cfg.Interval = 50 * time.Millisecond },
			wantErr: "too fast",
		},
		{
			name:   "interval at minimum",
			mutate: func(cfg *Config) { cfg.Interval = MinInterval },
		},
		{
			name:    "history size zero",
			mutate:  func(cfg *Config) { cfg.HistorySize = 0 },
			wantErr: "history_size",
		},
		{
			name:    "bad sort",
			mutate:  func(cfg *Config) { cfg.Sort = "priority" },
			wantErr: "sort",
		},
		{
			name:   "mem alias allowed",
			mutate: func(cfg *Config) { cfg.Sort = "mem" },
		},
		{
			name:    "bad color",
			mutate:  func(cfg *Config) { cfg.Output.Color = "sometimes" },
			wantErr: "output.color",
		},
		{
			name:    "future version",
			mutate:  func(cfg *Config) { cfg.Version = CurrentConfigVersion + 1 },
			wantErr: "future",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
		})
	}
}

func TestFindExplicitPath(t *testing.T) {
	path := writeConfig(t, "version: 1\n")

	found, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFindExplicitPathMissing(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFindCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	found, err := Find("")
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestLoadOrDefaultWithoutConfig(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	t.Setenv("HOME", dir)

	cfg, err := LoadOrDefault()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
