package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fxnlabs/level-zero-loader/fixtures"
	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestLoadConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		config, err := LoadConfig("../../fixtures/tests/config/valid_config.yaml")
		require.NoError(t, err)
		require.NotNil(t, config)

		assert.Equal(t, "debug", config.Logger.Verbosity)
		assert.Equal(t, "console", config.Logger.Encoding)
		assert.Equal(t, ze.APIVersion1_5, config.Loader.APIVersion)
		assert.True(t, config.Loader.StrictHandleArrays)
		require.Len(t, config.Loader.Drivers, 2)
		assert.Equal(t, ze.APIVersion1_3, config.Loader.Drivers[0].APIVersion)
		assert.True(t, config.Loader.Drivers[0].IsEnabled())
		assert.False(t, config.Loader.Drivers[1].IsEnabled())
		assert.True(t, config.Tracing.Enabled)
		assert.True(t, config.Tracing.DumpParams)
		assert.True(t, config.Metrics.Enabled)
		assert.Equal(t, "zetest", config.Metrics.Namespace)

		enabled := config.EnabledDrivers()
		require.Len(t, enabled, 1)
		assert.Equal(t, "cpu", enabled[0].Name)
	})

	t.Run("defaults fill missing sections", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tracing:\n  enabled: true\n"), 0o600))

		config, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "info", config.Logger.Verbosity)
		assert.Equal(t, ze.APIVersionCurrent, config.Loader.APIVersion)
		assert.Equal(t, []DriverConfig{{Name: "cpu"}}, config.Loader.Drivers)
		assert.True(t, config.Tracing.Enabled)
	})

	t.Run("template", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, fixtures.ConfigTemplate, 0o600))

		config, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, ze.APIVersion1_14, config.Loader.APIVersion)
		assert.Len(t, config.EnabledDrivers(), 1)
	})

	t.Run("non-existent file", func(t *testing.T) {
		_, err := LoadConfig("non-existent-file.yaml")
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		dir, err := os.Getwd()
		require.NoError(t, err)

		configPath := filepath.Join(dir, "..", "..", "fixtures", "tests", "invalid_config", "config.yaml")
		_, err = LoadConfig(configPath)
		assert.Error(t, err)
	})

	t.Run("invalid api version", func(t *testing.T) {
		_, err := LoadConfig("../../fixtures/tests/config/invalid_version.yaml")
		assert.ErrorContains(t, err, "invalid api version")
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := LoadConfig("../../fixtures/tests/config/invalid_values.yaml")
		require.Error(t, err)
		assert.Len(t, multierr.Errors(errors.Unwrap(err)), 5)
	})
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "default",
			mutate: func(*Config) {},
		},
		{
			name:    "bad verbosity",
			mutate:  func(c *Config) { c.Logger.Verbosity = "chatty" },
			wantErr: "logger.verbosity",
		},
		{
			name:    "missing version",
			mutate:  func(c *Config) { c.Loader.APIVersion = 0 },
			wantErr: "loader.apiVersion",
		},
		{
			name: "duplicate driver",
			mutate: func(c *Config) {
				c.Loader.Drivers = append(c.Loader.Drivers, DriverConfig{Name: "cpu"})
			},
			wantErr: "duplicate driver",
		},
		{
			name: "metrics without namespace",
			mutate: func(c *Config) {
				c.Metrics.Enabled = true
				c.Metrics.Namespace = ""
			},
			wantErr: "metrics.namespace",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
