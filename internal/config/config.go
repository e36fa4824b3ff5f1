package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DriverConfig selects a driver to load at startup.
type DriverConfig struct {
	Name    string `yaml:"name"`
	Enabled *bool  `yaml:"enabled,omitempty"`
	// APIVersion overrides the loader ceiling for this driver.
	APIVersion ze.APIVersion `yaml:"apiVersion,omitempty"`
}

// IsEnabled reports whether the driver should be loaded. Drivers are enabled
// unless explicitly disabled.
func (d DriverConfig) IsEnabled() bool {
	return d.Enabled == nil || *d.Enabled
}

type Config struct {
	Logger struct {
		Verbosity string `yaml:"verbosity"`
		Encoding  string `yaml:"encoding"`
	} `yaml:"logger"`
	Loader struct {
		APIVersion         ze.APIVersion  `yaml:"apiVersion"`
		StrictHandleArrays bool           `yaml:"strictHandleArrays"`
		Drivers            []DriverConfig `yaml:"drivers"`
	} `yaml:"loader"`
	Tracing struct {
		Enabled    bool `yaml:"enabled"`
		DumpParams bool `yaml:"dumpParams"`
	} `yaml:"tracing"`
	Metrics struct {
		Enabled   bool   `yaml:"enabled"`
		Namespace string `yaml:"namespace"`
		// ListenAddress serves /metrics when set, e.g. ":9464".
		ListenAddress string `yaml:"listenAddress"`
	} `yaml:"metrics"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.Logger.Verbosity = "info"
	cfg.Logger.Encoding = "json"
	cfg.Loader.APIVersion = ze.APIVersionCurrent
	cfg.Loader.Drivers = []DriverConfig{{Name: "cpu"}}
	cfg.Metrics.Namespace = "zeloader"
	return &cfg
}

// LoadConfig reads the YAML file at path over the defaults and validates
// the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := Default()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Validate reports every problem found in the configuration.
func (c *Config) Validate() error {
	var errs error
	if _, err := zap.ParseAtomicLevel(c.Logger.Verbosity); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("logger.verbosity: %w", err))
	}
	switch c.Logger.Encoding {
	case "", "json", "console":
	default:
		errs = multierr.Append(errs, fmt.Errorf("logger.encoding: unknown encoding %q", c.Logger.Encoding))
	}
	if c.Loader.APIVersion == 0 {
		errs = multierr.Append(errs, errors.New("loader.apiVersion: must be set"))
	}
	seen := make(map[string]bool, len(c.Loader.Drivers))
	for i, drv := range c.Loader.Drivers {
		if drv.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("loader.drivers[%d]: name is required", i))
			continue
		}
		if seen[drv.Name] {
			errs = multierr.Append(errs, fmt.Errorf("loader.drivers[%d]: duplicate driver %q", i, drv.Name))
		}
		seen[drv.Name] = true
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		errs = multierr.Append(errs, errors.New("metrics.namespace: required when metrics are enabled"))
	}
	return errs
}

// EnabledDrivers returns the drivers to load, in configuration order.
func (c *Config) EnabledDrivers() []DriverConfig {
	var out []DriverConfig
	for _, drv := range c.Loader.Drivers {
		if drv.IsEnabled() {
			out = append(out, drv)
		}
	}
	return out
}
