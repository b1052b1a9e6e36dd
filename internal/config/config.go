// Package config loads the host runner configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config controls the host runner. The kernel constants themselves (page
// size, pool size, syscall numbers) are not configurable.
type Config struct {
	// TickIntervalMS is the timer interrupt period in milliseconds.
	TickIntervalMS int `yaml:"tickIntervalMs"`
	// LogLevel is one of DEBUG, INFO, WARN, ERROR.
	LogLevel string `yaml:"logLevel"`
	// LogFile mirrors log output to a file when non-empty.
	LogFile string `yaml:"logFile"`
	// Trace enables syscall span export.
	Trace bool `yaml:"trace"`
	// TraceOutput is the span output file; empty means stdout.
	TraceOutput string `yaml:"traceOutput"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		TickIntervalMS: 100,
		LogLevel:       "INFO",
	}
}

// Interval returns the timer period as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.TickIntervalMS) * time.Millisecond
}

// Load reads a YAML config file over the defaults. A missing file is not an
// error: the defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.TickIntervalMS <= 0 {
		return nil, fmt.Errorf("config %s: tickIntervalMs must be positive", path)
	}
	return cfg, nil
}
