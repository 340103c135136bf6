package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// ConfigEnv names an explicit TOML config file.
	ConfigEnv = "TASKS_CONFIG"
	// DefaultConfigFile is read from the working directory when present.
	DefaultConfigFile = "tasks.toml"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config     *Config
	configFile string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// WithConfigFile sets an explicit config file, which must exist.
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configFile = path
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the TOML config file, if any
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	path, required := l.findConfigFile()
	if path != "" {
		if err := loadConfigFile(l.config, path, required); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	if config.Storage.Backend == BackendSQLite && config.Storage.Filename == DefaultFilename {
		config.Storage.Filename = DefaultSQLiteFilename
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// findConfigFile returns the file to read and whether it must exist.
func (l *Loader) findConfigFile() (string, bool) {
	if l.configFile != "" {
		return l.configFile, true
	}
	if path := os.Getenv(ConfigEnv); path != "" {
		return path, true
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile, false
	}
	return "", false
}

func loadConfigFile(cfg *Config, path string, required bool) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return err
	}
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	DataDir  *string
	Filename *string
	Backend  *string

	TimeFormat *string

	TaskDataMaxLength *int

	Color       *bool
	RelativeDue *bool

	Timeout *time.Duration
	Verbose *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.DataDir != nil {
		config.Storage.DataDir = *overrides.DataDir
	}
	if overrides.Filename != nil {
		config.Storage.Filename = *overrides.Filename
	}
	if overrides.Backend != nil {
		config.Storage.Backend = *overrides.Backend
	}

	if overrides.TimeFormat != nil {
		config.Time.DisplayFormat = *overrides.TimeFormat
	}

	if overrides.TaskDataMaxLength != nil {
		config.Validation.TaskDataMaxLength = *overrides.TaskDataMaxLength
	}

	if overrides.Color != nil {
		config.Display.Color = *overrides.Color
	}
	if overrides.RelativeDue != nil {
		config.Display.RelativeDue = *overrides.RelativeDue
	}

	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
