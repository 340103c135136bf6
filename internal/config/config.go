package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"

	DefaultDataDir        = "data"
	DefaultFilename       = "tasklist.md"
	DefaultSQLiteFilename = "tasklist.db"
)

// Config holds all configuration options for the task list application
type Config struct {
	Storage     StorageConfig     `toml:"storage"`
	Time        TimeConfig        `toml:"time"`
	Validation  ValidationConfig  `toml:"validation"`
	Display     DisplayConfig     `toml:"display"`
	Application ApplicationConfig `toml:"application"`
}

// StorageConfig holds where and how the task list is persisted
type StorageConfig struct {
	DataDir         string `toml:"data_dir" env:"TASKS_DATA_DIR"`
	Filename        string `toml:"filename" env:"TASKS_FILE"`
	Backend         string `toml:"backend" env:"TASKS_BACKEND"`
	DirPermissions  uint32 `toml:"dir_permissions" env:"TASKS_DIR_PERMISSIONS"`
	FilePermissions uint32 `toml:"file_permissions" env:"TASKS_FILE_PERMISSIONS"`
}

// TimeConfig holds time formatting configuration
type TimeConfig struct {
	DisplayFormat string `toml:"display_format" env:"TASKS_TIME_DISPLAY_FORMAT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TaskDataMaxLength int `toml:"task_data_max_length" env:"TASKS_VALIDATION_MAX_LENGTH"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	Color       bool `toml:"color" env:"TASKS_DISPLAY_COLOR"`
	RelativeDue bool `toml:"relative_due" env:"TASKS_DISPLAY_RELATIVE_DUE"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `toml:"timeout" env:"TASKS_APP_TIMEOUT"`
	Verbose bool          `toml:"verbose" env:"TASKS_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			DataDir:         DefaultDataDir,
			Filename:        DefaultFilename,
			Backend:         BackendFile,
			DirPermissions:  0755,
			FilePermissions: 0644,
		},
		Time: TimeConfig{
			DisplayFormat: "2006-01-02 15:04:05 -0700",
		},
		Validation: ValidationConfig{
			TaskDataMaxLength: 1024,
		},
		Display: DisplayConfig{
			Color:       true,
			RelativeDue: true,
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
		},
	}
}

// GetTaskListPath returns the full path to the task list
func (c *Config) GetTaskListPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("TASKS_DATA_DIR"); dir != "" {
		c.Storage.DataDir = dir
	}
	if filename := os.Getenv("TASKS_FILE"); filename != "" {
		c.Storage.Filename = filename
	}
	if backend := os.Getenv("TASKS_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if perms := os.Getenv("TASKS_DIR_PERMISSIONS"); perms != "" {
		c.Storage.DirPermissions = ParseUint32WithFallback(perms, 8, c.Storage.DirPermissions)
	}
	if perms := os.Getenv("TASKS_FILE_PERMISSIONS"); perms != "" {
		c.Storage.FilePermissions = ParseUint32WithFallback(perms, 8, c.Storage.FilePermissions)
	}

	if format := os.Getenv("TASKS_TIME_DISPLAY_FORMAT"); format != "" {
		c.Time.DisplayFormat = format
	}

	if maxLen := os.Getenv("TASKS_VALIDATION_MAX_LENGTH"); maxLen != "" {
		c.Validation.TaskDataMaxLength = ParseIntWithFallback(maxLen, c.Validation.TaskDataMaxLength)
	}

	if color := os.Getenv("TASKS_DISPLAY_COLOR"); color != "" {
		c.Display.Color = ParseBoolWithFallback(color, c.Display.Color)
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.Display.Color = false
	}
	if relative := os.Getenv("TASKS_DISPLAY_RELATIVE_DUE"); relative != "" {
		c.Display.RelativeDue = ParseBoolWithFallback(relative, c.Display.RelativeDue)
	}

	if timeout := os.Getenv("TASKS_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("TASKS_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.DataDir == "" {
		return &ConfigError{Field: "storage.data_dir", Message: "data directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "filename cannot be empty"}
	}
	if c.Storage.Backend != BackendFile && c.Storage.Backend != BackendSQLite {
		return &ConfigError{Field: "storage.backend", Message: "backend must be \"file\" or \"sqlite\", got " + strconv.Quote(c.Storage.Backend)}
	}
	if c.Storage.DirPermissions == 0 || c.Storage.DirPermissions > 0777 {
		return &ConfigError{Field: "storage.dir_permissions", Message: "directory permissions must be between 0001 and 0777"}
	}
	if c.Storage.FilePermissions == 0 || c.Storage.FilePermissions > 0777 {
		return &ConfigError{Field: "storage.file_permissions", Message: "file permissions must be between 0001 and 0777"}
	}

	if c.Time.DisplayFormat == "" {
		return &ConfigError{Field: "time.display_format", Message: "display format cannot be empty"}
	}

	if c.Validation.TaskDataMaxLength < 1 {
		return &ConfigError{Field: "validation.task_data_max_length", Message: "maximum description length must be at least 1"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
