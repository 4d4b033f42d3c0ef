// Package config provides centralized configuration management for csvclean.
// Settings come from struct-tag defaults, an optional YAML file, and
// environment variables, in increasing order of precedence, and are
// validated before use so a misconfiguration fails before any file is read.
package config

import "time"

// Config holds all application configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Cleaner CleanerConfig `yaml:"cleaner"`
	History HistoryConfig `yaml:"history"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: warn)
	Level string `yaml:"level" env:"LOG_LEVEL" default:"warn"`

	// Format is the log format: text or json (default: text)
	Format string `yaml:"format" env:"LOG_FORMAT" default:"text"`
}

// CleanerConfig holds settings for the cleaning run itself.
type CleanerConfig struct {
	// StrictExit maps each failure kind to a distinct non-zero exit code
	// instead of always exiting 0 (default: false)
	StrictExit bool `yaml:"strict_exit" env:"CSVCLEAN_STRICT_EXIT" default:"false"`

	// MaxFileSize is the largest input accepted in bytes, 0 for no limit
	// (default: 1GiB)
	MaxFileSize int64 `yaml:"max_file_size" env:"CSVCLEAN_MAX_FILE_SIZE" default:"1073741824"`
}

// HistoryConfig holds run history settings. History is recorded only when
// URL is set.
type HistoryConfig struct {
	// URL is the PostgreSQL connection string for the run history table.
	// Supports both CSVCLEAN_HISTORY_URL and CSVCLEAN_DATABASE_URL.
	URL string `yaml:"url" env:"CSVCLEAN_HISTORY_URL" envAlt:"CSVCLEAN_DATABASE_URL"`

	// Table is the history table name (default: csvclean_runs)
	Table string `yaml:"table" env:"CSVCLEAN_HISTORY_TABLE" default:"csvclean_runs"`

	// Timeout bounds connecting and recording one run (default: 5s)
	Timeout time.Duration `yaml:"timeout" env:"CSVCLEAN_HISTORY_TIMEOUT" default:"5s"`
}

// Enabled reports whether run history should be recorded.
func (c *HistoryConfig) Enabled() bool {
	return c.URL != ""
}
