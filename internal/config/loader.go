package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// identifierRegex matches plain, unquoted SQL identifiers.
var identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Load builds the configuration: struct-tag defaults first, then the YAML
// file at path (skipped when path is empty), then environment variables.
// The result is validated before it is returned.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if err := walkStruct(reflect.ValueOf(cfg).Elem(), applyDefault); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}

	if path != "" {
		if err := LoadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := walkStruct(reflect.ValueOf(cfg).Elem(), applyEnv); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// LoadFile decodes the YAML file at path over cfg. Keys absent from the file
// keep their current values; unknown keys are an error.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

type fieldFunc func(field reflect.StructField, value reflect.Value) error

// walkStruct calls fn for every settable leaf field, recursing into nested
// structs.
func walkStruct(v reflect.Value, fn fieldFunc) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := v.Field(i)

		// Skip unexported fields
		if !fieldVal.CanSet() {
			continue
		}

		if field.Type.Kind() == reflect.Struct {
			if err := walkStruct(fieldVal, fn); err != nil {
				return err
			}
			continue
		}

		if err := fn(field, fieldVal); err != nil {
			return err
		}
	}

	return nil
}

func applyDefault(field reflect.StructField, value reflect.Value) error {
	def := field.Tag.Get("default")
	if def == "" {
		return nil
	}
	if err := setField(value, def); err != nil {
		return fmt.Errorf("invalid default for %s=%q: %w", field.Name, def, err)
	}
	return nil
}

func applyEnv(field reflect.StructField, value reflect.Value) error {
	envName := field.Tag.Get("env")
	if envName == "" {
		return nil
	}

	// Try primary env var, then alternate
	raw := os.Getenv(envName)
	if alt := field.Tag.Get("envAlt"); raw == "" && alt != "" {
		raw = os.Getenv(alt)
	}
	if raw == "" {
		return nil
	}

	if err := setField(value, raw); err != nil {
		return fmt.Errorf("invalid value for %s=%q: %w", envName, raw, err)
	}
	return nil
}

// setField sets a reflect.Value from a string based on its type.
func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int64:
		// Handle time.Duration specially
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			d, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("invalid duration: %w", err)
			}
			field.Set(reflect.ValueOf(d))
		} else {
			i, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer: %w", err)
			}
			field.SetInt(i)
		}

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %w", err)
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	// Logging validation
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	// Cleaner validation
	if c.Cleaner.MaxFileSize < 0 {
		errs = append(errs, "CSVCLEAN_MAX_FILE_SIZE must be non-negative")
	}

	// History validation
	if c.History.Enabled() {
		if c.History.Timeout <= 0 {
			errs = append(errs, "CSVCLEAN_HISTORY_TIMEOUT must be positive when history is enabled")
		}
		if !identifierRegex.MatchString(c.History.Table) {
			errs = append(errs, fmt.Sprintf("CSVCLEAN_HISTORY_TABLE (%q) must be a plain SQL identifier", c.History.Table))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a safe string representation of the config for logging.
// The history database URL is masked.
func (c *Config) String() string {
	url := ""
	if c.History.URL != "" {
		url = "[MASKED]"
	}

	var b strings.Builder
	b.WriteString("Config{")
	b.WriteString(fmt.Sprintf("Logging: {Level: %q, Format: %q}, ",
		c.Logging.Level, c.Logging.Format))
	b.WriteString(fmt.Sprintf("Cleaner: {StrictExit: %v, MaxFileSize: %d}, ",
		c.Cleaner.StrictExit, c.Cleaner.MaxFileSize))
	b.WriteString(fmt.Sprintf("History: {URL: %s, Table: %q, Timeout: %s}",
		url, c.History.Table, c.History.Timeout))
	b.WriteString("}")
	return b.String()
}
