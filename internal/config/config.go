// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/athena/internal/storage"
	"github.com/jeranaias/athena/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete athena configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
}

// StorageConfig controls where the task list is kept.
type StorageConfig struct {
	// DataDir holds the task file and the log file. Relative paths are
	// resolved against the working directory.
	DataDir string `toml:"data_dir"`
	// FileName is the task file inside DataDir
	FileName string `toml:"file_name"`
}

// UIConfig contains front-end settings.
type UIConfig struct {
	// AssistantName prefixes every response in the REPL
	AssistantName string `toml:"assistant_name"`
	// Prompt is shown before each input line
	Prompt string `toml:"prompt"`
	// Color is "auto", "always" or "never"
	Color string `toml:"color"`
	// History enables persistent line history in the REPL
	History bool `toml:"history"`
	// HistoryFile is relative to the config directory unless absolute
	HistoryFile string `toml:"history_file"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is "debug", "info", "warn" or "error"
	Level string `toml:"level"`
	// File is relative to Storage.DataDir unless absolute; empty disables logging
	File string `toml:"file"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			DataDir:  storage.DefaultDir,
			FileName: storage.DefaultFileName,
		},
		UI: UIConfig{
			AssistantName: "Athena",
			Prompt:        "> ",
			Color:         "auto",
			History:       true,
			HistoryFile:   "history",
		},
		Log: LogConfig{
			Level: "info",
			File:  "athena.log",
		},
	}
}

// SetDefaults fills in empty values. Booleans are left alone since false is
// a valid choice.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Storage.DataDir == "" {
		c.Storage.DataDir = defaults.Storage.DataDir
	}
	if c.Storage.FileName == "" {
		c.Storage.FileName = defaults.Storage.FileName
	}
	if c.UI.AssistantName == "" {
		c.UI.AssistantName = defaults.UI.AssistantName
	}
	if c.UI.Prompt == "" {
		c.UI.Prompt = defaults.UI.Prompt
	}
	if c.UI.Color == "" {
		c.UI.Color = defaults.UI.Color
	}
	if c.UI.HistoryFile == "" {
		c.UI.HistoryFile = defaults.UI.HistoryFile
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the athena configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".athena"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// SavePath returns the task file location.
func (c *Config) SavePath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.FileName)
}

// LogPath returns the log file location, or "" when logging to a file is
// disabled.
func (c *Config) LogPath() string {
	if c.Log.File == "" {
		return ""
	}
	if filepath.IsAbs(c.Log.File) {
		return c.Log.File
	}
	return filepath.Join(c.Storage.DataDir, c.Log.File)
}

// HistoryPath returns the REPL history file location, or "" when history is
// disabled or no config directory can be determined.
func (c *Config) HistoryPath() string {
	if !c.UI.History || c.UI.HistoryFile == "" {
		return ""
	}
	if filepath.IsAbs(c.UI.HistoryFile) {
		return c.UI.HistoryFile
	}
	dir, err := ConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, c.UI.HistoryFile)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads ~/.athena/config.toml, falling back to defaults when the file
// does not exist. Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		cfg := Default()
		cfg.ApplyEnvOverrides()
		return cfg, cfg.Validate()
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific file path with full
// validation. A missing file yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file into cfg. Keys absent from the file keep their
// current values; unknown keys are rejected.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes the configuration to ~/.athena/config.toml.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration to path atomically.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# athena configuration file\n")
	buf.WriteString("# Generated by athena - edit with care\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	// RELIABILITY: Atomic write with fsync prevents data loss on crash
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns ValidateErrors if any
// field is unusable.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if strings.TrimSpace(c.Storage.DataDir) == "" {
		errs = append(errs, ValidationError{Field: "storage.data_dir", Message: "must not be empty"})
	}

	switch name := c.Storage.FileName; {
	case strings.TrimSpace(name) == "":
		errs = append(errs, ValidationError{Field: "storage.file_name", Message: "must not be empty"})
	case name != filepath.Base(name):
		errs = append(errs, ValidationError{
			Field:   "storage.file_name",
			Message: fmt.Sprintf("'%s' must be a plain file name, set storage.data_dir for the directory", name),
		})
	}

	validColors := map[string]bool{"auto": true, "always": true, "never": true}
	if !validColors[strings.ToLower(c.UI.Color)] {
		errs = append(errs, ValidationError{
			Field:   "ui.color",
			Message: fmt.Sprintf("invalid value '%s', must be one of: auto, always, never", c.UI.Color),
		})
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides:
//   - ATHENA_DATA_DIR: overrides storage.data_dir
//   - ATHENA_SAVE_FILE: overrides storage.file_name
//   - ATHENA_LOG_LEVEL: overrides log.level
//   - NO_COLOR: forces ui.color to "never"
func (c *Config) ApplyEnvOverrides() {
	if dir := os.Getenv("ATHENA_DATA_DIR"); dir != "" {
		c.Storage.DataDir = dir
	}
	if file := os.Getenv("ATHENA_SAVE_FILE"); file != "" {
		c.Storage.FileName = file
	}
	if level := os.Getenv("ATHENA_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.UI.Color = "never"
	}
}

// =============================================================================
// GET HELPER (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value by its TOML key, e.g. "storage.data_dir".
func (c *Config) Get(key string) (interface{}, error) {
	if key == "" {
		return nil, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		field, ok := fieldByTag(v, part)
		if !ok {
			return nil, fmt.Errorf("unknown key: %s", strings.Join(parts[:i+1], "."))
		}
		if i == len(parts)-1 {
			return field.Interface(), nil
		}
		if field.Kind() != reflect.Struct {
			return nil, fmt.Errorf("key '%s' is not a table", strings.Join(parts[:i+1], "."))
		}
		v = field
	}
	return nil, fmt.Errorf("invalid key: %s", key)
}

// Keys returns every leaf key in dot notation, sorted.
func Keys() []string {
	var keys []string
	var walk func(t reflect.Type, prefix string)
	walk = func(t reflect.Type, prefix string) {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			name := prefix + f.Tag.Get("toml")
			if f.Type.Kind() == reflect.Struct {
				walk(f.Type, name+".")
				continue
			}
			keys = append(keys, name)
		}
	}
	walk(reflect.TypeOf(Config{}), "")
	sort.Strings(keys)
	return keys
}

func fieldByTag(v reflect.Value, tag string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("toml") == tag {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// FormatValue renders a value returned by Get for display.
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return strconv.Quote(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

// String renders the configuration as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return buf.String()
}
