// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for athena.
//
// Configuration is stored as TOML, with sensible defaults, environment
// variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure
//   - StorageConfig: Task file location
//   - UIConfig: REPL and TUI settings
//   - LogConfig: Log level and file
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Command line flags (applied by the cli package)
//   - Environment variables (ATHENA_*)
//   - ~/.athena/config.toml
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//
// Access settings:
//
//	store := storage.NewStore(cfg.Storage.DataDir, cfg.Storage.FileName)
package config
