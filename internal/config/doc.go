// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for logdiff.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - CompareConfig: Persisted comparison inputs (paths, pattern)
//   - WatchConfig: File-watch behavior
//   - HistoryConfig: Run and pattern history settings
//   - UIConfig: Viewer appearance and behavior
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (LOGDIFF_*)
//   - ~/.logdiff/config.toml
//   - ~/.logdiff/config.json
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	pattern := cfg.Compare.Pattern
//	debounce := cfg.Watch.DebounceMs
package config
