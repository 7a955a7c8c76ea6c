// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/BurntSushi/toml"
)

// TestConfig_ConcurrentAccess tests that Global(), SetGlobal(), and ReloadGlobal()
// can be safely called concurrently without race conditions.
// Run with: go test -race -v ./internal/config/
func TestConfig_ConcurrentAccess(t *testing.T) {
	ResetGlobalForTesting()

	var wg sync.WaitGroup

	// 50 writers using SetGlobal, 50 readers using Global
	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			c := Default()
			c.Version = "test"
			SetGlobal(c)
		}()

		go func() {
			defer wg.Done()
			cfg := Global()
			if cfg == nil {
				t.Error("Global() returned nil")
			}
		}()
	}

	wg.Wait()
}

// TestConfig_ConcurrentMixedOperations tests a mix of all global operations
// happening concurrently.
func TestConfig_ConcurrentMixedOperations(t *testing.T) {
	ResetGlobalForTesting()

	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		switch i % 3 {
		case 0:
			go func() {
				defer wg.Done()
				cfg := Global()
				if cfg == nil {
					t.Error("Global() returned nil")
				}
			}()
		case 1:
			go func() {
				defer wg.Done()
				c := Default()
				c.Version = "concurrent-test"
				SetGlobal(c)
			}()
		case 2:
			go func() {
				defer wg.Done()
				_ = ReloadGlobal()
			}()
		}
	}

	wg.Wait()
}

// TestConfig_GlobalInitialization tests that Global() properly initializes
// the config on first access.
func TestConfig_GlobalInitialization(t *testing.T) {
	ResetGlobalForTesting()

	cfg := Global()
	if cfg == nil {
		t.Fatal("Global() returned nil")
	}

	if cfg.Version == "" {
		t.Error("Config version should not be empty")
	}
	if cfg.UI.Theme == "" {
		t.Error("UI theme should not be empty")
	}
}

// TestConfig_SetGlobalOverwrites tests that SetGlobal properly overwrites
// the existing global config.
func TestConfig_SetGlobalOverwrites(t *testing.T) {
	ResetGlobalForTesting()

	_ = Global()

	customCfg := Default()
	customCfg.Version = "custom-version"
	customCfg.Compare.Pattern = `\d{2}:\d{2}`
	SetGlobal(customCfg)

	result := Global()
	if result.Version != "custom-version" {
		t.Errorf("Expected version 'custom-version', got '%s'", result.Version)
	}
	if result.Compare.Pattern != `\d{2}:\d{2}` {
		t.Errorf("Expected custom pattern, got '%s'", result.Compare.Pattern)
	}
}

// TestConfig_Default tests that Default() returns a valid config with defaults.
func TestConfig_Default(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	if cfg.Version == "" {
		t.Error("Default config should have a version")
	}
	if cfg.Watch.DebounceMs == 0 {
		t.Error("Default config should have a watch debounce")
	}
	if cfg.History.MaxEntries == 0 {
		t.Error("Default config should bound history size")
	}
	if cfg.Export.Format != "text" {
		t.Errorf("Expected default export format 'text', got '%s'", cfg.Export.Format)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

// TestConfig_Validate tests configuration validation.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "empty pattern is valid",
			mutate:  func(c *Config) { c.Compare.Pattern = "" },
			wantErr: false,
		},
		{
			name:    "valid pattern",
			mutate:  func(c *Config) { c.Compare.Pattern = `\[\d{2}:\d{2}\] ` },
			wantErr: false,
		},
		{
			name:    "invalid pattern",
			mutate:  func(c *Config) { c.Compare.Pattern = "[" },
			wantErr: true,
		},
		{
			name:    "negative debounce",
			mutate:  func(c *Config) { c.Watch.DebounceMs = -1 },
			wantErr: true,
		},
		{
			name:    "excessive debounce",
			mutate:  func(c *Config) { c.Watch.DebounceMs = 60000 },
			wantErr: true,
		},
		{
			name:    "zero poll interval",
			mutate:  func(c *Config) { c.Watch.PollIntervalSecs = 0 },
			wantErr: true,
		},
		{
			name:    "negative history bound",
			mutate:  func(c *Config) { c.History.MaxEntries = -1 },
			wantErr: true,
		},
		{
			name:    "invalid export format",
			mutate:  func(c *Config) { c.Export.Format = "pdf" },
			wantErr: true,
		},
		{
			name:    "invalid theme",
			mutate:  func(c *Config) { c.UI.Theme = "invalid" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestConfig_Migrate tests legacy value migration.
func TestConfig_Migrate(t *testing.T) {
	cfg := Default()
	cfg.Export.Format = "txt"
	cfg.UI.Theme = "default"

	if err := cfg.Migrate(); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	if cfg.Export.Format != "text" {
		t.Errorf("Expected 'txt' migrated to 'text', got '%s'", cfg.Export.Format)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("Expected 'default' migrated to 'dark', got '%s'", cfg.UI.Theme)
	}
}

// TestConfig_GetSet tests Get and Set methods with dot notation.
func TestConfig_GetSet(t *testing.T) {
	cfg := Default()

	val, err := cfg.Get("ui.theme")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if val != "dark" {
		t.Errorf("Get('ui.theme') = %v, want 'dark'", val)
	}

	err = cfg.Set("compare.pattern", `\d{4}-\d{2}-\d{2}`)
	if err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	val, _ = cfg.Get("compare.pattern")
	if val != `\d{4}-\d{2}-\d{2}` {
		t.Errorf("Get('compare.pattern') after Set = %v", val)
	}

	// String-to-int conversion on Set
	if err := cfg.Set("watch.debounce_ms", "500"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if cfg.Watch.DebounceMs != 500 {
		t.Errorf("Expected debounce 500, got %d", cfg.Watch.DebounceMs)
	}

	// String-to-bool conversion on Set
	if err := cfg.Set("watch.enabled", "true"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if !cfg.Watch.Enabled {
		t.Error("Expected watch enabled after Set")
	}

	_, err = cfg.Get("invalid.key")
	if err == nil {
		t.Error("Get() with invalid key should return error")
	}
}

// TestConfig_GetAllKeys verifies every advertised key resolves.
func TestConfig_GetAllKeys(t *testing.T) {
	cfg := Default()
	for _, key := range GetAllKeys() {
		if _, err := cfg.Get(key); err != nil {
			t.Errorf("Get(%q) failed: %v", key, err)
		}
	}
}

// TestConfig_Clone tests that Clone creates an independent copy.
func TestConfig_Clone(t *testing.T) {
	original := Default()
	original.Version = "original"

	clone := original.Clone()
	clone.Version = "cloned"

	if original.Version != "original" {
		t.Error("Clone should create an independent copy")
	}
	if clone.Version != "cloned" {
		t.Error("Clone version should be modified")
	}
}

// TestConfig_Merge tests merging two configs.
func TestConfig_Merge(t *testing.T) {
	base := Default()
	base.Version = "base"

	other := &Config{
		Version: "merged",
		Compare: CompareConfig{
			LeftPath: "/var/log/new-left.log",
		},
	}

	base.Merge(other)

	if base.Version != "merged" {
		t.Errorf("Merge should overwrite Version, got '%s'", base.Version)
	}
	if base.Compare.LeftPath != "/var/log/new-left.log" {
		t.Errorf("Merge should overwrite LeftPath, got '%s'", base.Compare.LeftPath)
	}
	// Verify non-overwritten values remain
	if base.UI.Theme != "dark" {
		t.Error("Merge should not overwrite unset fields")
	}
}

// TestConfig_EnvOverrides tests LOGDIFF_* environment overrides.
func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("LOGDIFF_LEFT", "/tmp/env-left.log")
	t.Setenv("LOGDIFF_PATTERN", `\d{2}:\d{2}`)
	t.Setenv("LOGDIFF_WATCH", "1")
	t.Setenv("LOGDIFF_NO_HISTORY", "true")
	t.Setenv("LOGDIFF_THEME", "light")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Compare.LeftPath != "/tmp/env-left.log" {
		t.Errorf("Expected env left path, got '%s'", cfg.Compare.LeftPath)
	}
	if cfg.Compare.Pattern != `\d{2}:\d{2}` {
		t.Errorf("Expected env pattern, got '%s'", cfg.Compare.Pattern)
	}
	if !cfg.Watch.Enabled {
		t.Error("Expected watch enabled from env")
	}
	if cfg.History.Enabled {
		t.Error("Expected history disabled from env")
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("Expected light theme from env, got '%s'", cfg.UI.Theme)
	}
}

// TestConfig_SaveLoadRoundTrip tests TOML save and reload.
func TestConfig_SaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := Default()
	cfg.Compare.LeftPath = "/var/log/a.log"
	cfg.Compare.RightPath = "/var/log/b.log"
	cfg.Compare.Pattern = `\[\d{2}:\d{2}:\d{2}\] `
	cfg.Watch.Enabled = true

	// Encode directly to keep the test inside the temp dir; SaveTOML
	// targets the user config dir.
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		file.Close()
		t.Fatalf("encode: %v", err)
	}
	file.Close()

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}

	if loaded.Compare.LeftPath != cfg.Compare.LeftPath {
		t.Errorf("LeftPath round trip failed: %s", loaded.Compare.LeftPath)
	}
	if loaded.Compare.Pattern != cfg.Compare.Pattern {
		t.Errorf("Pattern round trip failed: %s", loaded.Compare.Pattern)
	}
	if !loaded.Watch.Enabled {
		t.Error("Watch.Enabled round trip failed")
	}
}

// TestConfig_LoadFromPath_JSON tests JSON loading with validation.
func TestConfig_LoadFromPath_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	content := `{"compare": {"pattern": "\\d{2}:\\d{2}"}, "ui": {"theme": "light"}}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if loaded.Compare.Pattern != `\d{2}:\d{2}` {
		t.Errorf("Expected pattern from JSON, got '%s'", loaded.Compare.Pattern)
	}
	if loaded.UI.Theme != "light" {
		t.Errorf("Expected light theme, got '%s'", loaded.UI.Theme)
	}
	// Missing fields filled from defaults
	if loaded.Watch.DebounceMs == 0 {
		t.Error("Expected default debounce for missing field")
	}
}

// TestConfig_LoadFromPath_InvalidPattern rejects configs whose pattern does
// not compile.
func TestConfig_LoadFromPath_InvalidPattern(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := os.WriteFile(path, []byte(`{"compare": {"pattern": "["}}`), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Error("Expected error for invalid pattern in config")
	}
}
