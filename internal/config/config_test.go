// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.API.Model != "meta-llama/llama-4-maverick:free" {
		t.Errorf("default model = %q", cfg.API.Model)
	}
	if cfg.API.MaxTokens != 600 {
		t.Errorf("default max_tokens = %d, want 600", cfg.API.MaxTokens)
	}
	if cfg.API.BaseURL == "" {
		t.Error("default base_url should not be empty")
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("default theme = %q, want dark", cfg.UI.Theme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadTOML_FillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	// Partial config: only the key is set, everything else should
	// come from defaults.
	content := "[api]\nkey = \"sk-or-partial\"\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{}
	if err := LoadTOML(cfg, path); err != nil {
		t.Fatalf("LoadTOML() error: %v", err)
	}

	if cfg.API.Key != "sk-or-partial" {
		t.Errorf("api.key = %q, want sk-or-partial", cfg.API.Key)
	}
	if cfg.API.Model != Default().API.Model {
		t.Errorf("api.model = %q, want default", cfg.API.Model)
	}
	if cfg.API.MaxTokens != 600 {
		t.Errorf("api.max_tokens = %d, want 600", cfg.API.MaxTokens)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("ui.theme = %q, want dark", cfg.UI.Theme)
	}
}

func TestLoadTOML_FixesInsecurePermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte("version = \"1.0.0\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{}
	if err := LoadTOML(cfg, path); err != nil {
		t.Fatalf("LoadTOML() error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config file permissions = %o, want 0600", perm)
	}
}

func TestSaveTOML_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	cfg := Default()
	cfg.API.Key = "sk-or-roundtrip"
	cfg.API.Model = "some/other-model"
	cfg.Export.OutputDir = "/tmp/recipes"

	if err := SaveTOML(cfg, path); err != nil {
		t.Fatalf("SaveTOML() error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("saved config missing: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("saved config permissions = %o, want 0600", perm)
	}

	loaded := &Config{}
	if err := LoadTOML(loaded, path); err != nil {
		t.Fatalf("LoadTOML() error: %v", err)
	}
	if loaded.API.Key != cfg.API.Key {
		t.Errorf("api.key = %q, want %q", loaded.API.Key, cfg.API.Key)
	}
	if loaded.API.Model != cfg.API.Model {
		t.Errorf("api.model = %q, want %q", loaded.API.Model, cfg.API.Model)
	}
	if loaded.Export.OutputDir != cfg.Export.OutputDir {
		t.Errorf("export.output_dir = %q, want %q", loaded.Export.OutputDir, cfg.Export.OutputDir)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := Default()
	cfg.API.Key = "sk-or-json"
	if err := SaveJSON(cfg, path); err != nil {
		t.Fatalf("SaveJSON() error: %v", err)
	}

	loaded := &Config{}
	if err := LoadJSON(loaded, path); err != nil {
		t.Fatalf("LoadJSON() error: %v", err)
	}
	if loaded.API.Key != "sk-or-json" {
		t.Errorf("api.key = %q, want sk-or-json", loaded.API.Key)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("PLATEFUL_API_KEY", "sk-or-from-env")
	t.Setenv("PLATEFUL_MODEL", "env/model")
	t.Setenv("PLATEFUL_BASE_URL", "https://example.com/v1/chat/completions")
	t.Setenv("PLATEFUL_MAX_TOKENS", "1200")
	t.Setenv("PLATEFUL_OUTPUT_DIR", "/tmp/out")
	t.Setenv("PLATEFUL_THEME", "light")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.API.Key != "sk-or-from-env" {
		t.Errorf("api.key = %q", cfg.API.Key)
	}
	if cfg.API.Model != "env/model" {
		t.Errorf("api.model = %q", cfg.API.Model)
	}
	if cfg.API.BaseURL != "https://example.com/v1/chat/completions" {
		t.Errorf("api.base_url = %q", cfg.API.BaseURL)
	}
	if cfg.API.MaxTokens != 1200 {
		t.Errorf("api.max_tokens = %d", cfg.API.MaxTokens)
	}
	if cfg.Export.OutputDir != "/tmp/out" {
		t.Errorf("export.output_dir = %q", cfg.Export.OutputDir)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("ui.theme = %q", cfg.UI.Theme)
	}
}

func TestApplyEnvOverrides_InvalidMaxTokensIgnored(t *testing.T) {
	t.Setenv("PLATEFUL_MAX_TOKENS", "not-a-number")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.API.MaxTokens != 600 {
		t.Errorf("api.max_tokens = %d, want default 600", cfg.API.MaxTokens)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "bad base url",
			mutate:  func(c *Config) { c.API.BaseURL = "not a url" },
			wantErr: "api.base_url",
		},
		{
			name:    "negative max tokens",
			mutate:  func(c *Config) { c.API.MaxTokens = -1 },
			wantErr: "api.max_tokens",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.API.TimeoutSeconds = -5 },
			wantErr: "api.timeout_seconds",
		},
		{
			name:    "bad theme",
			mutate:  func(c *Config) { c.UI.Theme = "neon" },
			wantErr: "ui.theme",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() should have failed")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() error %q missing field %q", err, tc.wantErr)
			}
		})
	}
}

func TestString_RedactsAPIKey(t *testing.T) {
	cfg := Default()
	cfg.API.Key = "sk-or-super-secret-value"

	out := cfg.String()
	if strings.Contains(out, "sk-or-super-secret-value") {
		t.Error("String() leaked the API key")
	}
	if !strings.Contains(out, "[REDACTED]") {
		t.Error("String() should redact the API key")
	}

	// Redaction must not touch the original.
	if cfg.API.Key != "sk-or-super-secret-value" {
		t.Error("String() mutated the original config")
	}
}

// TestConfig_ConcurrentAccess tests that Global() and SetGlobal() can be
// safely called concurrently without race conditions.
// Run with: go test -race -v ./internal/config/
func TestConfig_ConcurrentAccess(t *testing.T) {
	ResetGlobalForTesting()

	var wg sync.WaitGroup

	// 50 writers using SetGlobal, 50 readers using Global
	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			SetGlobal(Default())
		}()

		go func() {
			defer wg.Done()
			if cfg := Global(); cfg == nil {
				t.Error("Global() returned nil")
			}
		}()
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
	if cfg.API.Model == "" {
		t.Error("api.model should not be empty")
	}
}
