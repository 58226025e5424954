package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Dev.Port != 5173 {
		t.Errorf("dev.port = %d, want 5173", cfg.Dev.Port)
	}
	if cfg.Build.Output != "dist" {
		t.Errorf("build.output = %q, want %q", cfg.Build.Output, "dist")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	original := DefaultConfig()
	original.LogLevel = "debug"
	original.Content = "content.yaml"
	original.Dev.Port = 8080
	original.Dev.WatchDirs = []string{"app", "pkg", "static", "content"}
	original.Build.WasmName = "site.wasm"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.LogLevel != "debug" {
		t.Errorf("log_level = %q, want %q", loaded.LogLevel, "debug")
	}
	if loaded.Content != "content.yaml" {
		t.Errorf("content = %q, want %q", loaded.Content, "content.yaml")
	}
	if loaded.Dev.Port != 8080 {
		t.Errorf("dev.port = %d, want 8080", loaded.Dev.Port)
	}
	if len(loaded.Dev.WatchDirs) != 4 || loaded.Dev.WatchDirs[3] != "content" {
		t.Errorf("dev.watch_dirs = %v, want %v", loaded.Dev.WatchDirs, original.Dev.WatchDirs)
	}
	if loaded.Build.WasmName != "site.wasm" {
		t.Errorf("build.wasm_name = %q, want %q", loaded.Build.WasmName, "site.wasm")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load should not fail for a missing file: %v", err)
	}
	if cfg.Build.ClientPkg != "./app/client" {
		t.Errorf("build.client_pkg = %q, want default", cfg.Build.ClientPkg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("dev:\n  port: 9000\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Dev.Port != 9000 {
		t.Errorf("dev.port = %d, want 9000", cfg.Dev.Port)
	}
	if cfg.Dev.Host != "localhost" {
		t.Errorf("dev.host = %q, want default localhost", cfg.Dev.Host)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HAVEN_LOG_LEVEL", "warn")
	t.Setenv("HAVEN_DEV__PORT", "7000")
	t.Setenv("HAVEN_BUILD__OUTPUT", "public")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("log_level = %q, want warn", cfg.LogLevel)
	}
	if cfg.Dev.Port != 7000 {
		t.Errorf("dev.port = %d, want 7000", cfg.Dev.Port)
	}
	if cfg.Build.Output != "public" {
		t.Errorf("build.output = %q, want public", cfg.Build.Output)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"zero port", func(c *Config) { c.Dev.Port = 0 }, true},
		{"huge port", func(c *Config) { c.Dev.Port = 70000 }, true},
		{"no output", func(c *Config) { c.Build.Output = "" }, true},
		{"no client", func(c *Config) { c.Build.ClientPkg = "" }, true},
		{"wasm suffix", func(c *Config) { c.Build.WasmName = "site.js" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
