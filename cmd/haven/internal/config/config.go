package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up by default
const FileName = "haven.yaml"

// EnvPrefix marks environment overrides. A double underscore separates
// nesting levels: HAVEN_DEV__PORT sets dev.port.
const EnvPrefix = "HAVEN_"

// Config represents the haven.yaml configuration
type Config struct {
	LogLevel string      `yaml:"log_level" koanf:"log_level"`
	Content  string      `yaml:"content,omitempty" koanf:"content"`
	Dev      DevConfig   `yaml:"dev" koanf:"dev"`
	Build    BuildConfig `yaml:"build" koanf:"build"`
}

// DevConfig contains development server configuration
type DevConfig struct {
	Host      string   `yaml:"host" koanf:"host"`
	Port      int      `yaml:"port" koanf:"port"`
	WatchDirs []string `yaml:"watch_dirs" koanf:"watch_dirs"`
}

// BuildConfig says where the site is built from and to
type BuildConfig struct {
	Output    string `yaml:"output" koanf:"output"`
	StaticDir string `yaml:"static_dir" koanf:"static_dir"`
	ClientPkg string `yaml:"client_pkg" koanf:"client_pkg"`
	WasmName  string `yaml:"wasm_name" koanf:"wasm_name"`
	// CacheDir keeps compiled clients between builds; empty disables it
	CacheDir string `yaml:"cache_dir" koanf:"cache_dir"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Dev: DevConfig{
			Host:      "localhost",
			Port:      5173,
			WatchDirs: []string{"app", "pkg", "static"},
		},
		Build: BuildConfig{
			Output:    "dist",
			StaticDir: "static",
			ClientPkg: "./app/client",
			WasmName:  "haven.wasm",
			CacheDir:  ".haven/cache",
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (HAVEN_*). A missing file yields defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// Save writes the configuration to the given YAML file path
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration contains valid values
func (c *Config) Validate() error {
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}
	if c.Dev.Port <= 0 || c.Dev.Port > 65535 {
		return fmt.Errorf("dev.port %d out of range", c.Dev.Port)
	}
	if c.Build.Output == "" {
		return fmt.Errorf("build.output is required")
	}
	if c.Build.ClientPkg == "" {
		return fmt.Errorf("build.client_pkg is required")
	}
	if !strings.HasSuffix(c.Build.WasmName, ".wasm") {
		return fmt.Errorf("build.wasm_name %q must end in .wasm", c.Build.WasmName)
	}
	return nil
}
