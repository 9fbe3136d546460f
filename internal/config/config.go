package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvConfigPath = "ROSTER_CONFIG_PATH"
	EnvCapacity   = "ROSTER_CAPACITY"
	EnvLogLevel   = "ROSTER_LOG_LEVEL"
	EnvWebBind    = "ROSTER_WEB_BIND"
	EnvWebPort    = "ROSTER_WEB_PORT"
)

// Config holds application configuration.
type Config struct {
	// Capacity is the maximum number of live students, and the undo depth.
	Capacity int `yaml:"capacity"`

	Log LogConfig `yaml:"log"`
	Web WebConfig `yaml:"web"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	// Unknown tool names are logged as warnings.
	DisabledTools []string `yaml:"disabled_tools,omitempty"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// WebConfig controls the HTTP server started by `roster web`.
type WebConfig struct {
	Bind string `yaml:"bind"`
	Port int    `yaml:"port"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Capacity: 100,
		Log:      LogConfig{Level: "info"},
		Web:      WebConfig{Bind: "127.0.0.1", Port: 8080},
	}
}

// Load builds configuration from defaults, the YAML file at path, and then
// environment overrides. An empty path falls back to $ROSTER_CONFIG_PATH.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	fileCfg, err := loadFileRaw(path)
	if err != nil {
		return nil, err
	}

	cfg := Merge(DefaultConfig(), fileCfg)
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the path is empty or the file doesn't exist.
func loadFileRaw(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvCapacity); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvCapacity, err)
		}
		cfg.Capacity = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvWebBind); v != "" {
		cfg.Web.Bind = v
	}
	if v := os.Getenv(EnvWebPort); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvWebPort, err)
		}
		cfg.Web.Port = n
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("capacity must be at least 1, got %d", c.Capacity)
	}
	if c.Web.Port < 1 || c.Web.Port > 65535 {
		return fmt.Errorf("web port must be in 1..65535, got %d", c.Web.Port)
	}
	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel maps a level name to a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Merge combines base and overlay configs.
// Overlay values take precedence for non-zero scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.Capacity = overlay.Capacity
	if result.Capacity == 0 {
		result.Capacity = base.Capacity
	}

	result.Log.Level = overlay.Log.Level
	if result.Log.Level == "" {
		result.Log.Level = base.Log.Level
	}

	result.Web.Bind = overlay.Web.Bind
	if result.Web.Bind == "" {
		result.Web.Bind = base.Web.Bind
	}

	result.Web.Port = overlay.Web.Port
	if result.Web.Port == 0 {
		result.Web.Port = base.Web.Port
	}

	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range append(append([]string{}, a...), b...) {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
