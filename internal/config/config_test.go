package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// clearEnv blanks every override so the host environment can't leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvConfigPath, EnvCapacity, EnvLogLevel, EnvWebBind, EnvWebPort} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoad_DefaultWhenNoPath(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := DefaultConfig()
	if cfg.Capacity != want.Capacity {
		t.Errorf("Capacity = %d, want %d", cfg.Capacity, want.Capacity)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Web.Bind != "127.0.0.1" || cfg.Web.Port != 8080 {
		t.Errorf("Web = %+v, want 127.0.0.1:8080", cfg.Web)
	}
}

func TestLoad_DefaultWhenMissing(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Capacity != 100 {
		t.Fatalf("Capacity = %d, want 100", cfg.Capacity)
	}
}

func TestLoad_OverridesFromFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
capacity: 25
log:
  level: debug
web:
  port: 9090
disabled_tools:
  - roster_undo
  - " roster_undo "
  - roster_sort
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Capacity != 25 {
		t.Errorf("Capacity = %d, want 25", cfg.Capacity)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Web.Port != 9090 {
		t.Errorf("Web.Port = %d, want 9090", cfg.Web.Port)
	}
	if cfg.Web.Bind != "127.0.0.1" {
		t.Errorf("Web.Bind = %q, want default", cfg.Web.Bind)
	}
	if len(cfg.DisabledTools) != 2 || cfg.DisabledTools[0] != "roster_undo" || cfg.DisabledTools[1] != "roster_sort" {
		t.Errorf("DisabledTools = %v, want [roster_undo roster_sort]", cfg.DisabledTools)
	}
}

func TestLoad_PathFromEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "capacity: 3\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Capacity != 3 {
		t.Errorf("Capacity = %d, want 3", cfg.Capacity)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "capacity: 3\nweb:\n  bind: 0.0.0.0\n")
	t.Setenv(EnvCapacity, "7")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvWebBind, "localhost")
	t.Setenv(EnvWebPort, "8181")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Capacity != 7 {
		t.Errorf("Capacity = %d, want 7", cfg.Capacity)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Web.Bind != "localhost" || cfg.Web.Port != 8181 {
		t.Errorf("Web = %+v, want localhost:8181", cfg.Web)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{name: "invalid yaml", content: "capacity: [1, 2"},
		{name: "negative capacity", content: "capacity: -1"},
		{name: "port out of range", content: "web:\n  port: 70000"},
		{name: "unknown log level", content: "log:\n  level: loud"},
		{name: "non-numeric capacity env", content: "", env: map[string]string{EnvCapacity: "lots"}},
		{name: "non-numeric port env", content: "", env: map[string]string{EnvWebPort: "http"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := writeConfig(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Fatalf("Load() expected error, got nil")
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"INFO", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLogLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLogLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	base := &Config{Capacity: 100, Log: LogConfig{Level: "info"}, Web: WebConfig{Bind: "a", Port: 1}, DisabledTools: []string{"x"}}
	overlay := &Config{Capacity: 5, DisabledTools: []string{"y", "x"}}

	got := Merge(base, overlay)

	if got.Capacity != 5 {
		t.Errorf("Capacity = %d, want 5", got.Capacity)
	}
	if got.Log.Level != "info" || got.Web.Bind != "a" || got.Web.Port != 1 {
		t.Errorf("zero overlay fields should keep base values: %+v", got)
	}
	if len(got.DisabledTools) != 2 || got.DisabledTools[0] != "x" || got.DisabledTools[1] != "y" {
		t.Errorf("DisabledTools = %v, want [x y]", got.DisabledTools)
	}
}

func TestMerge_EmptySlicesStayNil(t *testing.T) {
	got := Merge(&Config{}, &Config{DisabledTools: []string{"  "}})
	if got.DisabledTools != nil {
		t.Errorf("DisabledTools = %v, want nil", got.DisabledTools)
	}
}
