package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/kbukum/enumkit/logger"
)

type testConfig struct {
	BaseConfig `mapstructure:",squash"`
	Limit      int `mapstructure:"limit"`
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", p, err)
	}
	return p
}

func TestBaseConfigApplyDefaults(t *testing.T) {
	t.Run("debug raises log level", func(t *testing.T) {
		cfg := BaseConfig{Name: "p", Debug: true}
		cfg.ApplyDefaults()
		if cfg.Logging.Level != "debug" {
			t.Errorf("expected debug level, got %q", cfg.Logging.Level)
		}
	})

	t.Run("explicit level is kept", func(t *testing.T) {
		cfg := BaseConfig{Name: "p", Debug: true, Logging: loggerConfig("warn")}
		cfg.ApplyDefaults()
		if cfg.Logging.Level != "warn" {
			t.Errorf("expected warn level, got %q", cfg.Logging.Level)
		}
	})
}

func TestBaseConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     BaseConfig
		wantErr string
	}{
		{"valid", BaseConfig{Name: "p"}, ""},
		{"missing name", BaseConfig{}, "name is required"},
		{"bad logging", BaseConfig{Name: "p", Logging: loggerConfig("loud")}, "logging.level"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.ApplyDefaults()
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "plan.yml", `
name: evens
limit: 7
logging:
  level: debug
  format: json
`)
	var cfg testConfig
	if err := Load("plan", &cfg, WithConfigFile(path), WithSearchDirs(dir)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "evens" || cfg.Limit != 7 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging %+v", cfg.Logging)
	}
}

func TestLoad_SearchDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "plan.yaml", "name: found\n")
	var cfg testConfig
	if err := Load("plan", &cfg, WithSearchDirs(dir)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "found" {
		t.Errorf("expected name from searched file, got %q", cfg.Name)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "plan.yml", "name: file\nlimit: 1\n")
	t.Setenv("PLAN_LIMIT", "9")
	t.Setenv("PLAN_LOGGING_NO_COLOR", "true")

	var cfg testConfig
	if err := Load("plan", &cfg, WithConfigFile(path), WithSearchDirs(dir)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "file" || cfg.Limit != 9 {
		t.Errorf("expected env to override limit only, got %+v", cfg)
	}
	if !cfg.Logging.NoColor {
		t.Error("expected PLAN_LOGGING_NO_COLOR to set logging.no_color")
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "PLAN_LIMIT=4\n")
	t.Cleanup(func() { os.Unsetenv("PLAN_LIMIT") })
	var cfg testConfig
	if err := Load("plan", &cfg, WithEnvFile(envPath), WithSearchDirs(dir)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Limit != 4 {
		t.Errorf("expected limit from .env, got %d", cfg.Limit)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	var cfg testConfig
	err := Load("plan", &cfg, WithConfigFile(filepath.Join(t.TempDir(), "nope.yml")))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestEnvKeyVariants(t *testing.T) {
	got := envKeyVariants("LOGGING_NO_COLOR")
	want := []string{"logging_no_color", "logging.no_color", "logging.no.color"}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := envKeyVariants("LIMIT"); !slices.Equal(got, []string{"limit"}) {
		t.Errorf("got %v", got)
	}
}

func loggerConfig(level string) logger.Config {
	return logger.Config{Level: level}
}
