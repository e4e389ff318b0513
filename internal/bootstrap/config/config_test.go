package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(context.Background(), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.App.Name != "agentcrm" || cfg.App.Env != "local" {
		t.Fatalf("app defaults = %+v", cfg.App)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" || cfg.Gemini.APIKey != "" {
		t.Fatalf("gemini defaults = %+v", cfg.Gemini)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("http addr = %q", cfg.HTTP.Addr)
	}
	if cfg.Seed.Demo {
		t.Fatalf("seed.demo default = true, want false")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "app:\n  env: test\ngemini:\n  model: gemini-2.5-pro\nhttp:\n  addr: :9090\nseed:\n  demo: true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.App.Env != "test" {
		t.Fatalf("env = %q", cfg.App.Env)
	}
	if cfg.Gemini.Model != "gemini-2.5-pro" {
		t.Fatalf("model = %q", cfg.Gemini.Model)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Fatalf("addr = %q", cfg.HTTP.Addr)
	}
	if !cfg.Seed.Demo {
		t.Fatalf("seed.demo = false, want true")
	}
	// Untouched keys keep their defaults.
	if cfg.App.Name != "agentcrm" {
		t.Fatalf("name = %q", cfg.App.Name)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("Load() error = nil, want read failure for explicit path")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AGENTCRM_HTTP_ADDR", ":7070")

	cfg, err := Load(context.Background(), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTP.Addr != ":7070" {
		t.Fatalf("addr = %q, want env override", cfg.HTTP.Addr)
	}
}
