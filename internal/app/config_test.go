package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"edkeyring/internal/app"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := app.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DefaultPath != "m" {
		t.Fatalf("default path %q, want \"m\"", cfg.DefaultPath)
	}
}

func TestLoadConfig_MissingFileIsNotAnError(t *testing.T) {
	cfg, err := app.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DefaultPath != "m" {
		t.Fatalf("default path %q, want \"m\"", cfg.DefaultPath)
	}
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("default_path: m/44'/354'/0'\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := app.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DefaultPath != "m/44'/354'/0'" {
		t.Fatalf("default path %q, want m/44'/354'/0'", cfg.DefaultPath)
	}
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{default_path: "), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := app.LoadConfig(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
