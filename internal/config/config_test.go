package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"fields/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	if err := config.Init(home, ""); err != nil {
		t.Fatalf("init: %v", err)
	}
	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Home != home {
		t.Fatalf("want home %q, got %q", home, cfg.Home)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("want default log level info, got %q", cfg.LogLevel)
	}
	if cfg.MaxItems != 500 {
		t.Fatalf("want default max items 500, got %d", cfg.MaxItems)
	}
	if len(cfg.ScanPatterns) == 0 {
		t.Fatal("scan patterns empty")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("FIELDS_MAX_ITEMS", "25")
	t.Setenv("FIELDS_LOG_LEVEL", "debug")

	if err := config.Init(home, ""); err != nil {
		t.Fatalf("init: %v", err)
	}
	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxItems != 25 {
		t.Fatalf("want max items 25, got %d", cfg.MaxItems)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("want log level debug, got %q", cfg.LogLevel)
	}
}

func TestInit_ConfigFile(t *testing.T) {
	home := t.TempDir()
	cfgPath := filepath.Join(home, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("max_items: 7\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if err := config.Init(home, cfgPath); err != nil {
		t.Fatalf("init: %v", err)
	}
	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxItems != 7 {
		t.Fatalf("want max items 7 from file, got %d", cfg.MaxItems)
	}
}

func TestInit_MalformedConfigFile(t *testing.T) {
	home := t.TempDir()
	cfgPath := filepath.Join(home, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(":::"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := config.Init(home, cfgPath); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}
