package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadModerationConfigMissingFile(t *testing.T) {
	cfg, err := LoadModerationConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults, got %v", err)
	}
	if cfg.ReasonMinLength != 15 {
		t.Errorf("default reason_min_length = %d, want 15", cfg.ReasonMinLength)
	}
	if len(cfg.Targets) == 0 {
		t.Error("default targets list is empty")
	}
}

func TestLoadModerationConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moderation.json")
	body := `{"reason_min_length": 30, "targets": ["user", "post"]}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadModerationConfig(path)
	if err != nil {
		t.Fatalf("LoadModerationConfig: %v", err)
	}
	if cfg.ReasonMinLength != 30 {
		t.Errorf("reason_min_length = %d, want 30", cfg.ReasonMinLength)
	}
	if len(cfg.Targets) != 2 || cfg.Targets[0] != "user" {
		t.Errorf("targets = %v", cfg.Targets)
	}
	// Fields not present keep their defaults.
	if cfg.StatusLabels["resolved"] != "Resolved" {
		t.Errorf("status labels lost defaults: %v", cfg.StatusLabels)
	}
}

func TestLoadModerationConfigBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moderation.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadModerationConfig(path); err == nil {
		t.Fatal("malformed config must fail")
	}
}
