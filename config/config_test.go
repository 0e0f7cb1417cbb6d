package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Profile.Policy != "include-all" {
		t.Errorf("expected default policy include-all, got %s", cfg.Profile.Policy)
	}
	if cfg.Profile.FixDoc {
		t.Error("expected fix_doc off by default")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Log.Level)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "explicit-only policy",
			modify:  func(c *Config) { c.Profile.Policy = "explicit-only" },
			wantErr: false,
		},
		{
			name:    "unknown policy",
			modify:  func(c *Config) { c.Profile.Policy = "everything" },
			wantErr: true,
		},
		{
			name:    "empty policy",
			modify:  func(c *Config) { c.Profile.Policy = "" },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
profile:
  policy: explicit-only
  fix_doc: true
log:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if cfg.Profile.Policy != "explicit-only" {
		t.Errorf("expected policy explicit-only, got %s", cfg.Profile.Policy)
	}
	if !cfg.Profile.FixDoc {
		t.Error("expected fix_doc true")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Log.Level)
	}
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	base.Merge(&Config{Profile: ProfileConfig{Policy: "skip-optional"}})

	if base.Profile.Policy != "skip-optional" {
		t.Errorf("expected merged policy skip-optional, got %s", base.Profile.Policy)
	}
	if base.Log.Level != "info" {
		t.Errorf("expected log level to stay info, got %s", base.Log.Level)
	}
}
