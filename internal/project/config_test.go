package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/rectcut/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.Scale = 4
	cfg.Theme = "dark"
	cfg.Mode = model.ModeDrag
	cfg.ExportDir = "/tmp/exports"

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestSaveAndLoadAppConfigYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := model.DefaultAppConfig()
	cfg.BufferWidth = 64
	cfg.BufferHeight = 48
	cfg.LogLevel = "debug"

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if data[0] == '{' {
		t.Error("expected YAML output for .yaml path, got JSON")
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg != model.DefaultAppConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadAppConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("scale: 3\nmode: drag\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.Scale != 3 || cfg.Mode != model.ModeDrag {
		t.Errorf("expected overrides applied, got %+v", cfg)
	}
	if cfg.BufferWidth != 100 || cfg.InsetPercent != 25 {
		t.Errorf("expected defaults kept, got %+v", cfg)
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAppConfig(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadAppConfigRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"scale": 0}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAppConfig(path); err == nil {
		t.Error("expected validation error for zero scale")
	}
}

func TestSaveAppConfigCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "config.json")
	if err := SaveAppConfig(path, model.DefaultAppConfig()); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %v", err)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	if filepath.Base(DefaultConfigPath()) != "config.json" {
		t.Errorf("unexpected default path %s", DefaultConfigPath())
	}
	if filepath.Base(DefaultConfigDir()) != ".rectcut" {
		t.Errorf("unexpected default dir %s", DefaultConfigDir())
	}
}
