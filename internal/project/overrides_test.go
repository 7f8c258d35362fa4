package project

import (
	"flag"
	"path/filepath"
	"testing"

	"github.com/piwi3910/rectcut/internal/model"
)

func TestOverridesFromFlags(t *testing.T) {
	var o Overrides
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	o.RegisterFlags(fs)

	path := filepath.Join(t.TempDir(), "missing.json")
	if err := fs.Parse([]string{"-config", path, "-mode", "drag", "-scale", "4", "-log-level", "debug"}); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	cfg, err := o.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Mode != model.ModeDrag || cfg.Scale != 4 || cfg.LogLevel != "debug" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.BufferWidth != 100 {
		t.Errorf("expected default buffer width, got %d", cfg.BufferWidth)
	}
}

func TestOverridesZeroValuesKeepConfig(t *testing.T) {
	cfg := model.DefaultAppConfig()
	cfg.Scale = 5
	got, err := Overrides{}.Apply(cfg)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if got != cfg {
		t.Errorf("expected unchanged config, got %+v", got)
	}
}

func TestOverridesRejectBadValues(t *testing.T) {
	if _, err := (Overrides{Mode: "paint"}).Apply(model.DefaultAppConfig()); err == nil {
		t.Error("expected error for unknown mode")
	}
	if _, err := (Overrides{Scale: -2}).Apply(model.DefaultAppConfig()); err == nil {
		t.Error("expected error for negative scale")
	}
}
