package model

import "testing"

func TestDefaultAppConfig(t *testing.T) {
	cfg := DefaultAppConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got: %v", err)
	}
	if cfg.Mode != ModeCut {
		t.Errorf("expected default mode=cut, got %s", cfg.Mode)
	}
	if cfg.Theme != "system" {
		t.Errorf("expected default theme=system, got %s", cfg.Theme)
	}
	if cfg.Scale != 8 {
		t.Errorf("expected default scale=8, got %d", cfg.Scale)
	}
}

func TestRootRectIsInsetBuffer(t *testing.T) {
	cfg := DefaultAppConfig()
	got := cfg.RootRect()
	want := NewRect(12, 12, 75, 75)
	if got != want {
		t.Errorf("expected root %v, got %v", want, got)
	}
}

func TestRootRectWithoutInset(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.InsetPercent = 0
	cfg.BufferWidth = 40
	cfg.BufferHeight = 30
	if got := cfg.RootRect(); got != NewRect(0, 0, 40, 30) {
		t.Errorf("expected full buffer, got %v", got)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppConfig)
	}{
		{"zero width", func(c *AppConfig) { c.BufferWidth = 0 }},
		{"negative height", func(c *AppConfig) { c.BufferHeight = -1 }},
		{"zero scale", func(c *AppConfig) { c.Scale = 0 }},
		{"inset too large", func(c *AppConfig) { c.InsetPercent = 100 }},
		{"negative inset", func(c *AppConfig) { c.InsetPercent = -5 }},
		{"unknown mode", func(c *AppConfig) { c.Mode = "paint" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultAppConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode(" Drag "); err != nil || m != ModeDrag {
		t.Errorf("expected drag, got %q (%v)", m, err)
	}
	if m, err := ParseMode("cut"); err != nil || m != ModeCut {
		t.Errorf("expected cut, got %q (%v)", m, err)
	}
	if _, err := ParseMode("resize"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestConfigViewport(t *testing.T) {
	cfg := DefaultAppConfig()
	v := cfg.Viewport()
	if v.Screen != (Size{Width: 800, Height: 800}) {
		t.Errorf("expected 800x800 screen, got %+v", v.Screen)
	}
	if v.XScale != 8 || v.YScale != 8 {
		t.Errorf("expected scale 8x8, got %dx%d", v.XScale, v.YScale)
	}
}
